// Package material holds the Phong material descriptors the scene draws with.
package material

import (
	"errors"

	"github.com/Faultbox/drone-scene/pkg/math"
)

var (
	// ErrEmpty is returned by Lookup when the table holds no materials.
	ErrEmpty = errors.New("material table is empty")
	// ErrNotFound is returned by Lookup when no material carries the tag.
	ErrNotFound = errors.New("material not found")
)

// Material is a Phong surface description.
type Material struct {
	Tag             string
	AmbientColor    math.Vec3
	AmbientStrength float32
	DiffuseColor    math.Vec3
	SpecularColor   math.Vec3
	Shininess       float32
}

// Default is the shared material every object in the scene uses.
func Default() Material {
	return Material{
		Tag:             "default",
		AmbientColor:    math.Splat(0.2),
		AmbientStrength: 0.2,
		DiffuseColor:    math.Splat(0.5),
		SpecularColor:   math.Splat(0.7),
		Shininess:       32,
	}
}

// Table is a write-once list of materials in insertion order.
type Table struct {
	materials []Material
}

// NewTable builds a table. Later duplicates of a tag are unreachable by
// Lookup, which returns the first match.
func NewTable(materials ...Material) *Table {
	return &Table{materials: append([]Material(nil), materials...)}
}

// Lookup returns the first material whose tag matches.
func (t *Table) Lookup(tag string) (Material, error) {
	if len(t.materials) == 0 {
		return Material{}, ErrEmpty
	}
	for _, m := range t.materials {
		if m.Tag == tag {
			return m, nil
		}
	}
	return Material{}, ErrNotFound
}

// Len returns the number of materials.
func (t *Table) Len() int { return len(t.materials) }
