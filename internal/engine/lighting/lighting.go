// Package lighting describes the scene's fixed set of Phong light sources.
package lighting

import (
	"fmt"

	"github.com/Faultbox/drone-scene/pkg/math"
)

// MaxSources is the size of the lightSources array in the fragment shader.
const MaxSources = 4

// Source is one light. Position is nil for a light whose position is never
// uploaded (the shader then sees its zero value).
type Source struct {
	Index             int
	Position          *math.Vec3
	AmbientColor      math.Vec3
	DiffuseColor      math.Vec3
	SpecularColor     math.Vec3
	SpecularIntensity float32
	FocalStrength     float32
}

// Rig is an ordered, bounds-checked set of light sources.
type Rig struct {
	sources []Source
}

// NewRig validates indices: each must be in [0, MaxSources) and unique.
func NewRig(sources ...Source) (*Rig, error) {
	seen := make(map[int]bool, len(sources))
	for _, s := range sources {
		if s.Index < 0 || s.Index >= MaxSources {
			return nil, fmt.Errorf("light index %d out of range [0,%d)", s.Index, MaxSources)
		}
		if seen[s.Index] {
			return nil, fmt.Errorf("duplicate light index %d", s.Index)
		}
		seen[s.Index] = true
	}
	return &Rig{sources: append([]Source(nil), sources...)}, nil
}

// Sources returns the lights in registration order.
func (r *Rig) Sources() []Source {
	return append([]Source(nil), r.sources...)
}

func at(x, y, z float32) *math.Vec3 {
	return &math.Vec3{X: x, Y: y, Z: z}
}

// Default returns the scene's four lights: a key light, a soft fill,
// a softened top fill and a faint bounce from below.
func Default() *Rig {
	rig, _ := NewRig(
		Source{
			Index:             0,
			AmbientColor:      math.Splat(0.2),
			DiffuseColor:      math.Splat(0.6),
			SpecularColor:     math.Splat(0.8),
			SpecularIntensity: 0.8,
			FocalStrength:     48,
		},
		Source{
			Index:             1,
			Position:          at(-4, 3, -4),
			AmbientColor:      math.Splat(0.2),
			DiffuseColor:      math.Splat(0.3),
			SpecularColor:     math.Splat(0.3),
			SpecularIntensity: 0.5,
			FocalStrength:     16,
		},
		Source{
			Index:             2,
			Position:          at(0, 10, 0),
			AmbientColor:      math.Splat(0.1),
			DiffuseColor:      math.Splat(0.25),
			SpecularColor:     math.Splat(0.3),
			SpecularIntensity: 0.5,
			FocalStrength:     32,
		},
		Source{
			Index:             3,
			Position:          at(0, -2, 0),
			AmbientColor:      math.Splat(0.05),
			DiffuseColor:      math.Splat(0.1),
			SpecularColor:     math.Splat(0.05),
			SpecularIntensity: 0.1,
			FocalStrength:     16,
		},
	)
	return rig
}
