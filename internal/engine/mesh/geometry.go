// Package mesh builds the primitive shapes the scene is made of and uploads
// them to the GPU.
package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/drone-scene/pkg/math"
)

// Kind identifies a primitive shape.
type Kind int

const (
	Plane Kind = iota
	Box
	Cylinder
)

func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	}
	return "unknown"
}

// Kinds returns every primitive kind.
func Kinds() []Kind { return []Kind{Plane, Box, Cylinder} }

// CylinderSegments is the number of sides used to approximate the cylinder.
const CylinderSegments = 36

// Vertex matches the scene shader's attribute layout:
// location 0 position, 1 normal, 2 texture coordinate.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// Build returns the geometry for kind.
func Build(kind Kind) Geometry {
	switch kind {
	case Box:
		return BoxGeometry()
	case Cylinder:
		return CylinderGeometry(CylinderSegments)
	default:
		return PlaneGeometry()
	}
}

// quad appends a face from four corners in counter-clockwise order.
func (g *Geometry) quad(normal math.Vec3, corners [4]math.Vec3, uvs [4]math.Vec2) {
	base := uint32(len(g.Vertices))
	for i := range corners {
		g.Vertices = append(g.Vertices, Vertex{Position: corners[i], Normal: normal, UV: uvs[i]})
	}
	g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
}

var quadUV = [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// PlaneGeometry is a 2x2 plane in XZ centered on the origin, facing +Y.
func PlaneGeometry() Geometry {
	var g Geometry
	g.quad(math.Vec3{Y: 1}, [4]math.Vec3{
		{X: -1, Z: 1},
		{X: 1, Z: 1},
		{X: 1, Z: -1},
		{X: -1, Z: -1},
	}, quadUV)
	return g
}

// BoxGeometry is a unit cube centered on the origin with per-face normals.
func BoxGeometry() Geometry {
	const h = 0.5
	var g Geometry
	faces := []struct {
		n       math.Vec3
		corners [4]math.Vec3
	}{
		{math.Vec3{Z: 1}, [4]math.Vec3{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}},
		{math.Vec3{Z: -1}, [4]math.Vec3{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}},
		{math.Vec3{X: 1}, [4]math.Vec3{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}}},
		{math.Vec3{X: -1}, [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}},
		{math.Vec3{Y: 1}, [4]math.Vec3{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}}},
		{math.Vec3{Y: -1}, [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}},
	}
	for _, f := range faces {
		g.quad(f.n, f.corners, quadUV)
	}
	return g
}

// CylinderGeometry is a cylinder of radius 1 standing on the XZ plane from
// y=0 to y=1, with both caps.
func CylinderGeometry(segments int) Geometry {
	if segments < 3 {
		segments = 3
	}
	var g Geometry

	ring := func(i int) (float32, float32) {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		return math32.Cos(a), math32.Sin(a)
	}

	// Side wall: one quad per segment, with a seam so U runs 0..1.
	for i := 0; i < segments; i++ {
		x0, z0 := ring(i)
		x1, z1 := ring(i + 1)
		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		base := uint32(len(g.Vertices))
		n0 := math.Vec3{X: x0, Z: z0}
		n1 := math.Vec3{X: x1, Z: z1}
		g.Vertices = append(g.Vertices,
			Vertex{Position: math.Vec3{X: x0, Z: z0}, Normal: n0, UV: math.Vec2{X: u0}},
			Vertex{Position: math.Vec3{X: x1, Z: z1}, Normal: n1, UV: math.Vec2{X: u1}},
			Vertex{Position: math.Vec3{X: x1, Y: 1, Z: z1}, Normal: n1, UV: math.Vec2{X: u1, Y: 1}},
			Vertex{Position: math.Vec3{X: x0, Y: 1, Z: z0}, Normal: n0, UV: math.Vec2{X: u0, Y: 1}},
		)
		// Counter-clockwise seen from outside.
		g.Indices = append(g.Indices, base, base+3, base+2, base, base+2, base+1)
	}

	addCap := func(y float32, normal math.Vec3, flip bool) {
		center := uint32(len(g.Vertices))
		g.Vertices = append(g.Vertices, Vertex{Position: math.Vec3{Y: y}, Normal: normal, UV: math.Vec2{X: 0.5, Y: 0.5}})
		for i := 0; i <= segments; i++ {
			x, z := ring(i)
			g.Vertices = append(g.Vertices, Vertex{
				Position: math.Vec3{X: x, Y: y, Z: z},
				Normal:   normal,
				UV:       math.Vec2{X: 0.5 + x/2, Y: 0.5 + z/2},
			})
		}
		for i := uint32(0); i < uint32(segments); i++ {
			a, b := center+1+i, center+2+i
			if flip {
				a, b = b, a
			}
			g.Indices = append(g.Indices, center, a, b)
		}
	}
	addCap(0, math.Vec3{Y: -1}, false)
	addCap(1, math.Vec3{Y: 1}, true)

	return g
}
