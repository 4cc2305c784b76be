package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/drone-scene/pkg/math"
)

const eps = 1e-5

// checkWinding verifies every triangle is counter-clockwise when seen from
// the side its normals point to.
func checkWinding(t *testing.T, g Geometry) {
	t.Helper()
	require.Zero(t, len(g.Indices)%3)
	for i := 0; i < len(g.Indices); i += 3 {
		a := g.Vertices[g.Indices[i]]
		b := g.Vertices[g.Indices[i+1]]
		c := g.Vertices[g.Indices[i+2]]
		face := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		avg := a.Normal.Add(b.Normal).Add(c.Normal)
		assert.Greater(t, face.Dot(avg), float32(0), "triangle %d faces inward", i/3)
	}
}

func checkIndices(t *testing.T, g Geometry) {
	t.Helper()
	for _, idx := range g.Indices {
		require.Less(t, int(idx), len(g.Vertices))
	}
}

func TestPlane(t *testing.T) {
	g := PlaneGeometry()

	assert.Len(t, g.Vertices, 4)
	assert.Len(t, g.Indices, 6)
	for _, v := range g.Vertices {
		assert.Equal(t, float32(0), v.Position.Y)
		assert.Equal(t, math.Vec3{Y: 1}, v.Normal)
	}
	checkIndices(t, g)
	checkWinding(t, g)
}

func TestBox(t *testing.T) {
	g := BoxGeometry()

	assert.Len(t, g.Vertices, 24)
	assert.Len(t, g.Indices, 36)
	for _, v := range g.Vertices {
		for _, c := range []float32{v.Position.X, v.Position.Y, v.Position.Z} {
			assert.InDelta(t, 0.5, c*c*2, eps, "corner %v", v.Position)
		}
	}
	checkIndices(t, g)
	checkWinding(t, g)
}

func TestCylinder(t *testing.T) {
	const segments = 12
	g := CylinderGeometry(segments)

	// Side quads plus two fans with a center and a closing vertex each.
	assert.Len(t, g.Vertices, segments*4+2*(segments+2))
	assert.Len(t, g.Indices, segments*6+2*segments*3)

	for _, v := range g.Vertices {
		assert.True(t, v.Position.Y == 0 || v.Position.Y == 1)
		if v.Normal.Y == 0 {
			r := math.Vec3{X: v.Position.X, Z: v.Position.Z}.Length()
			assert.InDelta(t, 1, r, eps)
		}
	}
	checkIndices(t, g)
	checkWinding(t, g)
}

func TestCylinderMinimumSegments(t *testing.T) {
	g := CylinderGeometry(1)
	assert.Len(t, g.Indices, 3*6+2*3*3)
}

func TestBuild(t *testing.T) {
	for _, k := range Kinds() {
		g := Build(k)
		assert.NotEmpty(t, g.Vertices, k.String())
	}
	assert.Len(t, Build(Box).Vertices, 24)
	assert.Equal(t, "unknown", Kind(42).String())
}
