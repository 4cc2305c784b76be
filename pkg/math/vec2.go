// Package math provides the small vector and matrix toolkit used by the renderer.
// Matrices are column-major to match OpenGL uniform layout.
package math

// Vec2 is a 2D vector. The scene uses it for texture UV tiling.
type Vec2 struct {
	X, Y float32
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}
