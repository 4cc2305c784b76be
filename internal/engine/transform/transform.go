// Package transform builds model matrices from scale, Euler rotation and
// translation.
package transform

import "github.com/Faultbox/drone-scene/pkg/math"

// Request describes one object's placement. Rotation holds degrees about the
// world X, Y and Z axes.
type Request struct {
	Scale       math.Vec3
	Rotation    math.Vec3
	Translation math.Vec3
}

// Compose returns Translation * RotX * RotY * RotZ * Scale.
func Compose(r Request) math.Mat4 {
	return math.Translate(r.Translation).
		Mul(math.RotateX(math.Radians(r.Rotation.X))).
		Mul(math.RotateY(math.Radians(r.Rotation.Y))).
		Mul(math.RotateZ(math.Radians(r.Rotation.Z))).
		Mul(math.Scale(r.Scale))
}
