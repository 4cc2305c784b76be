// Package camera provides the free-flying camera used to inspect the scene.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/drone-scene/pkg/math"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Defaults for a freshly constructed camera.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	// MaxPitch keeps the view from flipping over the poles.
	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

var worldUp = math.Vec3{Y: 1}

// Camera is a yaw/pitch fly camera. Yaw and Pitch are in degrees; Zoom is the
// vertical field of view in degrees. Front, Right and Up are derived from
// yaw and pitch and refreshed whenever either changes.
type Camera struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32
	Zoom     float32

	Speed       float32
	Sensitivity float32

	front math.Vec3
	right math.Vec3
	up    math.Vec3
}

// New creates a camera at the origin looking down -Z.
func New() *Camera {
	c := &Camera{
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Zoom:        DefaultZoom,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
	}
	c.UpdateVectors()
	return c
}

// SetPose moves and re-orients the camera.
func (c *Camera) SetPose(position math.Vec3, yaw, pitch float32) {
	c.Position = position
	c.Yaw = yaw
	c.Pitch = pitch
	c.UpdateVectors()
}

// UpdateVectors recomputes Front, Right and Up from Yaw and Pitch.
func (c *Camera) UpdateVectors() {
	yaw, pitch := math.Radians(c.Yaw), math.Radians(c.Pitch)
	c.front = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) Front() math.Vec3 { return c.front }
func (c *Camera) Right() math.Vec3 { return c.right }
func (c *Camera) Up() math.Vec3    { return c.up }

// ViewMatrix looks from Position along Front.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.front), c.up)
}

// Move translates the camera. dt is the frame time in seconds, which keeps
// movement speed independent of frame rate.
func (c *Camera) Move(dir Direction, dt float32) {
	v := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Scale(v))
	case Backward:
		c.Position = c.Position.Sub(c.front.Scale(v))
	case Left:
		c.Position = c.Position.Sub(c.right.Scale(v))
	case Right:
		c.Position = c.Position.Add(c.right.Scale(v))
	case Up:
		c.Position = c.Position.Add(c.up.Scale(v))
	case Down:
		c.Position = c.Position.Sub(c.up.Scale(v))
	}
}

// Look turns the camera by a cursor offset in pixels. Positive yOffset
// looks up.
func (c *Camera) Look(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.Sensitivity
	c.Pitch += yOffset * c.Sensitivity
	c.Pitch = clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.UpdateVectors()
}

// Scroll narrows (positive) or widens (negative) the field of view.
func (c *Camera) Scroll(yOffset float32) {
	c.Zoom = clamp(c.Zoom-yOffset, MinZoom, MaxZoom)
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
