// Package view turns window input into camera motion and projection changes,
// and supplies the per-frame view and projection matrices.
package view

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/drone-scene/internal/engine/camera"
	"github.com/Faultbox/drone-scene/internal/engine/input"
	"github.com/Faultbox/drone-scene/internal/logger"
	"github.com/Faultbox/drone-scene/pkg/math"
)

// Projection is the projection mode.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Projection limits.
const (
	Near = 0.1
	Far  = 100.0

	MinOrthoExtent = 1.0
	MaxOrthoExtent = 50.0
	// orthoScrollStep converts scroll wheel units into ortho extent.
	orthoScrollStep = 0.5
)

// Pose is a canonical camera placement.
type Pose struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32
}

var (
	// ResetPose is restored by the reset key, together with a 45 degree FOV.
	ResetPose = Pose{Position: math.Vec3{Y: 4, Z: 5}, Yaw: -90, Pitch: -30}
	// OrthoPose faces the scene head-on when switching to orthographic.
	OrthoPose = Pose{Position: math.Vec3{Y: 4, Z: 10}, Yaw: -90, Pitch: 0}
)

const resetZoom = 45.0

// Sink receives the per-frame camera uniforms.
type Sink interface {
	SetViewMatrix(m math.Mat4)
	SetProjectionMatrix(m math.Mat4)
	SetViewPosition(p math.Vec3)
}

var moves = []struct {
	key input.Key
	dir camera.Direction
}{
	{input.KeyW, camera.Forward},
	{input.KeyS, camera.Backward},
	{input.KeyA, camera.Left},
	{input.KeyD, camera.Right},
	{input.KeyE, camera.Up},
	{input.KeyQ, camera.Down},
}

// Controller owns the camera and the projection state. It replaces the
// process-wide mouse and projection globals with instance fields.
type Controller struct {
	camera      *camera.Camera
	mode        Projection
	orthoExtent float32

	lastX, lastY float64
	firstMouse   bool

	edges input.Edge
	log   *zap.Logger
}

// NewController starts in perspective mode. orthoExtent is clamped to the
// valid range.
func NewController(cam *camera.Camera, orthoExtent float32) *Controller {
	return &Controller{
		camera:      cam,
		mode:        Perspective,
		orthoExtent: clampExtent(orthoExtent),
		firstMouse:  true,
		log:         logger.Named("view"),
	}
}

func (c *Controller) Camera() *camera.Camera { return c.camera }
func (c *Controller) Mode() Projection        { return c.mode }
func (c *Controller) OrthoExtent() float32    { return c.orthoExtent }

// HandleCursor consumes an absolute cursor position. The first event only
// seeds the last position. In orthographic mode the camera orientation is
// frozen, but the position is still tracked so returning to perspective does
// not produce a jump.
func (c *Controller) HandleCursor(x, y float64) {
	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
	}

	xOffset := float32(x - c.lastX)
	yOffset := float32(c.lastY - y) // screen Y grows downward
	c.lastX, c.lastY = x, y

	if c.mode == Orthographic {
		return
	}
	c.camera.Look(xOffset, yOffset)
}

// HandleScroll zooms the camera in perspective mode and changes the ortho
// extent in orthographic mode.
func (c *Controller) HandleScroll(yOffset float64) {
	if c.mode == Orthographic {
		c.orthoExtent = clampExtent(c.orthoExtent - float32(yOffset)*orthoScrollStep)
		return
	}
	c.camera.Scroll(float32(yOffset))
}

// ProcessKeyboard applies held movement keys scaled by dt (seconds), the
// reset key, and edge-triggered projection switches. It reports whether
// Escape asked to quit.
func (c *Controller) ProcessKeyboard(keys input.KeyState, dt float32) bool {
	quit := keys.Pressed(input.KeyEscape)

	for _, m := range moves {
		if keys.Pressed(m.key) {
			c.camera.Move(m.dir, dt)
		}
	}

	if keys.Pressed(input.KeyR) {
		c.camera.SetPose(ResetPose.Position, ResetPose.Yaw, ResetPose.Pitch)
		c.camera.Zoom = resetZoom
	}

	if c.edges.Rising(keys, input.KeyP) {
		c.setMode(Perspective)
	}
	if c.edges.Rising(keys, input.KeyO) {
		c.setMode(Orthographic)
		c.camera.SetPose(OrthoPose.Position, OrthoPose.Yaw, OrthoPose.Pitch)
	}

	return quit
}

func (c *Controller) setMode(mode Projection) {
	c.mode = mode
	c.log.Info("projection switched", zap.Stringer("mode", mode))
}

// ViewMatrix returns the camera's view matrix.
func (c *Controller) ViewMatrix() math.Mat4 {
	return c.camera.ViewMatrix()
}

// ProjectionMatrix returns the projection for a framebuffer size.
func (c *Controller) ProjectionMatrix(width, height int) math.Mat4 {
	w, h := float32(width), float32(height)
	if c.mode == Orthographic {
		e := c.orthoExtent
		v := e * h / w
		return math.Ortho(-e, e, -v, v, Near, Far)
	}
	return math.Perspective(math.Radians(c.camera.Zoom), w/h, Near, Far)
}

// Update runs one frame of input handling and pushes the camera uniforms.
// It reports whether the user asked to quit.
func (c *Controller) Update(keys input.KeyState, dt float32, width, height int, sink Sink) bool {
	quit := c.ProcessKeyboard(keys, dt)

	sink.SetViewMatrix(c.ViewMatrix())
	sink.SetProjectionMatrix(c.ProjectionMatrix(width, height))
	sink.SetViewPosition(c.camera.Position)
	return quit
}

func clampExtent(e float32) float32 {
	return math32.Max(MinOrthoExtent, math32.Min(MaxOrthoExtent, e))
}
