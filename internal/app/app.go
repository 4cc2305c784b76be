// Package app wires the window, renderer, view controller and scene together
// and runs the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/drone-scene/internal/config"
	"github.com/Faultbox/drone-scene/internal/engine/camera"
	"github.com/Faultbox/drone-scene/internal/engine/mesh"
	"github.com/Faultbox/drone-scene/internal/engine/renderer"
	"github.com/Faultbox/drone-scene/internal/engine/scene"
	"github.com/Faultbox/drone-scene/internal/engine/shader"
	"github.com/Faultbox/drone-scene/internal/engine/shader/shaders"
	"github.com/Faultbox/drone-scene/internal/engine/texture"
	"github.com/Faultbox/drone-scene/internal/engine/view"
	"github.com/Faultbox/drone-scene/internal/engine/window"
	"github.com/Faultbox/drone-scene/internal/logger"
	"github.com/Faultbox/drone-scene/pkg/math"
)

// Viewer is the running application.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	window   window.Window
	renderer *renderer.Renderer
	program  *shader.Program
	bridge   *shader.Bridge
	scene    *scene.Renderer
	view     *view.Controller

	width, height int
}

// New creates the window and GL resources and prepares the scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{cfg: cfg, log: logger.Named("app")}
	v.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		VSync:   cfg.Window.VSync,
		Backend: cfg.Window.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist
	v.width, v.height = v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      v.width,
		Height:     v.height,
		ClearColor: math.RGBA(0, 0, 0, 1),
	})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.program, err = shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to compile scene shader: %w", err)
	}
	v.program.Use()
	v.bridge = shader.NewBridge(v.program)

	v.scene = scene.New(sceneConfig(cfg.Scene), v.bridge, mesh.NewLibrary(), texture.NewRegistry(v.renderer))
	if err := v.scene.PrepareScene(); err != nil {
		v.Close()
		return nil, err
	}

	v.view = view.NewController(newCamera(cfg.Camera), cfg.Camera.OrthoExtent)
	v.window.SetCursorHandler(v.view.HandleCursor)
	v.window.SetScrollHandler(v.view.HandleScroll)

	v.log.Info("viewer initialized")
	return v, nil
}

func sceneConfig(c config.SceneConfig) scene.Config {
	specs := make([]scene.TextureSpec, len(c.Textures))
	for i, t := range c.Textures {
		specs[i] = scene.TextureSpec{Path: t.Path, Tag: t.Tag}
	}
	return scene.Config{
		ResourceDir: c.ResourceDir,
		Textures:    specs,
		FloorUV:     math.Vec2{X: c.FloorUV[0], Y: c.FloorUV[1]},
	}
}

func newCamera(c config.CameraConfig) *camera.Camera {
	cam := camera.New()
	cam.SetPose(math.Vec3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]}, c.Yaw, c.Pitch)
	cam.Zoom = c.Zoom
	cam.Speed = c.Speed
	cam.Sensitivity = c.Sensitivity
	return cam
}

// Run runs the frame loop until the window is closed or Escape is pressed.
func (v *Viewer) Run() error {
	v.log.Info("starting frame loop")
	frames := loop(v.window, v.frame)
	v.log.Info("frame loop stopped", zap.Int("frames", frames))
	return nil
}

// frame renders one frame and reports whether the user asked to quit.
func (v *Viewer) frame(dt float32) bool {
	w, h := v.window.Size()
	if w != v.width || h != v.height {
		v.width, v.height = w, h
		v.renderer.Resize(w, h)
	}

	v.renderer.Begin()
	defer v.renderer.End()

	if w == 0 || h == 0 {
		// Minimized: keep handling keys but skip drawing.
		return v.view.ProcessKeyboard(v.window, dt)
	}

	quit := v.view.Update(v.window, dt, w, h, v.bridge)
	v.scene.RenderFrame()
	return quit
}

// Close releases textures, meshes, the shader program and the window, in
// that order. It is safe on a partially constructed Viewer.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.scene != nil {
		v.scene.Release()
	}
	if v.program != nil {
		v.program.Delete()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// fpsInterval is how often the frame rate is logged.
const fpsInterval = time.Second

// loop polls events, times and renders frames, and presents them until the
// window reports a close request. It returns the number of frames rendered.
func loop(win window.Window, frame func(dt float32) bool) int {
	log := logger.Named("loop")
	var clock frameClock
	total, count := 0, 0
	fpsTimer := time.Now()

	for !win.PollEvents() {
		dt := clock.tick(win.Time())
		if frame(dt) {
			win.RequestClose()
		}
		win.SwapBuffers()
		total++

		count++
		if time.Since(fpsTimer) >= fpsInterval {
			log.Debug("fps", zap.Int("count", count), zap.Float32("dt_ms", dt*1000))
			count = 0
			fpsTimer = time.Now()
		}
	}
	return total
}

// frameClock turns absolute window time into per-frame deltas.
type frameClock struct {
	last    float64
	started bool
}

// tick returns the seconds since the previous tick, or 0 on the first.
func (c *frameClock) tick(now float64) float32 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		dt = 0
	}
	return float32(dt)
}
