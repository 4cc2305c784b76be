package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/drone-scene/internal/engine/input"
	"github.com/Faultbox/drone-scene/internal/logger"
)

var glfwKeys = map[input.Key]glfw.Key{
	input.KeyW:      glfw.KeyW,
	input.KeyA:      glfw.KeyA,
	input.KeyS:      glfw.KeyS,
	input.KeyD:      glfw.KeyD,
	input.KeyQ:      glfw.KeyQ,
	input.KeyE:      glfw.KeyE,
	input.KeyR:      glfw.KeyR,
	input.KeyP:      glfw.KeyP,
	input.KeyO:      glfw.KeyO,
	input.KeyEscape: glfw.KeyEscape,
}

// glfwWindow wraps a GLFW window with a current OpenGL context.
type glfwWindow struct {
	window   *glfw.Window
	onCursor func(x, y float64)
	onScroll func(yOffset float64)
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw window creation failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{window: win}

	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if w.onCursor != nil {
			w.onCursor(xpos, ypos)
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.onScroll != nil {
			w.onScroll(yoff)
		}
	})

	logger.Info("window created",
		zap.String("backend", "glfw"),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *glfwWindow) PollEvents() bool {
	glfw.PollEvents()
	return w.window.ShouldClose()
}

func (w *glfwWindow) Pressed(k input.Key) bool {
	key, ok := glfwKeys[k]
	return ok && w.window.GetKey(key) == glfw.Press
}

func (w *glfwWindow) SetCursorHandler(fn func(x, y float64)) { w.onCursor = fn }

func (w *glfwWindow) SetScrollHandler(fn func(yOffset float64)) { w.onScroll = fn }

func (w *glfwWindow) RequestClose() { w.window.SetShouldClose(true) }

func (w *glfwWindow) SwapBuffers() { w.window.SwapBuffers() }

func (w *glfwWindow) Size() (int, int) { return w.window.GetFramebufferSize() }

func (w *glfwWindow) Time() float64 { return glfw.GetTime() }

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	logger.Info("closing window")
	w.window.Destroy()
	glfw.Terminate()
}
