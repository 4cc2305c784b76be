package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/drone-scene/internal/engine/input"
	"github.com/Faultbox/drone-scene/internal/logger"
)

var sdlScancodes = map[input.Key]sdl.Scancode{
	input.KeyW:      sdl.SCANCODE_W,
	input.KeyA:      sdl.SCANCODE_A,
	input.KeyS:      sdl.SCANCODE_S,
	input.KeyD:      sdl.SCANCODE_D,
	input.KeyQ:      sdl.SCANCODE_Q,
	input.KeyE:      sdl.SCANCODE_E,
	input.KeyR:      sdl.SCANCODE_R,
	input.KeyP:      sdl.SCANCODE_P,
	input.KeyO:      sdl.SCANCODE_O,
	input.KeyEscape: sdl.SCANCODE_ESCAPE,
}

// sdlWindow wraps an SDL2 window and its OpenGL context.
type sdlWindow struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext

	held    input.Held
	closing bool

	// Relative mouse mode only reports motion deltas; accumulate them into a
	// virtual cursor position the way GLFW does for a disabled cursor.
	cursorX, cursorY float64
	onCursor         func(x, y float64)
	onScroll         func(yOffset float64)

	startCounter uint64
	frequency    float64
}

func newSDL(cfg Config) (*sdlWindow, error) {
	w := &sdlWindow{
		config:  cfg,
		held:    input.Held{},
		cursorX: float64(cfg.Width) / 2,
		cursorY: float64(cfg.Height) / 2,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile is the highest macOS provides.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_OPENGL,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	// Capture the mouse so movement drives the camera without a visible cursor.
	sdl.SetRelativeMouseMode(true)

	w.startCounter = sdl.GetPerformanceCounter()
	w.frequency = float64(sdl.GetPerformanceFrequency())

	logger.Info("window created",
		zap.String("backend", "sdl"),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *sdlWindow) PollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.closing = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				w.closing = true
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			for k, sc := range sdlScancodes {
				if sc == e.Keysym.Scancode {
					w.held.Set(k, e.Type == sdl.KEYDOWN)
				}
			}

		case *sdl.MouseMotionEvent:
			w.cursorX += float64(e.XRel)
			w.cursorY += float64(e.YRel)
			if w.onCursor != nil {
				w.onCursor(w.cursorX, w.cursorY)
			}

		case *sdl.MouseWheelEvent:
			dy := float64(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			if w.onScroll != nil {
				w.onScroll(dy)
			}
		}
	}
	return w.closing
}

func (w *sdlWindow) Pressed(k input.Key) bool {
	return w.held.Pressed(k)
}

func (w *sdlWindow) SetCursorHandler(fn func(x, y float64)) { w.onCursor = fn }

func (w *sdlWindow) SetScrollHandler(fn func(yOffset float64)) { w.onScroll = fn }

func (w *sdlWindow) RequestClose() { w.closing = true }

func (w *sdlWindow) SwapBuffers() { w.sdlWindow.GLSwap() }

func (w *sdlWindow) Size() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) Time() float64 {
	return float64(sdl.GetPerformanceCounter()-w.startCounter) / w.frequency
}

// Close destroys the window and shuts SDL2 down.
func (w *sdlWindow) Close() {
	logger.Info("closing window")

	sdl.SetRelativeMouseMode(false)
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}
