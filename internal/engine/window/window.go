// Package window creates the OpenGL-capable display window and exposes its
// input as per-frame key state plus cursor and scroll callbacks.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/drone-scene/internal/engine/input"
)

func init() {
	// OpenGL and the windowing libraries must be driven from the main thread.
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	VSync   bool
	Backend string
}

// Window is the windowing/input collaborator. Cursor and scroll handlers run
// synchronously inside PollEvents on the calling thread.
type Window interface {
	input.KeyState

	// PollEvents drains pending events and reports whether the user asked
	// the window to close.
	PollEvents() bool
	SetCursorHandler(fn func(x, y float64))
	SetScrollHandler(fn func(yOffset float64))
	RequestClose()
	SwapBuffers()
	Size() (width, height int)
	// Time returns seconds elapsed since the window was created.
	Time() float64
	Close()
}

// New creates a window with the requested backend.
func New(cfg Config) (Window, error) {
	var (
		w   Window
		err error
	)
	switch cfg.Backend {
	case "", "sdl":
		w, err = newSDL(cfg)
	case "glfw":
		w, err = newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}
