package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/drone-scene/internal/engine/input"
)

func TestNewRejectsUnknownBackend(t *testing.T) {
	w, err := New(Config{Title: "test", Width: 10, Height: 10, Backend: "vulkan"})

	assert.Nil(t, w)
	assert.ErrorContains(t, err, "vulkan")
}

func TestEveryKeyIsMapped(t *testing.T) {
	for _, k := range input.Keys() {
		_, ok := sdlScancodes[k]
		assert.True(t, ok, "sdl: %s", k)
		_, ok = glfwKeys[k]
		assert.True(t, ok, "glfw: %s", k)
	}
}

func TestKeyMappingsAreDistinct(t *testing.T) {
	seenSDL := map[any]bool{}
	for _, sc := range sdlScancodes {
		assert.False(t, seenSDL[sc], "sdl scancode %d mapped twice", sc)
		seenSDL[sc] = true
	}
	seenGLFW := map[any]bool{}
	for _, key := range glfwKeys {
		assert.False(t, seenGLFW[key], "glfw key %d mapped twice", key)
		seenGLFW[key] = true
	}
}
