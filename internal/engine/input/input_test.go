package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeFiresOncePerPress(t *testing.T) {
	held := Held{}
	var edge Edge

	assert.False(t, edge.Rising(held, KeyO), "released key never fires")

	held.Set(KeyO, true)
	assert.True(t, edge.Rising(held, KeyO), "first frame of a press fires")
	for i := 0; i < 10; i++ {
		assert.False(t, edge.Rising(held, KeyO), "holding the key must not retrigger")
	}

	held.Set(KeyO, false)
	assert.False(t, edge.Rising(held, KeyO))

	held.Set(KeyO, true)
	assert.True(t, edge.Rising(held, KeyO), "a new press fires again")
}

func TestEdgeTracksKeysIndependently(t *testing.T) {
	held := Held{KeyO: true, KeyP: true}
	var edge Edge

	assert.True(t, edge.Rising(held, KeyO))
	assert.True(t, edge.Rising(held, KeyP))
	assert.False(t, edge.Rising(held, KeyO))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "W", KeyW.String())
	assert.Equal(t, "Unknown", Key(99).String())
	assert.Len(t, Keys(), 10)
}
