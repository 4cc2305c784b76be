// Package input defines the viewer's key set and the per-frame key-state
// contract that window backends satisfy.
package input

// Key identifies one of the keys the viewer reacts to.
type Key int

// The fixed key set.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyR
	KeyP
	KeyO
	KeyEscape

	keyCount
)

var keyNames = [keyCount]string{"W", "A", "S", "D", "Q", "E", "R", "P", "O", "Escape"}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Keys returns every key in the set.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// KeyState reports whether a key is currently held down (level, not edge).
type KeyState interface {
	Pressed(k Key) bool
}

// Held is a KeyState backed by a set. Backends that receive key events update
// it; tests construct it directly.
type Held map[Key]bool

// Pressed implements KeyState.
func (h Held) Pressed(k Key) bool {
	return h[k]
}

// Set records a key transition.
func (h Held) Set(k Key, down bool) {
	if down {
		h[k] = true
		return
	}
	delete(h, k)
}

// Edge turns level-triggered key state into press events: Rising reports
// true once per physical press and stays false while the key is held.
type Edge struct {
	latched [keyCount]bool
}

// Rising reports whether k went from released to pressed since the last call.
func (e *Edge) Rising(state KeyState, k Key) bool {
	down := state.Pressed(k)
	if !down {
		e.latched[k] = false
		return false
	}
	if e.latched[k] {
		return false
	}
	e.latched[k] = true
	return true
}
