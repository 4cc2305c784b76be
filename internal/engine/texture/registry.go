package texture

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/drone-scene/internal/logger"
)

// MaxUnits is the number of texture units the registry assigns.
const MaxUnits = 16

// ErrUnitsExhausted is returned when every texture unit is already taken.
var ErrUnitsExhausted = errors.New("texture units exhausted")

// Device creates and binds GPU texture objects.
type Device interface {
	// CreateTexture uploads img with repeat wrapping, linear filtering and
	// mipmaps, and returns the texture handle.
	CreateTexture(img *Image) (uint32, error)
	BindTexture(unit int, handle uint32)
	DeleteTexture(handle uint32)
	IsTexture(handle uint32) bool
}

// Entry is a registered texture. Its unit is its position in the registry.
type Entry struct {
	Tag    string
	Handle uint32
}

// Registry maps tags to GPU textures in registration order.
type Registry struct {
	dev     Device
	entries []Entry
	log     *zap.Logger
}

// NewRegistry creates an empty registry backed by dev.
func NewRegistry(dev Device) *Registry {
	return &Registry{dev: dev, log: logger.Named("texture")}
}

// Load decodes the file at path and registers it under tag. On failure the
// registry is left unchanged.
func (r *Registry) Load(path, tag string) error {
	img, err := Decode(path)
	if err != nil {
		r.log.Warn("texture load failed", zap.String("path", path), zap.String("tag", tag), zap.Error(err))
		return err
	}
	if err := r.Add(tag, img); err != nil {
		r.log.Warn("texture load failed", zap.String("path", path), zap.String("tag", tag), zap.Error(err))
		return err
	}
	return nil
}

// Add uploads an already decoded image and registers it under tag.
// Tags are not checked for duplicates; lookups return the first match.
func (r *Registry) Add(tag string, img *Image) error {
	if len(r.entries) >= MaxUnits {
		return fmt.Errorf("%w: cannot register %q", ErrUnitsExhausted, tag)
	}
	if img.Channels != 3 && img.Channels != 4 {
		return fmt.Errorf("%w: %q has %d", ErrUnsupportedChannels, tag, img.Channels)
	}

	handle, err := r.dev.CreateTexture(img)
	if err != nil {
		return fmt.Errorf("create texture %q: %w", tag, err)
	}
	r.entries = append(r.entries, Entry{Tag: tag, Handle: handle})

	fields := []zap.Field{
		zap.String("tag", tag),
		zap.Uint32("handle", handle),
		zap.Int("unit", len(r.entries)-1),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels),
	}
	if !r.dev.IsTexture(handle) {
		r.log.Error("texture handle is not valid", fields...)
	} else {
		r.log.Info("texture loaded", fields...)
	}
	return nil
}

func (r *Registry) find(tag string) int {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i
		}
	}
	return -1
}

// FindHandle returns the GPU handle registered under tag.
func (r *Registry) FindHandle(tag string) (uint32, bool) {
	i := r.find(tag)
	if i < 0 {
		return 0, false
	}
	return r.entries[i].Handle, true
}

// FindUnit returns the texture unit assigned to tag.
func (r *Registry) FindUnit(tag string) (int, bool) {
	i := r.find(tag)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// Bind binds the texture registered under tag to unit.
func (r *Registry) Bind(tag string, unit int) bool {
	handle, ok := r.FindHandle(tag)
	if !ok {
		return false
	}
	r.dev.BindTexture(unit, handle)
	return true
}

// BindAll binds every texture to its own unit.
func (r *Registry) BindAll() {
	for unit, e := range r.entries {
		r.dev.BindTexture(unit, e.Handle)
	}
}

// Entries returns a copy of the registered textures in unit order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Len returns the number of registered textures.
func (r *Registry) Len() int { return len(r.entries) }

// ReleaseAll deletes every GPU texture and empties the registry, so a second
// call does nothing.
func (r *Registry) ReleaseAll() {
	for _, e := range r.entries {
		r.dev.DeleteTexture(e.Handle)
	}
	r.log.Debug("textures released", zap.Int("count", len(r.entries)))
	r.entries = nil
}
