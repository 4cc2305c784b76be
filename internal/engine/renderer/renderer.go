// Package renderer owns the OpenGL context state: global pipeline setup,
// frame clearing and texture objects.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/drone-scene/internal/engine/texture"
	"github.com/Faultbox/drone-scene/internal/logger"
	"github.com/Faultbox/drone-scene/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor math.Vec4
}

// Renderer handles OpenGL state and implements texture.Device.
type Renderer struct {
	config Config
	log    *zap.Logger
}

var _ texture.Device = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{config: cfg, log: logger.Named("renderer")}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// Alpha blending for RGBA textures and translucent colors
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	// RGB rows are tightly packed
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	c := cfg.ClearColor
	gl.ClearColor(c.X, c.Y, c.Z, c.W)
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Resize handles a framebuffer size change.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// CreateTexture uploads img with repeat wrapping, linear filtering and a
// full mipmap chain.
func (r *Renderer) CreateTexture(img *texture.Image) (uint32, error) {
	internal, format, err := pixelFormat(img.Channels)
	if err != nil {
		return 0, err
	}
	if len(img.Pix) < img.Width*img.Height*img.Channels {
		return 0, fmt.Errorf("pixel buffer too small for %dx%d", img.Width, img.Height)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(img.Width), int32(img.Height), 0,
		format, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

func pixelFormat(channels int) (int32, uint32, error) {
	switch channels {
	case 3:
		return gl.RGB8, gl.RGB, nil
	case 4:
		return gl.RGBA8, gl.RGBA, nil
	}
	return 0, 0, fmt.Errorf("%w: %d", texture.ErrUnsupportedChannels, channels)
}

// BindTexture binds handle to the given texture unit.
func (r *Renderer) BindTexture(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// DeleteTexture frees a texture object.
func (r *Renderer) DeleteTexture(handle uint32) {
	gl.DeleteTextures(1, &handle)
}

// IsTexture reports whether handle names a live texture object.
func (r *Renderer) IsTexture(handle uint32) bool {
	return gl.IsTexture(handle)
}

// Close releases renderer state. Textures, meshes and programs are owned by
// their own packages and must be released first.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
}
