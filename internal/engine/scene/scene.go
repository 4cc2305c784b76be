// Package scene prepares and draws the drone scene: it owns the texture
// registry, material table and light rig, and turns the object list into
// uniform writes and draw calls.
package scene

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/drone-scene/internal/engine/lighting"
	"github.com/Faultbox/drone-scene/internal/engine/material"
	"github.com/Faultbox/drone-scene/internal/engine/mesh"
	"github.com/Faultbox/drone-scene/internal/engine/shader"
	"github.com/Faultbox/drone-scene/internal/engine/texture"
	"github.com/Faultbox/drone-scene/internal/engine/transform"
	"github.com/Faultbox/drone-scene/internal/logger"
	"github.com/Faultbox/drone-scene/pkg/math"
)

// textureUnit is the single unit every textured draw samples from. Each
// draw rebinds it to its own texture.
const textureUnit = 0

// Meshes uploads and draws primitive shapes.
type Meshes interface {
	Load(kind mesh.Kind) error
	Draw(kind mesh.Kind)
	Release()
}

// TextureSpec names an image file and its registry tag.
type TextureSpec struct {
	Path string
	Tag  string
}

// Config holds scene asset settings.
type Config struct {
	ResourceDir string
	Textures    []TextureSpec
	FloorUV     math.Vec2
}

// Renderer prepares the scene once and draws it every frame.
type Renderer struct {
	cfg      Config
	bridge   *shader.Bridge
	meshes   Meshes
	textures *texture.Registry

	materials *material.Table
	lights    *lighting.Rig
	objects   []Object

	log *zap.Logger
}

// New creates a scene renderer. Nothing is loaded until PrepareScene.
func New(cfg Config, bridge *shader.Bridge, meshes Meshes, textures *texture.Registry) *Renderer {
	return &Renderer{
		cfg:       cfg,
		bridge:    bridge,
		meshes:    meshes,
		textures:  textures,
		materials: material.NewTable(),
		log:       logger.Named("scene"),
	}
}

// PrepareScene loads meshes and textures, fills the material table and
// uploads the static light parameters. A texture that fails to load is
// logged and skipped; objects that use it fall back to their color. It is
// meant to run once.
func (r *Renderer) PrepareScene() error {
	for _, kind := range mesh.Kinds() {
		if err := r.meshes.Load(kind); err != nil {
			return fmt.Errorf("prepare scene: %w", err)
		}
	}

	failed := 0
	for _, spec := range r.cfg.Textures {
		path := spec.Path
		if r.cfg.ResourceDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(r.cfg.ResourceDir, path)
		}
		if err := r.textures.Load(path, spec.Tag); err != nil {
			failed++
		}
	}

	r.materials = material.NewTable(material.Default())
	r.lights = lighting.Default()
	for _, l := range r.lights.Sources() {
		r.bridge.SetLight(l)
	}

	r.objects = Objects(r.cfg.FloorUV)

	r.log.Info("scene prepared",
		zap.Int("textures", r.textures.Len()),
		zap.Int("texture_failures", failed),
		zap.Int("materials", r.materials.Len()),
		zap.Int("objects", len(r.objects)),
	)
	return nil
}

// Objects returns the prepared draw list.
func (r *Renderer) Objects() []Object {
	return append([]Object(nil), r.objects...)
}

// RenderFrame draws every object in order.
func (r *Renderer) RenderFrame() {
	for _, o := range r.objects {
		r.draw(o)
	}
}

// draw establishes every flag the object depends on before the draw call
// and leaves texturing disabled afterwards.
func (r *Renderer) draw(o Object) {
	r.bridge.SetModelMatrix(transform.Compose(o.Transform))

	if o.Textured() && r.textures.Bind(o.Texture, textureUnit) {
		r.bridge.SetUseTexture(true)
		r.bridge.SetTextureUnit(shader.UniformTexture, textureUnit)
	} else {
		if o.Textured() {
			r.log.Debug("texture not registered, drawing color", zap.String("object", o.Name), zap.String("tag", o.Texture))
		}
		r.bridge.SetColor(o.Color)
	}

	uv := o.UVScale
	if uv == (math.Vec2{}) {
		uv = math.Vec2{X: 1, Y: 1}
	}
	r.bridge.SetUVScale(uv.X, uv.Y)

	r.applyMaterial(o)
	r.bridge.SetUseLighting(true)

	r.meshes.Draw(o.Mesh)

	r.bridge.SetUseTexture(false)
}

func (r *Renderer) applyMaterial(o Object) {
	m, err := r.materials.Lookup(o.Material)
	if err != nil {
		// The shader keeps whatever material was uploaded last.
		r.log.Debug("material lookup missed", zap.String("object", o.Name), zap.String("tag", o.Material), zap.Error(err))
		return
	}
	r.bridge.SetMaterial(m)
}

// Release frees textures and then meshes.
func (r *Renderer) Release() {
	r.textures.ReleaseAll()
	r.meshes.Release()
}
