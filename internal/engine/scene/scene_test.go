package scene

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/drone-scene/internal/engine/mesh"
	"github.com/Faultbox/drone-scene/internal/engine/shader"
	"github.com/Faultbox/drone-scene/internal/engine/shader/shadertest"
	"github.com/Faultbox/drone-scene/internal/engine/texture"
	"github.com/Faultbox/drone-scene/internal/engine/texture/texturetest"
	"github.com/Faultbox/drone-scene/internal/engine/transform"
	"github.com/Faultbox/drone-scene/pkg/math"
)

type drawCall struct {
	kind     mesh.Kind
	uniforms map[string]any
}

// fakeMeshes captures the uniform state at every draw call.
type fakeMeshes struct {
	rec     *shadertest.Recorder
	events  *[]string
	loaded  []mesh.Kind
	draws   []drawCall
	loadErr error
}

func (f *fakeMeshes) Load(kind mesh.Kind) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded = append(f.loaded, kind)
	return nil
}

func (f *fakeMeshes) Draw(kind mesh.Kind) {
	f.draws = append(f.draws, drawCall{kind: kind, uniforms: f.rec.Snapshot()})
}

func (f *fakeMeshes) Release() { *f.events = append(*f.events, "meshes") }

// orderedDevice records when textures are deleted relative to meshes.
type orderedDevice struct {
	*texturetest.Device
	events *[]string
}

func (d orderedDevice) DeleteTexture(handle uint32) {
	d.Device.DeleteTexture(handle)
	*d.events = append(*d.events, "texture")
}

type fixture struct {
	rec      *shadertest.Recorder
	dev      *texturetest.Device
	meshes   *fakeMeshes
	registry *texture.Registry
	scene    *Renderer
	events   []string
}

func writeTexture(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644))
}

// newFixture prepares a scene where only the floor and lens textures exist
// on disk.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	writeTexture(t, dir, "rusticwood.png")
	writeTexture(t, dir, "abstract.png")

	f := &fixture{rec: shadertest.NewRecorder(), dev: texturetest.NewDevice()}
	f.meshes = &fakeMeshes{rec: f.rec, events: &f.events}
	f.registry = texture.NewRegistry(orderedDevice{Device: f.dev, events: &f.events})

	cfg := Config{
		ResourceDir: dir,
		Textures: []TextureSpec{
			{Path: "stainless_end.jpg", Tag: TagDroneBody},
			{Path: "rusticwood.png", Tag: TagFloor},
			{Path: "abstract.png", Tag: TagCameraLens},
		},
		FloorUV: math.Vec2{X: 4, Y: 4},
	}
	f.scene = New(cfg, shader.NewBridge(f.rec), f.meshes, f.registry)
	return f
}

func TestPrepareSceneSurvivesMissingTexture(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.scene.PrepareScene())

	assert.Equal(t, mesh.Kinds(), f.meshes.loaded)
	assert.Equal(t, 2, f.registry.Len())
	_, ok := f.registry.FindHandle(TagDroneBody)
	assert.False(t, ok)
	unit, ok := f.registry.FindUnit(TagCameraLens)
	require.True(t, ok)
	assert.Equal(t, 1, unit)
	assert.Len(t, f.scene.Objects(), 8)
}

func TestPrepareSceneUploadsLights(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.scene.PrepareScene())

	assert.Equal(t, math.Vec3{X: -4, Y: 3, Z: -4}, f.rec.Values["lightSources[1].position"])
	assert.Equal(t, math.Vec3{Y: 10}, f.rec.Values["lightSources[2].position"])
	assert.Equal(t, float32(48), f.rec.Values["lightSources[0].focalStrength"])
	assert.NotContains(t, f.rec.Values, "lightSources[0].position")
}

func TestPrepareSceneMeshFailure(t *testing.T) {
	f := newFixture(t)
	f.meshes.loadErr = errors.New("no context")

	assert.Error(t, f.scene.PrepareScene())
}

func TestRenderFrameFloorIsTextured(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.scene.PrepareScene())

	f.scene.RenderFrame()
	require.Len(t, f.meshes.draws, 8)

	floor := f.meshes.draws[0]
	assert.Equal(t, mesh.Plane, floor.kind)
	assert.Equal(t, true, floor.uniforms[shader.UniformUseTexture])
	assert.Equal(t, true, floor.uniforms[shader.UniformUseLighting])
	assert.Equal(t, math.Vec2{X: 4, Y: 4}, floor.uniforms[shader.UniformUVScale])
	assert.Equal(t, int32(0), floor.uniforms[shader.UniformTexture])
	assert.Equal(t, transform.Compose(Floor(math.Vec2{X: 4, Y: 4}).Transform), floor.uniforms[shader.UniformModel])

	handle, _ := f.registry.FindHandle(TagFloor)
	assert.Equal(t, texturetest.Bind{Unit: 0, Handle: handle}, f.dev.Binds[0])
}

func TestRenderFrameColorDrawsDisableTexture(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.scene.PrepareScene())
	f.scene.RenderFrame()

	objects := f.scene.Objects()
	for i, call := range f.meshes.draws {
		o := objects[i]
		assert.Equal(t, o.Mesh, call.kind, o.Name)
		assert.Equal(t, float32(32), call.uniforms["material.shininess"], o.Name)

		_, registered := f.registry.FindHandle(o.Texture)
		if o.Textured() && registered {
			assert.Equal(t, true, call.uniforms[shader.UniformUseTexture], o.Name)
			continue
		}
		assert.Equal(t, false, call.uniforms[shader.UniformUseTexture], o.Name)
		assert.Equal(t, o.Color, call.uniforms[shader.UniformColor], o.Name)
	}

	// The body's texture failed to load, so it falls back to its color.
	assert.Equal(t, "body", objects[1].Name)
	assert.Equal(t, false, f.meshes.draws[1].uniforms[shader.UniformUseTexture])

	used, _ := f.rec.Bool(shader.UniformUseTexture)
	assert.False(t, used, "texturing left enabled after the frame")
}

func TestRenderFrameStateDoesNotLeak(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.scene.PrepareScene())

	f.scene.RenderFrame()
	first := f.meshes.draws
	f.meshes.draws = nil
	f.scene.RenderFrame()

	// Every draw re-establishes these, so the second frame must match the
	// first even though it starts from the last draw's state.
	keys := []string{
		shader.UniformModel,
		shader.UniformUseTexture,
		shader.UniformUseLighting,
		shader.UniformUVScale,
		"material.shininess",
	}
	require.Len(t, f.meshes.draws, len(first))
	for i := range first {
		for _, k := range keys {
			assert.Equal(t, first[i].uniforms[k], f.meshes.draws[i].uniforms[k], "draw %d %s", i, k)
		}
	}
}

func TestRenderFrameMissingMaterialKeepsDrawing(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.scene.PrepareScene())
	f.scene.objects[0].Material = "chrome"

	f.scene.RenderFrame()

	assert.Len(t, f.meshes.draws, 8)
	assert.NotContains(t, f.meshes.draws[0].uniforms, "material.shininess")
	assert.Contains(t, f.meshes.draws[1].uniforms, "material.shininess")
}

func TestReleaseOrder(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.scene.PrepareScene())

	f.scene.Release()

	assert.Equal(t, []string{"texture", "texture", "meshes"}, f.events)
	assert.Empty(t, f.dev.Live)
}

func TestDroneLayout(t *testing.T) {
	parts := Drone()
	require.Len(t, parts, 7)

	arms := 0
	for _, p := range parts {
		if p.Mesh == mesh.Box && p.Transform.Scale == (math.Vec3{X: 2.25, Y: 0.2, Z: 0.5}) {
			arms++
			assert.InDelta(t, 2.35, p.Transform.Translation.Y, 1e-6)
			assert.False(t, p.Textured())
		}
	}
	assert.Equal(t, 4, arms)
	assert.Equal(t, mesh.Cylinder, parts[2].Mesh)
	assert.Equal(t, float32(90), parts[2].Transform.Rotation.X)
}
