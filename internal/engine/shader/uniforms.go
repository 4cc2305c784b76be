package shader

import (
	"fmt"

	"github.com/Faultbox/drone-scene/internal/engine/lighting"
	"github.com/Faultbox/drone-scene/internal/engine/material"
	"github.com/Faultbox/drone-scene/pkg/math"
)

// Uniforms is a typed uniform writer. Every call is an immediate state write
// on the active program.
type Uniforms interface {
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetFloat(name string, v float32)
	SetVec2(name string, v math.Vec2)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, v math.Vec4)
	SetMat4(name string, m math.Mat4)
}

// Uniform names declared by the scene program.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"
	UniformColor        = "objectColor"
	UniformTexture      = "objectTexture"
	UniformUseTexture   = "bUseTexture"
	UniformUseLighting  = "bUseLighting"
	UniformUVScale      = "UVscale"
)

// Bridge maps scene concepts onto uniform writes.
type Bridge struct {
	u Uniforms
}

// NewBridge wraps a uniform writer.
func NewBridge(u Uniforms) *Bridge {
	return &Bridge{u: u}
}

func (b *Bridge) SetModelMatrix(m math.Mat4) { b.u.SetMat4(UniformModel, m) }

func (b *Bridge) SetViewMatrix(m math.Mat4) { b.u.SetMat4(UniformView, m) }

func (b *Bridge) SetProjectionMatrix(m math.Mat4) { b.u.SetMat4(UniformProjection, m) }

func (b *Bridge) SetViewPosition(p math.Vec3) { b.u.SetVec3(UniformViewPosition, p) }

// SetColor selects solid-color shading: it clears bUseTexture and sets the color.
func (b *Bridge) SetColor(c math.Vec4) {
	b.u.SetBool(UniformUseTexture, false)
	b.u.SetVec4(UniformColor, c)
}

func (b *Bridge) SetUseTexture(on bool) { b.u.SetBool(UniformUseTexture, on) }

func (b *Bridge) SetUseLighting(on bool) { b.u.SetBool(UniformUseLighting, on) }

// SetTextureUnit points the named sampler at a texture unit.
func (b *Bridge) SetTextureUnit(name string, unit int) { b.u.SetInt(name, int32(unit)) }

func (b *Bridge) SetUVScale(u, v float32) { b.u.SetVec2(UniformUVScale, math.Vec2{X: u, Y: v}) }

// SetMaterial uploads the Phong material block.
func (b *Bridge) SetMaterial(m material.Material) {
	b.u.SetVec3("material.ambientColor", m.AmbientColor)
	b.u.SetFloat("material.ambientStrength", m.AmbientStrength)
	b.u.SetVec3("material.diffuseColor", m.DiffuseColor)
	b.u.SetVec3("material.specularColor", m.SpecularColor)
	b.u.SetFloat("material.shininess", m.Shininess)
}

// SetLight uploads one entry of the lightSources array. A source without a
// position leaves that uniform untouched.
func (b *Bridge) SetLight(l lighting.Source) {
	prefix := fmt.Sprintf("lightSources[%d].", l.Index)
	if l.Position != nil {
		b.u.SetVec3(prefix+"position", *l.Position)
	}
	b.u.SetVec3(prefix+"ambientColor", l.AmbientColor)
	b.u.SetVec3(prefix+"diffuseColor", l.DiffuseColor)
	b.u.SetVec3(prefix+"specularColor", l.SpecularColor)
	b.u.SetFloat(prefix+"focalStrength", l.FocalStrength)
	b.u.SetFloat(prefix+"specularIntensity", l.SpecularIntensity)
}
