// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms mesh vertices by model, view and projection.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader shades with a texture or solid color under four Phong lights.
//
//go:embed scene.frag
var SceneFragmentShader string
