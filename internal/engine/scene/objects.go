package scene

import (
	"github.com/Faultbox/drone-scene/internal/engine/material"
	"github.com/Faultbox/drone-scene/internal/engine/mesh"
	"github.com/Faultbox/drone-scene/internal/engine/transform"
	"github.com/Faultbox/drone-scene/pkg/math"
)

// Object describes one draw call. Texture is a registry tag; when it is
// empty, or not registered, the object is drawn in Color instead.
type Object struct {
	Name      string
	Mesh      mesh.Kind
	Transform transform.Request
	Material  string
	Texture   string
	Color     math.Vec4
	UVScale   math.Vec2
}

// Textured reports whether the object asks for a texture.
func (o Object) Textured() bool { return o.Texture != "" }

// Texture tags the scene draws with.
const (
	TagFloor      = "floorTexture"
	TagDroneBody  = "droneTextureBlack"
	TagCameraLens = "cameraLens"
)

var (
	black    = math.RGBA(0, 0, 0, 1)
	darkGrey = math.RGBA(0.2, 0.2, 0.2, 1)
	midGrey  = math.RGBA(0.5, 0.5, 0.5, 1)
	partUV   = math.Vec2{X: 2, Y: 2}
)

func vec(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }

// Floor is the wooden ground plane.
func Floor(uv math.Vec2) Object {
	return Object{
		Name: "floor",
		Mesh: mesh.Plane,
		Transform: transform.Request{
			Scale:       vec(20, 1, 10),
			Translation: vec(0, 1.1, 0),
		},
		Material: material.Default().Tag,
		Texture:  TagFloor,
		Color:    midGrey,
		UVScale:  uv,
	}
}

// arm is one of the four diagonal rotor arms.
func arm(name string, yaw float32, x, z float32) Object {
	return Object{
		Name: name,
		Mesh: mesh.Box,
		Transform: transform.Request{
			Scale:       vec(2.25, 0.2, 0.5),
			Rotation:    vec(0, yaw, 0),
			Translation: vec(x, 2.35, z),
		},
		Material: material.Default().Tag,
		Color:    darkGrey,
		UVScale:  partUV,
	}
}

// Drone returns the drone parts in draw order.
func Drone() []Object {
	def := material.Default().Tag
	return []Object{
		{
			Name: "body",
			Mesh: mesh.Box,
			Transform: transform.Request{
				Scale:       vec(3, 1, 2),
				Translation: vec(0, 2, 0),
			},
			Material: def,
			Texture:  TagDroneBody,
			Color:    black,
			UVScale:  partUV,
		},
		{
			Name: "camera housing",
			Mesh: mesh.Box,
			Transform: transform.Request{
				Scale:       vec(0.8, 0.6, 0.3),
				Translation: vec(0, 1.6, 0.9),
			},
			Material: def,
			Texture:  TagCameraLens,
			Color:    black,
			UVScale:  partUV,
		},
		{
			Name: "lens",
			Mesh: mesh.Cylinder,
			Transform: transform.Request{
				Scale:       vec(0.3, 0.3, 0.4),
				Rotation:    vec(90, 0, 0),
				Translation: vec(0, 1.5, 0.8),
			},
			Material: def,
			Color:    black,
			UVScale:  partUV,
		},
		arm("front left arm", 30, -2, 1.5),
		arm("front right arm", -30, 2, 1.5),
		arm("rear left arm", -30, -2, -1.5),
		arm("rear right arm", 30, 2, -1.5),
	}
}

// Objects returns the whole scene: the floor followed by the drone.
func Objects(floorUV math.Vec2) []Object {
	return append([]Object{Floor(floorUV)}, Drone()...)
}
