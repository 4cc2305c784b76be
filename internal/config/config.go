// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Scene   SceneConfig   `yaml:"scene" toml:"scene"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title   string `yaml:"title" toml:"title"`
	Width   int    `yaml:"width" toml:"width"`
	Height  int    `yaml:"height" toml:"height"`
	VSync   bool   `yaml:"vsync" toml:"vsync"`
	Backend string `yaml:"backend" toml:"backend"` // "sdl" or "glfw"
}

// CameraConfig holds the starting pose and input tuning of the fly camera.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position" toml:"position"`
	Yaw         float32    `yaml:"yaw" toml:"yaw"`
	Pitch       float32    `yaml:"pitch" toml:"pitch"`
	Zoom        float32    `yaml:"zoom" toml:"zoom"`
	Speed       float32    `yaml:"speed" toml:"speed"`
	Sensitivity float32    `yaml:"sensitivity" toml:"sensitivity"`
	OrthoExtent float32    `yaml:"ortho_extent" toml:"ortho_extent"`
}

// TextureConfig names one image file and the tag it is registered under.
type TextureConfig struct {
	Path string `yaml:"path" toml:"path"`
	Tag  string `yaml:"tag" toml:"tag"`
}

// SceneConfig holds scene asset settings.
type SceneConfig struct {
	ResourceDir string          `yaml:"resource_dir" toml:"resource_dir"`
	Textures    []TextureConfig `yaml:"textures" toml:"textures"`
	FloorUV     [2]float32      `yaml:"floor_uv" toml:"floor_uv"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Default returns the built-in drone scene settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "Drone Scene",
			Width:   1000,
			Height:  800,
			VSync:   true,
			Backend: BackendSDL,
		},
		Camera: CameraConfig{
			Position:    [3]float32{12, 8, 10},
			Yaw:         -135,
			Pitch:       -25,
			Zoom:        25,
			Speed:       2.5,
			Sensitivity: 0.1,
			OrthoExtent: 10,
		},
		Scene: SceneConfig{
			ResourceDir: "Resources",
			Textures: []TextureConfig{
				{Path: "stainless_end.jpg", Tag: "droneTextureBlack"},
				{Path: "tilesf2.jpg", Tag: "droneTextureTiles"},
				{Path: "backdrop.jpg", Tag: "droneTextureBackDrops"},
				{Path: "pavers.jpg", Tag: "droneTextureStainlessEnd"},
				{Path: "rusticwood.jpg", Tag: "floorTexture"},
				{Path: "abstract.jpg", Tag: "cameraLens"},
			},
			FloorUV: [2]float32{4, 4},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
