// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Camera  CameraConfig  `yaml:"camera"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds frame and sampling settings.
type RenderConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	SampleCount  int    `yaml:"sample_count"`
	SampleMode   string `yaml:"sample_mode"` // "uniform-square" or "random-square"
	LightSamples int    `yaml:"light_samples"`
	LightMode    string `yaml:"light_mode"` // "observed-area", "radiance", "brdf", "combined"
	Shadows      bool   `yaml:"shadows"`
	Workers      int    `yaml:"workers"` // 0 means one per CPU
	Seed         int64  `yaml:"seed"`
}

// SceneConfig selects the scene and its assets.
type SceneConfig struct {
	Name      string `yaml:"name"`
	AssetPath string `yaml:"asset_path"` // OBJ file for mesh scenes
}

// CameraConfig holds interactive camera settings.
type CameraConfig struct {
	MovementSpeed float32 `yaml:"movement_speed"`
	RotationSpeed float32 `yaml:"rotation_speed"`
}

// OutputConfig holds screenshot settings.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:        640,
			Height:       480,
			SampleCount:  1,
			SampleMode:   "uniform-square",
			LightSamples: 10,
			LightMode:    "combined",
			Shadows:      true,
			Workers:      0,
			Seed:         1,
		},
		Scene: SceneConfig{
			Name:      "reference",
			AssetPath: "resources/lowpoly_bunny.obj",
		},
		Camera: CameraConfig{
			MovementSpeed: 3,
			RotationSpeed: 10,
		},
		Output: OutputConfig{
			Path: "raytracing_buffer.bmp",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
