// Package config layers the viewer configuration from defaults, an
// optional YAML file and command-line flags.
package config

// Config holds every viewer setting, grouped the way the YAML file is.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// CameraConfig holds the projection parameters and the control
// sensitivities. FOV is the vertical field of view in degrees; speeds
// are per second of real time.
type CameraConfig struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	MoveSpeed   float32 `yaml:"move_speed"`
	RotateSpeed float32 `yaml:"rotate_speed"`
	ZoomSpeed   float32 `yaml:"zoom_speed"`
	// Smoothing is the camera spring frequency; zero snaps instantly.
	Smoothing float32 `yaml:"smoothing"`
}

// SceneConfig holds the sun light and the clear color.
type SceneConfig struct {
	LightDir   [3]float32 `yaml:"light_dir"`
	Ambient    [3]float32 `yaml:"ambient"`
	Diffuse    [3]float32 `yaml:"diffuse"`
	Background [3]float32 `yaml:"background"`
}

// LoggingConfig holds log verbosity and the optional log file path.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the compiled-in configuration: a 720p vsynced
// window, a 45 degree camera with damped controls, and a white sun
// high in the +X sky.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			FOV:         45,
			Near:        0.1,
			Far:         1000,
			MoveSpeed:   6,
			RotateSpeed: 1.8,
			ZoomSpeed:   2,
			Smoothing:   6,
		},
		Scene: SceneConfig{
			LightDir:   [3]float32{0.5, 0.866, 0},
			Ambient:    [3]float32{0.3, 0.3, 0.3},
			Diffuse:    [3]float32{1, 1, 1},
			Background: [3]float32{0.15, 0.15, 0.2},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
