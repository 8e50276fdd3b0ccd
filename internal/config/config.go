// Package config handles lesson runner configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hello-gl/internal/engine/camera"
	"github.com/Faultbox/hello-gl/pkg/math"
)

// Config holds all runner settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Lesson  LessonConfig  `yaml:"lesson"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the initial free-fly camera state and input options.
type CameraConfig struct {
	Position       math.Vec3 `yaml:"position"`
	Yaw            float32   `yaml:"yaw"`
	Pitch          float32   `yaml:"pitch"`
	Speed          float32   `yaml:"speed"`
	Sensitivity    float32   `yaml:"sensitivity"`
	Zoom           float32   `yaml:"zoom"`
	CaptureCursor  bool      `yaml:"capture_cursor"`  // relative mouse mode
	ConstrainPitch bool      `yaml:"constrain_pitch"` // clamp pitch to ±89°
	Near           float32   `yaml:"near"`
	Far            float32   `yaml:"far"`
}

// LessonConfig selects the lesson shown at startup.
type LessonConfig struct {
	Start string `yaml:"start"`
}

// AssetsConfig holds shader and texture locations.
type AssetsConfig struct {
	ShaderDir    string `yaml:"shader_dir"` // empty uses the embedded shaders
	WatchShaders bool   `yaml:"watch_shaders"`
	Container    string `yaml:"container"`
	Face         string `yaml:"face"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "LearnOpenGL",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Position:       math.Vec3{X: 0, Y: 0, Z: 3},
			Yaw:            -90,
			Pitch:          0,
			Speed:          2.5,
			Sensitivity:    0.1,
			Zoom:           45,
			CaptureCursor:  true,
			ConstrainPitch: true,
			Near:           0.1,
			Far:            100,
		},
		Lesson: LessonConfig{
			Start: "camera",
		},
		Assets: AssetsConfig{
			Container: "assets/container.jpg",
			Face:      "assets/awesomeface.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that cannot be used as given.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("clip planes near=%g far=%g must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Speed < 0 {
		errs = append(errs, fmt.Errorf("camera speed %g must not be negative", c.Camera.Speed))
	}
	// Zero zoom selects the default field of view.
	if z := c.Camera.Zoom; z != 0 && (z < camera.MinZoom || z > camera.MaxZoom) {
		errs = append(errs, fmt.Errorf("camera zoom %g must be 0 or within [%g, %g]", z, camera.MinZoom, camera.MaxZoom))
	}
	return errors.Join(errs...)
}
