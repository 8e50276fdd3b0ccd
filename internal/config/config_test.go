package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/Faultbox/hello-gl/pkg/math"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Window defaults
	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Window.Height)
	}
	if cfg.Window.Title != "LearnOpenGL" {
		t.Errorf("expected title LearnOpenGL, got %s", cfg.Window.Title)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Camera defaults
	if cfg.Camera.Position != (math.Vec3{Z: 3}) {
		t.Errorf("expected camera at (0, 0, 3), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Yaw != -90 || cfg.Camera.Pitch != 0 {
		t.Errorf("expected yaw -90 pitch 0, got %f %f", cfg.Camera.Yaw, cfg.Camera.Pitch)
	}
	if cfg.Camera.Speed != 2.5 {
		t.Errorf("expected speed 2.5, got %f", cfg.Camera.Speed)
	}
	if cfg.Camera.Sensitivity != 0.1 {
		t.Errorf("expected sensitivity 0.1, got %f", cfg.Camera.Sensitivity)
	}
	if cfg.Camera.Zoom != 45 {
		t.Errorf("expected zoom 45, got %f", cfg.Camera.Zoom)
	}
	if !cfg.Camera.ConstrainPitch {
		t.Error("expected constrain_pitch to be true by default")
	}

	if cfg.Lesson.Start != "camera" {
		t.Errorf("expected start lesson 'camera', got %s", cfg.Lesson.Start)
	}
	if cfg.Assets.ShaderDir != "" {
		t.Errorf("expected embedded shaders by default, got dir %s", cfg.Assets.ShaderDir)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  title: "Lessons"
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  position: {x: 1, y: 2, z: 10}
  yaw: -45
  pitch: 15
  speed: 5
  sensitivity: 0.2
  zoom: 30
  capture_cursor: false

lesson:
  start: "textures"

assets:
  shader_dir: "shaders"
  watch_shaders: true
  container: "img/wood.png"

logging:
  level: "debug"
  log_file: "lessons.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Title != "Lessons" {
		t.Errorf("expected title Lessons, got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.Position != (math.Vec3{X: 1, Y: 2, Z: 10}) {
		t.Errorf("expected position (1, 2, 10), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Yaw != -45 || cfg.Camera.Pitch != 15 {
		t.Errorf("expected yaw -45 pitch 15, got %f %f", cfg.Camera.Yaw, cfg.Camera.Pitch)
	}
	if cfg.Camera.Speed != 5 || cfg.Camera.Sensitivity != 0.2 || cfg.Camera.Zoom != 30 {
		t.Errorf("unexpected camera tuning: %+v", cfg.Camera)
	}
	if cfg.Camera.CaptureCursor {
		t.Error("expected capture_cursor to be false")
	}
	// Keys missing from the file keep their defaults.
	if !cfg.Camera.ConstrainPitch {
		t.Error("expected constrain_pitch to keep its default")
	}
	if cfg.Camera.Far != 100 {
		t.Errorf("expected far plane default 100, got %f", cfg.Camera.Far)
	}

	if cfg.Lesson.Start != "textures" {
		t.Errorf("expected start lesson textures, got %s", cfg.Lesson.Start)
	}
	if cfg.Assets.ShaderDir != "shaders" || !cfg.Assets.WatchShaders {
		t.Errorf("unexpected assets: %+v", cfg.Assets)
	}
	if cfg.Assets.Container != "img/wood.png" {
		t.Errorf("expected container img/wood.png, got %s", cfg.Assets.Container)
	}
	if cfg.Assets.Face != "assets/awesomeface.png" {
		t.Errorf("expected default face texture, got %s", cfg.Assets.Face)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "lessons.log" {
		t.Errorf("expected log file 'lessons.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "bad syntax",
			content: `
window:
  width: not a number
  invalid syntax here
`,
		},
		{
			name: "unknown key",
			content: `
window:
  widht: 1024
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load cleanly: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("expected defaults to survive, got width %d", cfg.Window.Width)
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading non-existent file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }, "clip planes"},
		{"negative near", func(c *Config) { c.Camera.Near = -1 }, "clip planes"},
		{"negative speed", func(c *Config) { c.Camera.Speed = -1 }, "speed"},
		{"zoom too wide", func(c *Config) { c.Camera.Zoom = 90 }, "zoom"},
		{"zoom below minimum", func(c *Config) { c.Camera.Zoom = 0.5 }, "zoom"},
		{"negative zoom", func(c *Config) { c.Camera.Zoom = -1 }, "zoom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateZoomBounds(t *testing.T) {
	for _, zoom := range []float32{0, 1, 30, 45} {
		cfg := Default()
		cfg.Camera.Zoom = zoom
		if err := cfg.Validate(); err != nil {
			t.Errorf("zoom %g: unexpected error %v", zoom, err)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Window.Width = 1024
	cfg.Camera.Position = math.Vec3{X: -1, Y: 0.5, Z: 4}
	cfg.Lesson.Start = "rectangle"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}

	if loaded.Window.Width != 1024 {
		t.Errorf("expected width 1024, got %d", loaded.Window.Width)
	}
	if loaded.Camera.Position != cfg.Camera.Position {
		t.Errorf("expected position %v, got %v", cfg.Camera.Position, loaded.Camera.Position)
	}
	if loaded.Lesson.Start != "rectangle" {
		t.Errorf("expected lesson rectangle, got %s", loaded.Lesson.Start)
	}
}

func TestSaveToUserConfig(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))

	cfg := Default()
	cfg.Lesson.Start = "camera"
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	path := UserConfigPath()
	if want := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "hello-gl", "config.yaml"); path != want {
		t.Errorf("UserConfigPath() = %s, want %s", path, want)
	}
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Lesson.Start != "camera" {
		t.Errorf("expected lesson camera, got %s", loaded.Lesson.Start)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "lesson flag",
			setup: func() { *flagLesson = "rectangle" },
			verify: func(cfg *Config) {
				if cfg.Lesson.Start != "rectangle" {
					t.Errorf("expected lesson rectangle, got %s", cfg.Lesson.Start)
				}
			},
			teardown: func() { *flagLesson = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "shader flags",
			setup: func() {
				*flagShaders = "dev/shaders"
				*flagWatch = true
			},
			verify: func(cfg *Config) {
				if cfg.Assets.ShaderDir != "dev/shaders" {
					t.Errorf("expected shader dir dev/shaders, got %s", cfg.Assets.ShaderDir)
				}
				if !cfg.Assets.WatchShaders {
					t.Error("expected watch_shaders to be true with watch flag")
				}
			},
			teardown: func() {
				*flagShaders = ""
				*flagWatch = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, not file
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height from file since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  near: 10\n  far: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject near >= far")
	}
}
