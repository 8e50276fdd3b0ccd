package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLesson     = flag.String("lesson", "", "Lesson to start with (window, rectangle, textures, camera)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagShaders    = flag.String("shaders", "", "Load shaders from this directory instead of the embedded ones")
	flagWatch      = flag.Bool("watch", false, "Reload shaders when their files change (needs -shaders)")
	flagSave       = flag.Bool("write-config", false, "Save the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfig reports whether -write-config was given.
func WriteConfig() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLesson != "" {
		cfg.Lesson.Start = *flagLesson
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagShaders != "" {
		cfg.Assets.ShaderDir = *flagShaders
	}
	if *flagWatch {
		cfg.Assets.WatchShaders = true
	}
}
