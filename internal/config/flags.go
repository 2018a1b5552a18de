package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagShape       = flag.String("shape", "", "Mesh shape: sphere, box or torus")
	flagProjection  = flag.String("projection", "", "Startup camera: orthographic or perspective")
	flagSeed        = flag.String("seed", "", "Image file preloaded onto the paint canvas")
	flagWriteConfig = flag.Bool("write-config", false, "Write the default config file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigRequested reports whether --write-config was passed.
func WriteConfigRequested() bool {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
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
	if *flagShape != "" {
		cfg.Mesh.Shape = *flagShape
	}
	if *flagProjection != "" {
		cfg.Camera.Projection = *flagProjection
	}
	if *flagSeed != "" {
		cfg.Paint.SeedImage = *flagSeed
	}
}
