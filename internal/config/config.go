// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewerConfig holds mesh density and interaction settings.
type ViewerConfig struct {
	// ShellSegments is the radial resolution of the vessel surface.
	ShellSegments int `yaml:"shell_segments"`
	// ShellRows is the axial resolution of the cylindrical section.
	ShellRows int `yaml:"shell_rows"`
	// HeadRows is the row count from tan line to pole on each head.
	HeadRows int `yaml:"head_rows"`

	// Lock flags make a whole attachment class non-interactive.
	LockNozzles bool `yaml:"lock_nozzles"`
	LockLugs    bool `yaml:"lock_lugs"`
	LockSaddles bool `yaml:"lock_saddles"`
	LockDecals  bool `yaml:"lock_decals"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Viewer: ViewerConfig{
			ShellSegments: 64,
			ShellRows:     32,
			HeadRows:      16,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
