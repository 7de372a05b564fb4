package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Constants for default values.
const (
	DefaultConfigPath    = "flags.yaml"
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultLogFile       = "flagwave.log"
	DefaultTheme         = "default"
)

// Settings are the resolved runtime settings.
type Settings struct {
	ConfigPath    string        `env:"FLAGWAVE_CONFIG,default=flags.yaml"`
	FrameInterval time.Duration `env:"FLAGWAVE_FRAME_INTERVAL,default=16ms"`
	Theme         string        `env:"FLAGWAVE_THEME,default=default"`
	Debug         bool          `env:"FLAGWAVE_DEBUG,default=false"`
	LogFile       string        `env:"FLAGWAVE_LOG_FILE,default=flagwave.log"`
	NoColorEnv    string        `env:"NO_COLOR"`

	// Resolution metadata (for debugging)
	ConfigPathSource string // "cli", "env", "default"
	ThemeSource      string // "cli", "env", "default"
}

// NoColor reports whether NO_COLOR was set to any non-empty value.
func (s *Settings) NoColor() bool {
	return s.NoColorEnv != ""
}

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	ThemeName  string

	// Flags to track if they were explicitly set by the user
	ConfigPathSet bool
	ThemeNameSet  bool
}

// Resolve reads the environment through l (envconfig.OsLookuper() in
// production) and applies CLI overrides on top.
func Resolve(ctx context.Context, cli CliFlags, l envconfig.Lookuper) (*Settings, error) {
	var s Settings
	if err := envconfig.ProcessWith(ctx, &s, l); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	s.ConfigPathSource = sourceOf(l, "FLAGWAVE_CONFIG")
	s.ThemeSource = sourceOf(l, "FLAGWAVE_THEME")

	if cli.ConfigPathSet {
		s.ConfigPath = cli.ConfigPath
		s.ConfigPathSource = "cli"
	}
	if cli.ThemeNameSet {
		s.Theme = cli.ThemeName
		s.ThemeSource = "cli"
	}

	if s.ConfigPath == "" {
		return nil, fmt.Errorf("config path must not be empty")
	}
	if s.FrameInterval <= 0 {
		return nil, fmt.Errorf("FLAGWAVE_FRAME_INTERVAL must be positive, got %s", s.FrameInterval)
	}
	if s.Debug && s.LogFile == "" {
		s.LogFile = DefaultLogFile
	}
	return &s, nil
}

func sourceOf(l envconfig.Lookuper, key string) string {
	if v, ok := l.Lookup(key); ok && v != "" {
		return "env"
	}
	return "default"
}
