// Package config loads and validates tasktally configuration via viper,
// layering defaults, an optional YAML config file, and TASKTALLY_*
// environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete tasktally configuration
type Config struct {
	Seed    SeedConfig    `mapstructure:"seed"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SeedConfig controls where the session's initial records come from
type SeedConfig struct {
	// Source is the seed file path or http(s) URL (default: "data/tasks.json")
	Source string `mapstructure:"source"`
	// FallbackCount is the size of the generated set used when the source
	// is unreachable or empty (default: 50)
	FallbackCount int `mapstructure:"fallback_count"`
	// TimeoutSeconds bounds a remote seed fetch (default: 10)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord", or a custom theme name
	Theme string `mapstructure:"theme"`
	// DefaultSort is the initial table ordering: "roi", "revenue", "time", "created"
	DefaultSort string `mapstructure:"default_sort"`
	// ChartWidth is the width of the revenue bar chart in columns (default: 40)
	ChartWidth int `mapstructure:"chart_width"`
	// ShowChart toggles the revenue chart panel (default: true)
	ShowChart bool `mapstructure:"show_chart"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the log directory (default: "" meaning $HOME/.local/state/tasktally)
	Dir string `mapstructure:"dir"`
}

// FetchTimeout returns the seed fetch timeout as a time.Duration
func (c *SeedConfig) FetchTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolveLogDir returns the logging directory, applying the default when
// the configured value is empty.
func (c *LoggingConfig) ResolveLogDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "tasktally")
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Seed: SeedConfig{
			Source:         "data/tasks.json",
			FallbackCount:  50,
			TimeoutSeconds: 10,
		},
		TUI: TUIConfig{
			Theme:       "default",
			DefaultSort: "roi",
			ChartWidth:  40,
			ShowChart:   true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Seed defaults
	viper.SetDefault("seed.source", defaults.Seed.Source)
	viper.SetDefault("seed.fallback_count", defaults.Seed.FallbackCount)
	viper.SetDefault("seed.timeout_seconds", defaults.Seed.TimeoutSeconds)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.default_sort", defaults.TUI.DefaultSort)
	viper.SetDefault("tui.chart_width", defaults.TUI.ChartWidth)
	viper.SetDefault("tui.show_chart", defaults.TUI.ShowChart)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Get unmarshals the current viper state into a Config. Fields that fail
// to unmarshal keep their defaults.
func Get() *Config {
	cfg := Default()
	_ = viper.Unmarshal(cfg)
	return cfg
}

// ConfigDir returns the directory where the tasktally config file lives.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "tasktally")
}
