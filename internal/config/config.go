// Package config loads the compositor's YAML configuration. Raw on-disk
// values are merged with defaults into an effective Config which is then
// validated; components receive the effective values only.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Defaults applied when the config file is absent or a key is unset.
const (
	DefaultOverviewPadding   = 200
	DefaultPreviewPadding    = 10
	DefaultPreviewMaxColumns = 4
	DefaultRefreshFallback   = 60_000 // millihertz
)

// LayoutConfig controls the layout engine.
type LayoutConfig struct {
	// OverviewPadding is the logical-unit border reserved on all sides of
	// the output in overview mode.
	OverviewPadding int
}

// PreviewConfig controls the thumbnail grid.
type PreviewConfig struct {
	Enabled    bool
	Padding    int
	MaxColumns int
}

// RenderConfig controls composition.
type RenderConfig struct {
	// RefreshFallback is the refresh rate in millihertz assumed for
	// outputs whose backend cannot report one.
	RefreshFallback int
}

// LogConfig controls logging.
type LogConfig struct {
	Level string
}

// HotkeysConfig binds global key sequences to mode switches in a live
// session. An empty sequence disables the binding.
type HotkeysConfig struct {
	Fullscreen    string
	Overview      string
	TogglePreview string
}

// Config is the effective, validated configuration.
type Config struct {
	Layout  LayoutConfig
	Preview PreviewConfig
	Render  RenderConfig
	Log     LogConfig
	Hotkeys HotkeysConfig
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			OverviewPadding: DefaultOverviewPadding,
		},
		Preview: PreviewConfig{
			Enabled:    true,
			Padding:    DefaultPreviewPadding,
			MaxColumns: DefaultPreviewMaxColumns,
		},
		Render: RenderConfig{
			RefreshFallback: DefaultRefreshFallback,
		},
		Log: LogConfig{
			Level: "info",
		},
		Hotkeys: HotkeysConfig{
			Fullscreen:    "Mod4-f",
			Overview:      "Mod4-o",
			TogglePreview: "Mod4-p",
		},
	}
}

// Validate rejects configurations the layout math cannot work with.
func (c *Config) Validate() error {
	if c.Layout.OverviewPadding < 0 {
		return fmt.Errorf("layout.overview_padding must be >= 0, got %d", c.Layout.OverviewPadding)
	}
	if c.Preview.Padding < 0 {
		return fmt.Errorf("preview.padding must be >= 0, got %d", c.Preview.Padding)
	}
	if c.Preview.MaxColumns < 1 {
		return fmt.Errorf("preview.max_columns must be >= 1, got %d", c.Preview.MaxColumns)
	}
	if c.Render.RefreshFallback <= 0 {
		return fmt.Errorf("render.refresh_fallback must be > 0, got %d", c.Render.RefreshFallback)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level must be one of debug/info/warn/error, got %q", c.Log.Level)
	}
}
