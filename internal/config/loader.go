package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// rawConfig mirrors the on-disk YAML. Pointer fields distinguish "unset"
// from zero values so defaults only fill real gaps.
type rawConfig struct {
	Layout *struct {
		OverviewPadding *int `yaml:"overview_padding"`
	} `yaml:"layout"`
	Preview *struct {
		Enabled    *bool `yaml:"enabled"`
		Padding    *int  `yaml:"padding"`
		MaxColumns *int  `yaml:"max_columns"`
	} `yaml:"preview"`
	Render *struct {
		RefreshFallback *int `yaml:"refresh_fallback"`
	} `yaml:"render"`
	Log *struct {
		Level *string `yaml:"level"`
	} `yaml:"log"`
	Hotkeys *struct {
		Fullscreen    *string `yaml:"fullscreen"`
		Overview      *string `yaml:"overview"`
		TogglePreview *string `yaml:"toggle_preview"`
	} `yaml:"hotkeys"`
}

// DefaultConfigPath returns ~/.config/aurora/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "aurora", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads, merges, and validates the configuration at path. A
// missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds a validated Config from YAML bytes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	raw := rawConfig{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyRaw(cfg, raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyRaw(cfg *Config, raw rawConfig) {
	if raw.Layout != nil {
		if raw.Layout.OverviewPadding != nil {
			cfg.Layout.OverviewPadding = *raw.Layout.OverviewPadding
		}
	}
	if raw.Preview != nil {
		if raw.Preview.Enabled != nil {
			cfg.Preview.Enabled = *raw.Preview.Enabled
		}
		if raw.Preview.Padding != nil {
			cfg.Preview.Padding = *raw.Preview.Padding
		}
		if raw.Preview.MaxColumns != nil {
			cfg.Preview.MaxColumns = *raw.Preview.MaxColumns
		}
	}
	if raw.Render != nil {
		if raw.Render.RefreshFallback != nil {
			cfg.Render.RefreshFallback = *raw.Render.RefreshFallback
		}
	}
	if raw.Log != nil {
		if raw.Log.Level != nil {
			cfg.Log.Level = *raw.Log.Level
		}
	}
	if raw.Hotkeys != nil {
		if raw.Hotkeys.Fullscreen != nil {
			cfg.Hotkeys.Fullscreen = *raw.Hotkeys.Fullscreen
		}
		if raw.Hotkeys.Overview != nil {
			cfg.Hotkeys.Overview = *raw.Hotkeys.Overview
		}
		if raw.Hotkeys.TogglePreview != nil {
			cfg.Hotkeys.TogglePreview = *raw.Hotkeys.TogglePreview
		}
	}
}
