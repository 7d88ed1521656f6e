package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up inside the base directory.
const ConfigFileName = "jam.yaml"

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the file names and rendering options. Relative paths are
// resolved against the base directory.
type Config struct {
	Log    string `yaml:"log"`
	Totals string `yaml:"totals"`
	CSV    string `yaml:"csv"`
	Wrap   int    `yaml:"wrap"`
	Color  string `yaml:"color"`
}

// DefaultConfig mirrors the layout of a plain working directory:
// TIME_USAGE.md in, TOTAL.md and time.csv out.
func DefaultConfig() Config {
	return Config{
		Log:    "TIME_USAGE.md",
		Totals: "TOTAL.md",
		CSV:    "time.csv",
		Wrap:   80,
		Color:  ColorAuto,
	}
}

// LoadConfig reads jam.yaml from dir over the defaults. A missing file is not an error.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	cfg.merge(fromFile)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) merge(other Config) {
	if other.Log != "" {
		c.Log = other.Log
	}
	if other.Totals != "" {
		c.Totals = other.Totals
	}
	if other.CSV != "" {
		c.CSV = other.CSV
	}
	if other.Wrap > 0 {
		c.Wrap = other.Wrap
	}
	if other.Color != "" {
		c.Color = other.Color
	}
}

func (c Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color %q (expected auto|always|never)", c.Color)
	}
}
