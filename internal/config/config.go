// Package config handles loading and saving marquee settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file inside the config directory.
const FileName = "marquee.yaml"

// GlyphDirName is the subdirectory `marquee init` copies glyph tables into.
const GlyphDirName = "glyphs"

// Speed limits; values outside are clamped.
const (
	MinSpeed = 1
	MaxSpeed = 10
)

// Config holds user settings. Zero fields take their defaults.
type Config struct {
	Speed     int    `yaml:"speed"`               // initial speed, 1..10
	Window    int    `yaml:"window"`              // glyphs visible at once
	GlyphDir  string `yaml:"glyph_dir,omitempty"` // directory with override glyph tables
	Separator string `yaml:"separator,omitempty"` // character repeated under the frame
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Speed:     2,
		Window:    4,
		Separator: "-",
	}
}

// Validate checks the settings, clamps speed and fills in zero fields with
// defaults.
func (c *Config) Validate() error {
	d := Default()
	if c.Speed == 0 {
		c.Speed = d.Speed
	}
	c.Speed = max(MinSpeed, min(c.Speed, MaxSpeed))
	if c.Window == 0 {
		c.Window = d.Window
	}
	if c.Window < 1 {
		return fmt.Errorf("window %d must be at least 1", c.Window)
	}
	if c.Separator == "" {
		c.Separator = d.Separator
	}
	if len(c.Separator) != 1 {
		return fmt.Errorf("separator %q must be a single ASCII character", c.Separator)
	}
	return nil
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDir reads FileName from dir.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save writes settings to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "marquee"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
