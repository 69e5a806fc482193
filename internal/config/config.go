// Package config loads the aoc2023 command's settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings read from config.yaml.
type Config struct {
	// Year is the Advent of Code event inputs are fetched for.
	Year int `yaml:"year"`
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `yaml:"session_file"`
	// CacheDir is where fetched inputs are stored.
	CacheDir string `yaml:"cache_dir"`
	Debug    bool   `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Year:        2023,
		SessionFile: filepath.Join(home, "keys", "aoc.session"),
		CacheDir:    ".",
	}
}

// DefaultPath returns ~/.config/aoc/config.yaml, or "" if the user config
// directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "aoc", "config.yaml")
}

// Load reads the config at path on top of Default. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields that have a fixed range.
func (c Config) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("year %d: Advent of Code started in 2015", c.Year)
	}
	return nil
}
