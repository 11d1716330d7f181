// Package config loads the yaml configuration file and supplies the
// defaults command-line flags fall back to.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ColorConfig controls when color output is used.
type ColorConfig struct {
	// When is one of "always", "auto" or "never".
	When string `yaml:"when"`
}

// IconConfig controls icon output.
type IconConfig struct {
	// When is one of "always", "auto" or "never".
	When string `yaml:"when"`

	// Theme is "fancy" (nerd-font glyphs) or "unicode".
	Theme string `yaml:"theme"`
}

// SortingConfig controls entry ordering.
type SortingConfig struct {
	// Column is one of "name", "size", "time" or "extension".
	Column string `yaml:"column"`

	// Reverse flips the primary sort order.
	Reverse bool `yaml:"reverse"`

	// DirGrouping is one of "first", "last" or "none".
	DirGrouping string `yaml:"dir-grouping"`
}

// RecursionConfig controls recursive listing.
type RecursionConfig struct {
	// Enabled turns on recursion without the -R flag.
	Enabled bool `yaml:"enabled"`

	// Depth bounds recursion; negative means unbounded.
	Depth int `yaml:"depth"`
}

// Config represents the configuration file contents.
type Config struct {
	// Classic disables both colors and icons.
	Classic bool `yaml:"classic"`

	Color     ColorConfig     `yaml:"color"`
	Icons     IconConfig      `yaml:"icons"`
	Sorting   SortingConfig   `yaml:"sorting"`
	Recursion RecursionConfig `yaml:"recursion"`

	// Layout is one of "grid", "oneline", "long" or "tree".
	Layout string `yaml:"layout"`

	// ShowHidden includes dotfiles in listings.
	ShowHidden bool `yaml:"show-hidden"`

	// IgnoreGlobs drops entries matching any of these patterns.
	IgnoreGlobs []string `yaml:"ignore-globs"`

	// TotalSize aggregates directory sizes from their contents.
	TotalSize bool `yaml:"total-size"`

	// SizeSmall and SizeLarge are the byte thresholds between the
	// small/medium/large size buckets; zero keeps the defaults.
	SizeSmall uint64 `yaml:"size-small"`
	SizeLarge uint64 `yaml:"size-large"`

	// Theme overrides palette entries, element name to 256-color index.
	Theme map[string]int `yaml:"theme"`

	// LogLevel sets warning verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log-level"`

	// FollowSymlinks descends into directories behind symlinks.
	FollowSymlinks bool `yaml:"dereference"`
}

// DefaultConfig returns a Config with the stock values.
func DefaultConfig() *Config {
	return &Config{
		Color:   ColorConfig{When: "auto"},
		Icons:   IconConfig{When: "auto", Theme: "fancy"},
		Sorting: SortingConfig{Column: "name", DirGrouping: "none"},
		Recursion: RecursionConfig{
			Depth: -1, // unbounded
		},
		Layout:   "grid",
		LogLevel: "warn",
	}
}

// DefaultPath returns the stock configuration file location, or "" when
// the user's config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lsd", "config.yaml")
}

// LoadConfig reads the configuration file at path over the defaults. A
// missing file yields the defaults; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enum-valued fields.
func (c *Config) Validate() error {
	if err := validateChoice("color.when", c.Color.When, "always", "auto", "never"); err != nil {
		return err
	}
	if err := validateChoice("icons.when", c.Icons.When, "always", "auto", "never"); err != nil {
		return err
	}
	if err := validateChoice("icons.theme", c.Icons.Theme, "fancy", "unicode"); err != nil {
		return err
	}
	if err := validateChoice("sorting.column", c.Sorting.Column, "name", "size", "time", "extension"); err != nil {
		return err
	}
	if err := validateChoice("sorting.dir-grouping", c.Sorting.DirGrouping, "first", "last", "none"); err != nil {
		return err
	}
	if err := validateChoice("layout", c.Layout, "grid", "oneline", "long", "tree"); err != nil {
		return err
	}
	for _, pattern := range c.IgnoreGlobs {
		if _, err := filepath.Match(pattern, "x"); err != nil {
			return fmt.Errorf("invalid ignore-globs pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// validateChoice checks that value is empty or one of the valid choices.
func validateChoice(field, value string, valid ...string) error {
	if value == "" {
		return nil
	}
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %v, got %q", field, valid, value)
}
