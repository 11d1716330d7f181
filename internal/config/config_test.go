package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Color.When != "auto" {
		t.Errorf("color.when = %q, want auto", cfg.Color.When)
	}
	if cfg.Icons.When != "auto" || cfg.Icons.Theme != "fancy" {
		t.Errorf("icons = %+v, want auto/fancy", cfg.Icons)
	}
	if cfg.Sorting.Column != "name" || cfg.Sorting.Reverse {
		t.Errorf("sorting = %+v, want name ascending", cfg.Sorting)
	}
	if cfg.Recursion.Enabled || cfg.Recursion.Depth != -1 {
		t.Errorf("recursion = %+v, want disabled and unbounded", cfg.Recursion)
	}
	if cfg.Layout != "grid" {
		t.Errorf("layout = %q, want grid", cfg.Layout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log-level = %q, want warn", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not fail: %v", err)
	}
	if cfg.Layout != "grid" || cfg.Color.When != "auto" {
		t.Errorf("missing file must yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("empty path must not fail: %v", err)
	}
	if cfg.Sorting.Column != "name" {
		t.Errorf("empty path must yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
classic: true
layout: long
color:
  when: never
icons:
  when: always
  theme: unicode
sorting:
  column: time
  reverse: true
  dir-grouping: first
recursion:
  enabled: true
  depth: 3
show-hidden: true
ignore-globs:
  - "*.bak"
  - "*.o"
total-size: true
size-small: 1024
size-large: 1048576
theme:
  dir: 33
  broken-symlink: 196
log-level: debug
dereference: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !cfg.Classic || cfg.Layout != "long" || cfg.Color.When != "never" {
		t.Errorf("top-level fields not applied: %+v", cfg)
	}
	if cfg.Icons.Theme != "unicode" {
		t.Errorf("icons.theme = %q, want unicode", cfg.Icons.Theme)
	}
	if cfg.Sorting.Column != "time" || !cfg.Sorting.Reverse || cfg.Sorting.DirGrouping != "first" {
		t.Errorf("sorting not applied: %+v", cfg.Sorting)
	}
	if !cfg.Recursion.Enabled || cfg.Recursion.Depth != 3 {
		t.Errorf("recursion not applied: %+v", cfg.Recursion)
	}
	if len(cfg.IgnoreGlobs) != 2 || cfg.IgnoreGlobs[0] != "*.bak" {
		t.Errorf("ignore-globs not applied: %v", cfg.IgnoreGlobs)
	}
	if cfg.SizeSmall != 1024 || cfg.SizeLarge != 1048576 {
		t.Errorf("size thresholds not applied: %d %d", cfg.SizeSmall, cfg.SizeLarge)
	}
	if cfg.Theme["dir"] != 33 || cfg.Theme["broken-symlink"] != 196 {
		t.Errorf("theme overrides not applied: %v", cfg.Theme)
	}
	if !cfg.FollowSymlinks {
		t.Error("dereference not applied")
	}
}

func TestLoadConfigPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, "layout: oneline\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Layout != "oneline" {
		t.Errorf("layout = %q, want oneline", cfg.Layout)
	}
	if cfg.Icons.Theme != "fancy" || cfg.Recursion.Depth != -1 {
		t.Errorf("unset fields must keep defaults: %+v", cfg)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfig(t, "layout: [unterminated\n")

	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed yaml must be an error, not silently ignored")
	}
}

func TestValidateRejectsBadChoices(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad color.when", func(c *Config) { c.Color.When = "sometimes" }, "color.when"},
		{"bad icons.when", func(c *Config) { c.Icons.When = "maybe" }, "icons.when"},
		{"bad icons.theme", func(c *Config) { c.Icons.Theme = "ascii" }, "icons.theme"},
		{"bad sorting.column", func(c *Config) { c.Sorting.Column = "owner" }, "sorting.column"},
		{"bad dir-grouping", func(c *Config) { c.Sorting.DirGrouping = "middle" }, "sorting.dir-grouping"},
		{"bad layout", func(c *Config) { c.Layout = "columns" }, "layout"},
		{"bad glob", func(c *Config) { c.IgnoreGlobs = []string{"[unterminated"} }, "ignore-globs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should name field %q", err, tt.want)
			}
		})
	}
}

func TestValidateAcceptsEmptyFields(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero config must validate, unset fields fall back later: %v", err)
	}
}
