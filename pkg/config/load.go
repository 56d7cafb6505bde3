// Package config loads the termstrap application configuration: the startup
// theme, the user themes directory, and terminal behavior toggles.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level application configuration.
type Config struct {
	Theme    ThemeConfig    `toml:"theme"`
	Terminal TerminalConfig `toml:"terminal"`
}

// ThemeConfig selects the startup theme and where user themes live.
type ThemeConfig struct {
	// Name is the theme applied at startup.
	Name string `toml:"name"`

	// Dir is the directory scanned for user theme files (TOML/YAML).
	// Creator output is written here.
	Dir string `toml:"dir"`
}

// TerminalConfig holds terminal behavior toggles.
type TerminalConfig struct {
	// NoColor disables theme application entirely (honors the NO_COLOR
	// convention).
	NoColor bool `toml:"no_color"`

	// Mouse enables mouse support in the demo gallery.
	Mouse bool `toml:"mouse"`
}

// Load reads configuration from the standard config path. Search order:
//  1. $XDG_CONFIG_HOME/termstrap/config.toml
//  2. ~/.config/termstrap/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Theme: ThemeConfig{
			Name: "flatly",
			Dir:  filepath.Join(xdgConfigHome(home), "termstrap", "themes"),
		},
		Terminal: TerminalConfig{
			Mouse: true,
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TERMSTRAP_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("TERMSTRAP_THEMES_DIR"); v != "" {
		cfg.Theme.Dir = v
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Terminal.NoColor = true
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	xdg := xdgConfigHome(home)

	paths := []string{
		filepath.Join(xdg, "termstrap", "config.toml"),
	}
	fallback := filepath.Join(home, ".config", "termstrap", "config.toml")
	if fallback != paths[0] {
		paths = append(paths, fallback)
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
