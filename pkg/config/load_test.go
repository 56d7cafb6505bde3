package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("TERMSTRAP_THEME", "")
	t.Setenv("TERMSTRAP_THEMES_DIR", "")
	t.Setenv("NO_COLOR", "")

	cfg := DefaultConfig()
	if cfg.Theme.Name != "flatly" {
		t.Errorf("Theme.Name = %q, want %q", cfg.Theme.Name, "flatly")
	}
	if !strings.HasSuffix(cfg.Theme.Dir, "termstrap/themes") {
		t.Errorf("Theme.Dir = %q, want termstrap/themes suffix", cfg.Theme.Dir)
	}
	if cfg.Terminal.NoColor {
		t.Error("NoColor = true by default")
	}
	if !cfg.Terminal.Mouse {
		t.Error("Mouse = false by default")
	}
}

func TestLoadFromReader(t *testing.T) {
	t.Setenv("TERMSTRAP_THEME", "")
	t.Setenv("TERMSTRAP_THEMES_DIR", "")
	t.Setenv("NO_COLOR", "")

	src := `
[theme]
name = "darkly"
dir = "/tmp/themes"

[terminal]
mouse = false
`
	cfg, err := LoadFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.Theme.Name != "darkly" {
		t.Errorf("Theme.Name = %q, want %q", cfg.Theme.Name, "darkly")
	}
	if cfg.Theme.Dir != "/tmp/themes" {
		t.Errorf("Theme.Dir = %q, want %q", cfg.Theme.Dir, "/tmp/themes")
	}
	if cfg.Terminal.Mouse {
		t.Error("Mouse = true, want false from file")
	}
}

func TestLoadFromReaderBadTOML(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("{{{{")); err == nil {
		t.Error("LoadFromReader() succeeded on malformed input")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TERMSTRAP_THEME", "cyborg")
	t.Setenv("TERMSTRAP_THEMES_DIR", "/opt/themes")
	t.Setenv("NO_COLOR", "1")

	cfg, err := LoadFromReader(strings.NewReader("[theme]\nname = \"flatly\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme.Name != "cyborg" {
		t.Errorf("Theme.Name = %q, want env override %q", cfg.Theme.Name, "cyborg")
	}
	if cfg.Theme.Dir != "/opt/themes" {
		t.Errorf("Theme.Dir = %q, want env override %q", cfg.Theme.Dir, "/opt/themes")
	}
	if !cfg.Terminal.NoColor {
		t.Error("NoColor = false despite NO_COLOR set")
	}
}
