package theme

import (
	"reflect"
	"strings"
	"testing"
)

func TestTOMLRoundTrip(t *testing.T) {
	def := Definition{
		Name: "roundtrip",
		Kind: KindDark,
		Palette: Palette{
			Primary: "#4c9be8",
			Danger:  "#d9534f",
			Bg:      "#2b3e50",
			Fg:      "#ffffff",
		},
	}

	data, err := SaveToTOML(def)
	if err != nil {
		t.Fatalf("SaveToTOML() error: %v", err)
	}

	got, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML() error: %v", err)
	}
	if !reflect.DeepEqual(got, def) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, def)
	}
}

func TestSaveToTOMLSortsColorKeys(t *testing.T) {
	def := Definition{
		Name: "sorted",
		Kind: KindLight,
		Palette: Palette{
			Primary: "#2780e3",
			Danger:  "#d9534f",
			Bg:      "#ffffff",
		},
	}
	data, err := SaveToTOML(def)
	if err != nil {
		t.Fatalf("SaveToTOML() error: %v", err)
	}

	var keys []string
	inColors := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "[colors]" {
			inColors = true
			continue
		}
		if inColors && strings.Contains(line, "=") {
			keys = append(keys, strings.TrimSpace(strings.SplitN(line, "=", 2)[0]))
		}
	}
	want := []string{"bg", "danger", "primary"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("colors emitted as %v, want %v", keys, want)
	}
}

func TestLoadFromTOML(t *testing.T) {
	src := `
name = "custom"
kind = "light"

[colors]
primary = "#2780e3"
bg = "#ffffff"
`
	def, err := LoadFromTOML([]byte(src))
	if err != nil {
		t.Fatalf("LoadFromTOML() error: %v", err)
	}
	if def.Name != "custom" {
		t.Errorf("Name = %q, want %q", def.Name, "custom")
	}
	if def.Kind != KindLight {
		t.Errorf("Kind = %q, want %q", def.Kind, KindLight)
	}
	if def.Palette[Primary] != "#2780e3" {
		t.Errorf("Palette[Primary] = %q, want %q", def.Palette[Primary], "#2780e3")
	}
}

func TestLoadFromTOMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "missing name",
			src:     "[colors]\nprimary = \"#2780e3\"\n",
			wantErr: "missing required field",
		},
		{
			name:    "unknown role",
			src:     "name = \"x\"\n[colors]\nchartreuse = \"#aaff00\"\n",
			wantErr: "unknown color role",
		},
		{
			name:    "bad hex",
			src:     "name = \"x\"\n[colors]\nprimary = \"blue\"\n",
			wantErr: "invalid hex color",
		},
		{
			name:    "bad kind",
			src:     "name = \"x\"\nkind = \"dim\"\n[colors]\nprimary = \"#2780e3\"\n",
			wantErr: "invalid kind",
		},
		{
			name:    "no colors",
			src:     "name = \"x\"\n",
			wantErr: "assigns no colors",
		},
		{
			name:    "not toml",
			src:     "{{{{",
			wantErr: "parse TOML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromTOML([]byte(tt.src))
			if err == nil {
				t.Fatal("LoadFromTOML() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	src := `
name: custom
kind: dark
colors:
  primary: "#4c9be8"
  bg: "#2b3e50"
`
	def, err := LoadFromYAML([]byte(src))
	if err != nil {
		t.Fatalf("LoadFromYAML() error: %v", err)
	}
	if def.Name != "custom" || def.Kind != KindDark {
		t.Errorf("got name=%q kind=%q, want custom/dark", def.Name, def.Kind)
	}
	if def.Palette[Primary] != "#4c9be8" {
		t.Errorf("Palette[Primary] = %q, want %q", def.Palette[Primary], "#4c9be8")
	}
}

func TestValidHex(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#2780e3", true},
		{"#ABCDEF", true},
		{"2780e3", false},
		{"#27e", false},
		{"#2780e", false},
		{"#2780e3a", false},
		{"blue", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidHex(tt.in); got != tt.want {
			t.Errorf("ValidHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
