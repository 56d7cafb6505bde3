package theme

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"
)

// thFileTheme is the on-disk representation of a Definition. Colors live in
// a [colors] table keyed by role name so the creator tool and hand-written
// files share one format.
type thFileTheme struct {
	Name   string            `toml:"name" yaml:"name"`
	Kind   string            `toml:"kind" yaml:"kind"`
	Colors map[string]string `toml:"colors" yaml:"colors"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidHex reports whether s is a well-formed #RRGGBB color, the only form
// accepted in theme files and creator input.
func ValidHex(s string) bool {
	return thHexColorRegex.MatchString(s)
}

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Definition, error) {
	var ft thFileTheme
	if err := toml.Unmarshal(data, &ft); err != nil {
		return Definition{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	return ft.toDefinition()
}

// SaveToTOML serializes a definition to TOML bytes. Only assigned roles are
// emitted; the encoder writes the colors table keys alphabetically.
func SaveToTOML(d Definition) ([]byte, error) {
	ft := thFileTheme{
		Name:   d.Name,
		Kind:   string(d.Kind),
		Colors: make(map[string]string, len(d.Palette)),
	}
	for role, value := range d.Palette {
		ft.Colors[string(role)] = value
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(ft); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// toDefinition validates a file record and converts it to a Definition.
func (ft thFileTheme) toDefinition() (Definition, error) {
	if ft.Name == "" {
		return Definition{}, fmt.Errorf("theme: missing required field %q", "name")
	}

	var kind Kind
	switch ft.Kind {
	case "":
		// inferred from bg luminance by Resolve
	case string(KindLight):
		kind = KindLight
	case string(KindDark):
		kind = KindDark
	default:
		return Definition{}, fmt.Errorf("theme: invalid kind %q (expected light or dark)", ft.Kind)
	}

	palette := make(Palette, len(ft.Colors))

	// Deterministic validation order for stable error messages.
	keys := make([]string, 0, len(ft.Colors))
	for k := range ft.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := ft.Colors[key]
		if !ValidRole(key) {
			return Definition{}, fmt.Errorf("theme: unknown color role %q", key)
		}
		if !thHexColorRegex.MatchString(value) {
			return Definition{}, fmt.Errorf("theme: invalid hex color %q for role %q (expected #RRGGBB)", value, key)
		}
		palette[ColorRole(key)] = value
	}

	if len(palette) == 0 {
		return Definition{}, fmt.Errorf("theme: %q assigns no colors", ft.Name)
	}

	return Definition{Name: ft.Name, Kind: kind, Palette: palette}, nil
}
