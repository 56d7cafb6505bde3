package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadFromYAML parses a YAML theme definition from raw bytes. The shape
// matches the TOML format: name, kind, and a colors map keyed by role.
func LoadFromYAML(data []byte) (Definition, error) {
	var ft thFileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return Definition{}, fmt.Errorf("theme: parse YAML: %w", err)
	}
	return ft.toDefinition()
}
