package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile reads a single theme definition from disk, picking the parser by
// file extension (.toml, .yaml, .yml).
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("theme: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadFromTOML(data)
	case ".yaml", ".yml":
		return LoadFromYAML(data)
	default:
		return Definition{}, fmt.Errorf("theme: %s: unsupported extension (expected .toml, .yaml or .yml)", path)
	}
}

// LoadDir loads every theme file in dir into the registry, overwriting
// built-ins with the same name. Files are visited in sorted order so later
// names win deterministically. A missing directory is not an error; a file
// that fails to parse is.
func LoadDir(r *Registry, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("theme: read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".toml", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	loaded := 0
	for _, name := range names {
		def, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return loaded, err
		}
		if err := r.Register(def, true); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}
