package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry errors. Callers match with errors.Is.
var (
	// ErrNotFound is returned when a requested theme name is not registered.
	ErrNotFound = errors.New("theme not found")

	// ErrDuplicate is returned when registering a name that already exists
	// without the overwrite flag.
	ErrDuplicate = errors.New("theme already registered")
)

// Registry holds named theme definitions. It is safe for concurrent reads;
// registration is expected to happen single-writer at startup (built-ins
// first, then user theme files layered on top).
type Registry struct {
	mu     sync.RWMutex
	themes map[string]Definition
}

// NewRegistry returns a registry pre-seeded with the built-in themes.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]Definition)}
	registerBuiltins(r)
	return r
}

// NewEmptyRegistry returns a registry with no themes. Used by tests and by
// callers that want full control over the theme collection.
func NewEmptyRegistry() *Registry {
	return &Registry{themes: make(map[string]Definition)}
}

// Register adds a definition under its lowercase name. Returns ErrDuplicate
// if the name is taken and overwrite is false. The definition must carry a
// name.
func (r *Registry) Register(def Definition, overwrite bool) error {
	if def.Name == "" {
		return fmt.Errorf("theme: register: missing name")
	}
	key := strings.ToLower(def.Name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.themes[key]; exists && !overwrite {
		return fmt.Errorf("theme: register %q: %w", def.Name, ErrDuplicate)
	}
	r.themes[key] = def.clone()
	return nil
}

// Lookup returns the definition registered under name (case-insensitive).
// Returns ErrNotFound if absent.
func (r *Registry) Lookup(name string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.themes[strings.ToLower(name)]
	if !ok {
		return Definition{}, fmt.Errorf("theme: lookup %q: %w", name, ErrNotFound)
	}
	return def.clone(), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.themes[strings.ToLower(name)]
	return ok
}

// Names returns all registered theme names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
