// Package styler applies computed style sheets to the live terminal styling
// subsystem. The Styler owns the active-theme handle: a theme switch runs
// lookup, mapping and application to completion before any widget render
// path can observe the new state.
package styler

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/termstrap/pkg/style"
	"gitlab.com/tinyland/lab/termstrap/pkg/theme"
)

// ApplyError reports that the styling subsystem is unavailable or rejected
// the style push. Apply never partially succeeds: on error the previous
// theme remains active.
type ApplyError struct {
	Reason string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("styler: apply: %s", e.Reason)
}

// ChangeFunc is notified after a theme switch completes. It receives the
// newly active definition and its computed sheet.
type ChangeFunc func(theme.Definition, style.Sheet)

// Styler pushes style sheets into the terminal and tracks the active theme.
type Styler struct {
	reg *theme.Registry
	out *termenv.Output

	// ttyCheck gates the styling-subsystem availability probe. Disabled in
	// tests that apply against a buffer.
	ttyCheck bool

	mu        sync.Mutex
	active    theme.Definition
	hasActive bool
	sheet     style.Sheet
	listeners []ChangeFunc
}

// Option configures a Styler.
type Option func(*Styler)

// WithOutput sets the termenv output the styler pushes escape sequences to.
func WithOutput(out *termenv.Output) Option {
	return func(s *Styler) { s.out = out }
}

// WithTTYCheck enables or disables the terminal availability probe.
func WithTTYCheck(enabled bool) Option {
	return func(s *Styler) { s.ttyCheck = enabled }
}

// New creates a Styler over the given registry. By default it writes to
// stdout with the environment-detected color profile and probes for a real
// terminal before applying.
func New(reg *theme.Registry, opts ...Option) *Styler {
	s := &Styler{
		reg:      reg,
		out:      termenv.NewOutput(os.Stdout),
		ttyCheck: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Use switches the active theme by name: registry lookup, style computation,
// then application. Returns theme.ErrNotFound for unknown names and
// *ApplyError when the styling subsystem is unavailable. The switch is
// atomic with respect to Active and Sheet.
func (s *Styler) Use(name string) error {
	def, err := s.reg.Lookup(name)
	if err != nil {
		return err
	}

	def = theme.Degrade(def.Resolve(), s.out.Profile)
	sheet := style.Compute(def)

	if err := s.push(def, sheet); err != nil {
		return err
	}
	return nil
}

// Apply pushes an already-computed sheet without changing the active
// definition's identity. Applying the same sheet twice is a no-op visually;
// the same escape sequences produce the same terminal state.
func (s *Styler) Apply(sheet style.Sheet) error {
	s.mu.Lock()
	def := s.active
	s.mu.Unlock()
	return s.push(def, sheet)
}

// push validates availability, emits the terminal default colors, swaps the
// handle and notifies listeners.
func (s *Styler) push(def theme.Definition, sheet style.Sheet) error {
	if err := s.available(); err != nil {
		return err
	}

	// Recolor the terminal's default foreground/background so content
	// outside widget cells matches the theme. Frame carries the root
	// window colors.
	if root, ok := sheet[style.Frame]; ok {
		s.out.SetForegroundColor(termenv.RGBColor(root.Foreground))
		s.out.SetBackgroundColor(termenv.RGBColor(root.Background))
	}

	s.mu.Lock()
	s.active = def
	s.hasActive = def.Name != ""
	s.sheet = cloneSheet(sheet)
	listeners := make([]ChangeFunc, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(def, cloneSheet(sheet))
	}
	return nil
}

// available reports whether the styling subsystem can accept a push.
func (s *Styler) available() error {
	if s.out.Profile == termenv.Ascii {
		return &ApplyError{Reason: "terminal reports no color support"}
	}
	if !s.ttyCheck {
		return nil
	}
	f, ok := s.out.Writer().(*os.File)
	if !ok {
		return &ApplyError{Reason: "output is not a terminal"}
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return &ApplyError{Reason: "output is not a terminal"}
	}
	return nil
}

// Active returns the currently applied definition, or false if no theme has
// been applied yet.
func (s *Styler) Active() (theme.Definition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.hasActive
}

// Sheet returns a copy of the current style sheet. Widget creation paths
// read this after a switch completes.
func (s *Styler) Sheet() style.Sheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSheet(s.sheet)
}

// OnChange registers a listener invoked after every completed theme switch.
func (s *Styler) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reset restores the terminal's default colors. Call at shutdown.
func (s *Styler) Reset() {
	// OSC 110/111 reset the default foreground and background.
	fmt.Fprint(s.out.Writer(), "\x1b]110\x07\x1b]111\x07")
	s.mu.Lock()
	s.active = theme.Definition{}
	s.hasActive = false
	s.sheet = nil
	s.mu.Unlock()
}

// cloneSheet copies a sheet so callers cannot mutate styler-held state.
func cloneSheet(in style.Sheet) style.Sheet {
	if in == nil {
		return nil
	}
	out := make(style.Sheet, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
