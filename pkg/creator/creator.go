// Package creator implements the interactive theme editor: one input per
// color role, a live preview, and TOML output into the user themes
// directory. New themes register immediately so the gallery can apply them
// without a restart.
package creator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termstrap/pkg/theme"
)

// Model is the creator's Bubbletea model. Focus index 0 is the name field;
// indices 1..len(roles) address the role inputs in Roles() order.
type Model struct {
	reg *theme.Registry
	dir string

	name   textinput.Model
	kind   theme.Kind
	roles  []theme.ColorRole
	inputs []textinput.Model
	focus  int

	status string
	width  int
	height int
}

// New builds a creator model seeded from the named base theme. An unknown
// base leaves all fields empty.
func New(reg *theme.Registry, dir, base string) Model {
	roles := theme.Roles()

	m := Model{
		reg:   reg,
		dir:   dir,
		kind:  theme.KindLight,
		roles: roles,
	}

	m.name = textinput.New()
	m.name.Placeholder = "my-theme"
	m.name.CharLimit = 40
	m.name.Prompt = ""
	m.name.Focus()

	m.inputs = make([]textinput.Model, len(roles))
	for i := range roles {
		ti := textinput.New()
		ti.Placeholder = "#rrggbb"
		ti.CharLimit = 7
		ti.Prompt = ""
		m.inputs[i] = ti
	}

	if def, err := reg.Lookup(base); err == nil {
		m.kind = def.Kind
		for i, role := range roles {
			if v, ok := def.Palette[role]; ok {
				m.inputs[i].SetValue(strings.ToLower(v))
			}
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "ctrl+t":
			if m.kind == theme.KindLight {
				m.kind = theme.KindDark
			} else {
				m.kind = theme.KindLight
			}
			return m, nil
		case "ctrl+s":
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.inputs[m.focus-1], cmd = m.inputs[m.focus-1].Update(msg)
	}
	return m, cmd
}

// setFocus moves input focus, wrapping at both ends.
func (m *Model) setFocus(idx int) {
	total := len(m.inputs) + 1
	idx = (idx + total) % total

	m.name.Blur()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}

	m.focus = idx
	if idx == 0 {
		m.name.Focus()
	} else {
		m.inputs[idx-1].Focus()
	}
}

// draft assembles the in-progress definition from the current field values.
// Empty fields stay unassigned and resolve through the fallback rules.
func (m Model) draft() theme.Definition {
	palette := make(theme.Palette)
	for i, role := range m.roles {
		if v := strings.TrimSpace(m.inputs[i].Value()); v != "" {
			palette[role] = v
		}
	}
	return theme.Definition{
		Name:    strings.TrimSpace(m.name.Value()),
		Kind:    m.kind,
		Palette: palette,
	}
}

// save validates the draft, writes it as TOML into the themes directory and
// registers it. Validation errors surface in the status line.
func (m *Model) save() {
	def := m.draft()

	if def.Name == "" {
		m.status = "error: theme name is required"
		return
	}
	// The name becomes a file name inside the themes directory; reject
	// anything that would escape it.
	if def.Name != filepath.Base(def.Name) || def.Name == "." || def.Name == ".." {
		m.status = fmt.Sprintf("error: invalid theme name %q (must be a plain file name)", def.Name)
		return
	}
	if len(def.Palette) == 0 {
		m.status = "error: assign at least one color"
		return
	}
	for i, role := range m.roles {
		v := strings.TrimSpace(m.inputs[i].Value())
		if v != "" && !theme.ValidHex(v) {
			m.status = fmt.Sprintf("error: %s: invalid hex color %q (expected #rrggbb)", role, v)
			return
		}
	}

	data, err := theme.SaveToTOML(def)
	if err != nil {
		m.status = "error: " + err.Error()
		return
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		m.status = "error: " + err.Error()
		return
	}
	path := filepath.Join(m.dir, def.Name+".toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		m.status = "error: " + err.Error()
		return
	}

	if err := m.reg.Register(def, true); err != nil {
		m.status = "error: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// Run launches the creator program.
func Run(reg *theme.Registry, dir, base string) error {
	_, err := tea.NewProgram(New(reg, dir, base), tea.WithAltScreen()).Run()
	return err
}

// helpLine is the static key legend shown under the form.
var helpLine = lipgloss.NewStyle().Faint(true).
	Render("tab/↑↓ move · ctrl+t light/dark · ctrl+s save · esc quit")
