// Package demo implements the theme gallery: a Bubbletea application that
// lists every registered theme and previews all widget classes in the
// selected one. Selecting a theme applies it live through the styler.
package demo

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/termstrap/pkg/style"
	"gitlab.com/tinyland/lab/termstrap/pkg/styler"
	"gitlab.com/tinyland/lab/termstrap/pkg/terminal"
	"gitlab.com/tinyland/lab/termstrap/pkg/theme"
)

// Model is the gallery's Bubbletea model.
type Model struct {
	reg   *theme.Registry
	st    *styler.Styler
	zones *zone.Manager

	names  []string
	cursor int
	active string

	sheet  style.Sheet
	def    theme.Definition
	width  int
	height int
	status string
}

// New builds a gallery model. start names the theme highlighted and applied
// first; unknown names fall back to the first registered theme.
func New(reg *theme.Registry, st *styler.Styler, start string) Model {
	m := Model{
		reg:   reg,
		st:    st,
		zones: zone.New(),
		names: reg.Names(),
	}
	// Registry names are lowercased; match the start theme the same way
	// Lookup does.
	for i, n := range m.names {
		if strings.EqualFold(n, start) {
			m.cursor = i
		}
	}
	m.applySelected()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Keep the cached capability summary in step with the resize.
		terminal.ForceRefresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.applySelected()
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
				m.applySelected()
			}
		case "enter", " ":
			m.applySelected()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			break
		}
		for i, name := range m.names {
			if m.zones.Get("theme_" + name).InBounds(msg) {
				m.cursor = i
				m.applySelected()
				break
			}
		}
	}
	return m, nil
}

// applySelected switches the live theme to the cursor's selection. Apply
// failures surface in the status line; the previous theme stays active.
func (m *Model) applySelected() {
	if len(m.names) == 0 {
		m.status = "no themes registered"
		return
	}
	name := m.names[m.cursor]
	if err := m.st.Use(name); err != nil {
		m.status = err.Error()
		return
	}
	def, _ := m.st.Active()
	m.def = def
	m.sheet = m.st.Sheet()
	m.active = name
	m.status = fmt.Sprintf("theme: %s (%s)", def.Name, def.Kind)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.sheet == nil {
		return m.status
	}

	list := m.renderThemeList()
	preview := m.renderGallery()

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", preview)
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.def.Color(theme.Secondary))).
		Render("↑/↓ select · enter apply · q quit   " + m.status)

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, body, "", footer))
}

// renderThemeList draws the clickable theme column.
func (m Model) renderThemeList() string {
	sel := m.sheet[style.Treeview]
	items := make([]string, 0, len(m.names)+1)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.def.Color(theme.Fg))).
		Bold(true).
		Render("Themes")
	items = append(items, header, "")

	normal := lipgloss.NewStyle().Foreground(lipgloss.Color(m.def.Color(theme.Fg)))
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.def.Color(theme.SelectFg))).
		Background(lipgloss.Color(sel.Focus))

	for i, name := range m.names {
		row := " " + name + " "
		if i == m.cursor {
			row = selected.Render(row)
		} else {
			row = normal.Render(row)
		}
		items = append(items, m.zones.Mark("theme_"+name, row))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}
