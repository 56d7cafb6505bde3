package demo

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termstrap/pkg/components"
	"gitlab.com/tinyland/lab/termstrap/pkg/style"
	"gitlab.com/tinyland/lab/termstrap/pkg/styler"
	"gitlab.com/tinyland/lab/termstrap/pkg/theme"
)

// renderGallery draws one preview per widget class from the current sheet.
func (m Model) renderGallery() string {
	s := m.sheet

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Button(s[style.Button], "Primary"), " ",
		components.Button(style.Variant(m.def, style.Button, theme.Success), "Success"), " ",
		components.Button(style.Variant(m.def, style.Button, theme.Danger), "Danger"), " ",
		components.Button(style.Variant(m.def, style.Button, theme.Warning), "Warning"), "  ",
		components.Label(s[style.Label], "label text"),
	)

	entryRow := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Entry(s[style.Entry], "input text", 18, true), "  ",
		components.Combobox(s[style.Combobox], "combobox", 16), "  ",
		components.Spinbox(s[style.Spinbox], "42", 8),
	)

	checks := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Checkbox(s[style.Checkbox], "checked", true), "  ",
		components.Checkbox(s[style.Checkbox], "unchecked", false), "  ",
		components.Radio(s[style.Radio], "selected", true), "  ",
		components.Radio(s[style.Radio], "other", false),
	)

	bars := lipgloss.JoinVertical(lipgloss.Left,
		components.Progress(s[style.Progressbar], 0.65, 36),
		components.Scale(s[style.Scale], 0.4, 36),
	)

	tree := lipgloss.JoinVertical(lipgloss.Left,
		components.Tree(s[style.Treeview], []string{"inbox", "drafts", "archive"}, 1, 20)...,
	)
	lane := lipgloss.JoinVertical(lipgloss.Left,
		components.Scrollbar(s[style.Scrollbar], 3, 0, 1)...,
	)

	rows := []string{
		components.MenuBar(s[style.Menu], []string{"File", "Edit", "View", "Help"}, 0),
		"",
		buttons,
		"",
		entryRow,
		"",
		checks,
		"",
		components.Tabs(s[style.Notebook], []string{"General", "Colors", "About"}, 0),
		bars,
		"",
		components.Separator(s[style.Separator], 40),
		"",
		components.Labelframe(s[style.Labelframe], "Treeview",
			lipgloss.JoinHorizontal(lipgloss.Top, tree, " ", lane)),
	}

	gallery := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return components.Frame(s[style.Frame], gallery)
}

// Run launches the gallery program. Mouse support is optional so the demo
// still runs on terminals without mouse reporting.
func Run(reg *theme.Registry, st *styler.Styler, start string, mouse bool) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(New(reg, st, start), opts...).Run()
	return err
}
