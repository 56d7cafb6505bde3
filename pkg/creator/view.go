package creator

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termstrap/pkg/components"
	"gitlab.com/tinyland/lab/termstrap/pkg/style"
	"gitlab.com/tinyland/lab/termstrap/pkg/theme"
)

// View implements tea.Model: the role form on the left, a live preview of
// the draft theme on the right.
func (m Model) View() string {
	form := m.renderForm()
	preview := m.renderPreview()

	body := lipgloss.JoinHorizontal(lipgloss.Top, form, "   ", preview)
	status := m.status
	if status == "" {
		status = fmt.Sprintf("editing %s theme", m.kind)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("termstrap theme creator"),
		"",
		body,
		"",
		helpLine,
		status,
	)
}

// renderForm draws the name field, the kind toggle and one row per role
// with its current swatch.
func (m Model) renderForm() string {
	label := lipgloss.NewStyle().Width(10)

	rows := make([]string, 0, len(m.roles)+3)
	rows = append(rows,
		lipgloss.JoinHorizontal(lipgloss.Top, label.Render("name"), m.name.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, label.Render("kind"), string(m.kind)),
		"",
	)

	for i, role := range m.roles {
		swatch := " "
		if v := m.inputs[i].Value(); theme.ValidHex(v) {
			swatch = components.Swatch(v, 3)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(string(role)),
			m.inputs[i].View(), " ", swatch,
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderPreview computes a sheet from the draft and shows a compact gallery,
// so fallback-resolved roles are visible before saving.
func (m Model) renderPreview() string {
	def := m.draft()
	if def.Name == "" {
		def.Name = "draft"
	}
	sheet := style.Compute(def)

	rows := []string{
		components.Button(sheet[style.Button], "Button"),
		"",
		components.Entry(sheet[style.Entry], "entry", 14, false),
		"",
		components.Checkbox(sheet[style.Checkbox], "check", true),
		components.Radio(sheet[style.Radio], "radio", true),
		"",
		components.Progress(sheet[style.Progressbar], 0.6, 20),
		components.Separator(sheet[style.Separator], 20),
		components.Tabs(sheet[style.Notebook], []string{"one", "two"}, 0),
	}

	return components.Labelframe(sheet[style.Labelframe], "preview",
		lipgloss.JoinVertical(lipgloss.Left, rows...))
}
