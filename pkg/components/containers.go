package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termstrap/pkg/style"
)

// Frame wraps content in a themed border.
func Frame(rec style.Record, content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(rec.Border)).
		Render(content)
}

// Labelframe wraps content in a themed border with a bold title line above
// it, the closest terminal analog of a captioned frame.
func Labelframe(rec style.Record, title, content string) string {
	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(rec.Border)).
		Render(content)

	if title == "" {
		return boxed
	}
	return rec.Style().Render(" "+title) + "\n" + boxed
}

// Tabs renders a notebook tab row. The active tab is drawn in the focus
// color with a bold face; inactive tabs sit on the trough color.
func Tabs(rec style.Record, labels []string, active int) string {
	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Focus)).
		Background(lipgloss.Color(rec.Background)).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Foreground)).
		Background(lipgloss.Color(rec.Trough)).
		Padding(0, 1)

	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == active {
			parts[i] = activeStyle.Render(label)
		} else {
			parts[i] = inactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

// Tree renders a flat item list with the selected row highlighted in the
// record's focus (selection background) color.
func Tree(rec style.Record, items []string, selected int, width int) []string {
	normal := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Foreground)).
		Background(lipgloss.Color(rec.Background))
	highlight := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Background)).
		Background(lipgloss.Color(rec.Focus))

	lines := make([]string, len(items))
	for i, item := range items {
		row := Pad(" "+item, width)
		if i == selected {
			lines[i] = highlight.Render(row)
		} else {
			lines[i] = normal.Render(row)
		}
	}
	return lines
}

// MenuBar renders a one-line menu with the open entry highlighted.
func MenuBar(rec style.Record, entries []string, open int) string {
	normal := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Foreground)).
		Background(lipgloss.Color(rec.Background)).
		Padding(0, 1)
	openStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Background)).
		Background(lipgloss.Color(rec.Focus)).
		Padding(0, 1)

	parts := make([]string, len(entries))
	for i, entry := range entries {
		if i == open {
			parts[i] = openStyle.Render(entry)
		} else {
			parts[i] = normal.Render(entry)
		}
	}
	return strings.Join(parts, "")
}
