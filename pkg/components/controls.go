package components

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termstrap/pkg/style"
)

// Button renders a solid button: label on the accent background with a
// space of padding either side.
func Button(rec style.Record, label string) string {
	return rec.Style().Padding(0, 1).Render(label)
}

// Label renders plain themed text.
func Label(rec style.Record, text string) string {
	return rec.Style().Render(text)
}

// Entry renders a one-line input field at the given width. A focused entry
// draws its underline in the focus color, mirroring the focus ring of a
// full-border toolkit.
func Entry(rec style.Record, value string, width int, focused bool) string {
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Foreground)).
		Background(lipgloss.Color(rec.Trough)).
		Underline(true)
	if focused {
		s = s.UnderlineSpaces(true).Foreground(lipgloss.Color(rec.Focus))
	}
	return s.Render(Pad(" "+value, width))
}

// Checkbox renders a check indicator and label.
func Checkbox(rec style.Record, label string, checked bool) string {
	mark := "☐"
	markColor := rec.Border
	if checked {
		mark = "☑"
		markColor = rec.Focus
	}
	markStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(markColor)).
		Background(lipgloss.Color(rec.Background))
	return markStyle.Render(mark) + rec.Style().Render(" "+label)
}

// Radio renders a radio indicator and label.
func Radio(rec style.Record, label string, selected bool) string {
	mark := "○"
	markColor := rec.Border
	if selected {
		mark = "●"
		markColor = rec.Focus
	}
	markStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(markColor)).
		Background(lipgloss.Color(rec.Background))
	return markStyle.Render(mark) + rec.Style().Render(" "+label)
}

// Combobox renders a closed dropdown with its arrow glyph.
func Combobox(rec style.Record, value string, width int) string {
	field := Pad(" "+value, width-2)
	fieldStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Foreground)).
		Background(lipgloss.Color(rec.Trough))
	arrow := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Focus)).
		Background(lipgloss.Color(rec.Trough)).
		Render(" ▾")
	return fieldStyle.Render(field) + arrow
}

// Spinbox renders a numeric field with stepper glyphs.
func Spinbox(rec style.Record, value string, width int) string {
	field := Pad(" "+value, width-2)
	fieldStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Foreground)).
		Background(lipgloss.Color(rec.Trough))
	steppers := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Focus)).
		Background(lipgloss.Color(rec.Trough)).
		Render("▴▾")
	return fieldStyle.Render(field) + steppers
}
