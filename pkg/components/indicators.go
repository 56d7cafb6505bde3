package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termstrap/pkg/style"
)

// Progress renders a horizontal progress bar at the given width with the
// filled portion in the record's accent foreground and the remainder in the
// trough color. ratio is clamped to [0, 1].
func Progress(rec style.Record, ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Foreground)).
		Render(strings.Repeat("█", filled))
	trough := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Trough)).
		Render(strings.Repeat("█", width-filled))
	return bar + trough
}

// Scale renders a slider track with the handle at ratio.
func Scale(rec style.Record, ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	pos := int(ratio * float64(width-1))
	track := lipgloss.NewStyle().Foreground(lipgloss.Color(rec.Trough))
	handle := lipgloss.NewStyle().Foreground(lipgloss.Color(rec.Foreground))

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i == pos {
			b.WriteString(handle.Render("◉"))
		} else {
			b.WriteString(track.Render("─"))
		}
	}
	return b.String()
}

// Scrollbar renders a vertical scrollbar lane of the given height as lines.
// thumbStart/thumbLen are in cells.
func Scrollbar(rec style.Record, height, thumbStart, thumbLen int) []string {
	if height <= 0 {
		return nil
	}
	lane := lipgloss.NewStyle().Foreground(lipgloss.Color(rec.Trough))
	thumb := lipgloss.NewStyle().Foreground(lipgloss.Color(rec.Foreground))

	lines := make([]string, height)
	for i := range lines {
		if i >= thumbStart && i < thumbStart+thumbLen {
			lines[i] = thumb.Render("█")
		} else {
			lines[i] = lane.Render("░")
		}
	}
	return lines
}

// Separator renders a horizontal rule.
func Separator(rec style.Record, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(rec.Foreground)).
		Render(strings.Repeat("─", width))
}

// Swatch renders a color sample block, used by the creator preview to show
// raw palette values.
func Swatch(hex string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", width))
}
