package style

import "github.com/charmbracelet/lipgloss"

// FontAttrs carries the terminal-expressible font attributes of a record.
type FontAttrs struct {
	Bold      bool
	Italic    bool
	Underline bool
	Faint     bool
}

// Record holds the computed style attributes for one widget class.
// Foreground, Background and Border are always assigned; Focus is the
// focused/active highlight and Trough the field or track background for
// widgets that have one (entries, progressbars, scales, scrollbars).
type Record struct {
	Foreground string
	Background string
	Border     string
	Focus      string
	Trough     string
	Font       FontAttrs
}

// Sheet maps every widget class to its computed record. Sheets are owned by
// the mapper's caller; Compute returns a fresh sheet each time.
type Sheet map[WidgetClass]Record

// Style converts the record to a lipgloss style: colors plus font attributes.
// Border coloring is applied by callers that actually draw a border.
func (r Record) Style() lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(r.Foreground)).
		Background(lipgloss.Color(r.Background))
	if r.Font.Bold {
		s = s.Bold(true)
	}
	if r.Font.Italic {
		s = s.Italic(true)
	}
	if r.Font.Underline {
		s = s.Underline(true)
	}
	if r.Font.Faint {
		s = s.Faint(true)
	}
	return s
}
