// Package components renders themed previews of each widget class from a
// computed style record. The demo gallery and the creator preview both draw
// through these helpers, so a theme switch changes every widget in one place.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Pad right-pads s with spaces to the given display width, truncating when
// the rendered text is already wider. Width is measured after stripping
// escape sequences.
func Pad(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}
