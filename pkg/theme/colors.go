package theme

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// thParse parses a hex color string, accepting "#RRGGBB", "RRGGBB" and the
// 3-digit shorthand. Returns false if the input is not a valid color.
func thParse(hex string) (colorful.Color, bool) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return colorful.Color{}, false
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		hex = "#" + strings.Repeat(string(hex[1]), 2) +
			strings.Repeat(string(hex[2]), 2) +
			strings.Repeat(string(hex[3]), 2)
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// Brightness lightens (positive pct) or darkens (negative pct) a hex color
// by adjusting the HSV value channel. Invalid input is returned unchanged.
func Brightness(hex string, pct float64) string {
	return thBrightness(hex, pct)
}

// Contrast picks black or white, whichever contrasts better with hex.
func Contrast(hex string) string {
	return thContrast(hex)
}

// thBrightness lightens (positive pct) or darkens (negative pct) a hex color
// by adjusting the HSV value channel. Invalid input is returned unchanged.
func thBrightness(hex string, pct float64) string {
	c, ok := thParse(hex)
	if !ok {
		return hex
	}
	h, s, v := c.Hsv()
	v *= 1 + pct
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return colorful.Hsv(h, s, v).Hex()
}

// thIsDark reports whether a hex color reads as dark (low luminance).
func thIsDark(hex string) bool {
	c, ok := thParse(hex)
	if !ok {
		return false
	}
	return thLuminance(c) < 0.5
}

// thContrast picks black or white, whichever contrasts better with hex.
func thContrast(hex string) string {
	if thIsDark(hex) {
		return "#ffffff"
	}
	return "#000000"
}

// thLuminance returns the WCAG relative luminance of a color.
func thLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
