package theme

import "github.com/muesli/termenv"

// Degrade converts every palette color to the nearest color representable
// under the given termenv profile. With TrueColor the definition is returned
// unchanged. Used before applying a theme on 256- or 16-color terminals so
// lookups and previews agree with what the terminal can actually show.
func Degrade(d Definition, profile termenv.Profile) Definition {
	if profile == termenv.TrueColor {
		return d
	}

	out := d.clone()
	for role, value := range out.Palette {
		c := profile.Color(value)
		if c == nil {
			continue
		}
		out.Palette[role] = thProfileHex(c)
	}
	return out
}

// thProfileHex renders a termenv color back to a hex string where possible.
// ANSI and ANSI256 colors map through the standard xterm palette.
func thProfileHex(c termenv.Color) string {
	return termenv.ConvertToRGB(c).Hex()
}
