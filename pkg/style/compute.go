package style

import "gitlab.com/tinyland/lab/termstrap/pkg/theme"

// Compute maps a theme definition onto a style record for every widget
// class. The per-class templates follow the flat-theme conventions: solid
// emphasis widgets sit on the primary color, input fields on the light
// neutral (darkened a step on dark themes), borders on the border neutral
// with the focus ring on primary.
//
// Compute is deterministic and side-effect free.
func Compute(def theme.Definition) Sheet {
	d := def.Resolve()
	sheet := make(Sheet, len(Classes()))
	for _, class := range Classes() {
		sheet[class] = record(d, class, d.Color(theme.Primary))
	}
	return sheet
}

// Variant computes the record for a single widget class accented with the
// given role (e.g. a danger button). Roles outside the accent set resolve
// through the theme's neutral-scale fallback.
func Variant(def theme.Definition, class WidgetClass, role theme.ColorRole) Record {
	d := def.Resolve()
	return record(d, class, d.Color(role))
}

// record builds one class record from a fully resolved definition. accent is
// the emphasis color, primary for the base sheet.
func record(d theme.Definition, class WidgetClass, accent string) Record {
	var (
		bg      = d.Color(theme.Bg)
		fg      = d.Color(theme.Fg)
		light   = d.Color(theme.Light)
		border  = d.Color(theme.Border)
		inputFg = d.Color(theme.InputFg)
		inputBg = d.Color(theme.InputBg)
	)

	// Input fields darken a step on dark themes so the field reads as
	// recessed rather than glowing.
	if d.Kind == theme.KindDark {
		inputBg = theme.Brightness(inputBg, -0.10)
	}

	switch class {
	case Button:
		return Record{
			Foreground: theme.Contrast(accent),
			Background: accent,
			Border:     theme.Brightness(accent, -0.10),
			Focus:      accent,
			Trough:     bg,
			Font:       FontAttrs{Bold: true},
		}
	case Label:
		return Record{
			Foreground: fg,
			Background: bg,
			Border:     bg,
			Focus:      accent,
			Trough:     bg,
		}
	case Entry, Combobox, Spinbox:
		return Record{
			Foreground: inputFg,
			Background: inputBg,
			Border:     border,
			Focus:      accent,
			Trough:     inputBg,
		}
	case Checkbox, Radio:
		return Record{
			Foreground: fg,
			Background: bg,
			Border:     border,
			Focus:      accent,
			Trough:     bg,
		}
	case Progressbar:
		return Record{
			Foreground: accent,
			Background: bg,
			Border:     border,
			Focus:      accent,
			Trough:     theme.Brightness(light, -0.05),
		}
	case Scale:
		return Record{
			Foreground: accent,
			Background: bg,
			Border:     border,
			Focus:      theme.Brightness(accent, -0.10),
			Trough:     theme.Brightness(light, -0.05),
		}
	case Scrollbar:
		return Record{
			Foreground: border,
			Background: bg,
			Border:     border,
			Focus:      accent,
			Trough:     light,
		}
	case Separator:
		// Border neutral on light themes, emphasis color on dark ones
		// where the border would vanish against the background.
		sep := border
		if d.Kind == theme.KindDark {
			sep = accent
		}
		return Record{
			Foreground: sep,
			Background: bg,
			Border:     sep,
			Focus:      accent,
			Trough:     bg,
		}
	case Frame:
		return Record{
			Foreground: fg,
			Background: bg,
			Border:     border,
			Focus:      accent,
			Trough:     bg,
		}
	case Labelframe:
		return Record{
			Foreground: fg,
			Background: bg,
			Border:     border,
			Focus:      accent,
			Trough:     bg,
			Font:       FontAttrs{Bold: true},
		}
	case Notebook:
		return Record{
			Foreground: fg,
			Background: bg,
			Border:     border,
			Focus:      accent,
			Trough:     light,
		}
	case Treeview:
		return Record{
			Foreground: fg,
			Background: bg,
			Border:     border,
			Focus:      d.Color(theme.SelectBg),
			Trough:     light,
		}
	case Menu:
		return Record{
			Foreground: fg,
			Background: bg,
			Border:     border,
			Focus:      d.Color(theme.SelectBg),
			Trough:     bg,
		}
	}

	// Unknown class: plain text on the theme background.
	return Record{
		Foreground: fg,
		Background: bg,
		Border:     border,
		Focus:      accent,
		Trough:     bg,
	}
}
