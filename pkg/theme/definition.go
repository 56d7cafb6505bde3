package theme

// Kind classifies a theme as light or dark. The kind drives the fallback
// rules for unassigned roles and a handful of widget templates that invert
// between light and dark palettes.
type Kind string

const (
	KindLight Kind = "light"
	KindDark  Kind = "dark"
)

// Palette maps color roles to hex color values like "#2780e3".
type Palette map[ColorRole]string

// Definition is a named, immutable theme record. Once registered it is never
// mutated; lookups return a copy so callers cannot reach into the registry's
// palette maps.
type Definition struct {
	Name    string
	Kind    Kind
	Palette Palette
}

// Color returns the value assigned to role, resolving the documented
// fallback when the role is unassigned: neutral roles derive from bg/fg, and
// accent roles fall back to the nearest usable neutral on the light/dark
// scale (dark for light themes, light for dark themes).
func (d Definition) Color(role ColorRole) string {
	if v, ok := d.Palette[role]; ok && v != "" {
		return v
	}
	return d.fallback(role)
}

// Resolve returns a copy of the definition with every recognized role
// assigned a concrete value. Resolution is deterministic.
func (d Definition) Resolve() Definition {
	out := Definition{Name: d.Name, Kind: d.Kind, Palette: make(Palette, len(Roles()))}
	if out.Kind == "" {
		out.Kind = d.inferKind()
	}
	tmp := Definition{Name: d.Name, Kind: out.Kind, Palette: d.Palette}
	for _, role := range Roles() {
		out.Palette[role] = tmp.Color(role)
	}
	return out
}

// clone returns a deep copy so registry-held definitions stay immutable.
func (d Definition) clone() Definition {
	p := make(Palette, len(d.Palette))
	for k, v := range d.Palette {
		p[k] = v
	}
	return Definition{Name: d.Name, Kind: d.Kind, Palette: p}
}

// inferKind guesses light/dark from the background luminance when a
// definition omits the kind. Defaults to light when bg is also unset.
func (d Definition) inferKind() Kind {
	bg, ok := d.Palette[Bg]
	if !ok || bg == "" {
		return KindLight
	}
	if thIsDark(bg) {
		return KindDark
	}
	return KindLight
}

// fallback computes the documented substitute for an unassigned role.
//
// Neutral scale: bg, light, border, dark, fg. Unset neutrals derive from bg
// and fg; unset accents resolve to the neutral nearest the foreground end of
// the scale (dark on light themes, light on dark themes) so they stay
// visible against the background.
func (d Definition) fallback(role ColorRole) string {
	kind := d.Kind
	if kind == "" {
		kind = d.inferKind()
	}

	get := func(r ColorRole) (string, bool) {
		v, ok := d.Palette[r]
		return v, ok && v != ""
	}

	bg, hasBg := get(Bg)
	if !hasBg {
		if kind == KindDark {
			bg = "#1e1e1e"
		} else {
			bg = "#ffffff"
		}
	}
	fg, hasFg := get(Fg)
	if !hasFg {
		fg = thContrast(bg)
	}

	switch role {
	case Bg:
		return bg
	case Fg:
		return fg
	case Light:
		if kind == KindDark {
			return thBrightness(bg, 0.15)
		}
		return thBrightness(bg, -0.05)
	case Dark:
		if kind == KindDark {
			return thBrightness(bg, -0.30)
		}
		return thBrightness(fg, 0.15)
	case Border:
		if kind == KindDark {
			return thBrightness(bg, 0.25)
		}
		return thBrightness(bg, -0.15)
	case SelectBg:
		return d.Color(Primary)
	case SelectFg:
		return thContrast(d.Color(SelectBg))
	case InputFg:
		return fg
	case InputBg:
		return d.Color(Light)
	}

	// Accent roles: nearest usable neutral on the light/dark scale.
	if kind == KindDark {
		return d.Color(Light)
	}
	return d.Color(Dark)
}
