// Package theme defines named color theme definitions and the registry that
// holds them. A theme assigns concrete hex colors to a closed set of semantic
// color roles (primary, danger, light, ...) which the style package maps onto
// per-widget-class records. Built-in themes cover the standard flat palette
// collection; user themes load from TOML or YAML files.
package theme

// ColorRole is a semantic color slot in a theme palette. Roles are a closed
// set: unknown role names are rejected at load time rather than silently
// carried as free-form strings.
type ColorRole string

const (
	Primary   ColorRole = "primary"
	Secondary ColorRole = "secondary"
	Success   ColorRole = "success"
	Info      ColorRole = "info"
	Warning   ColorRole = "warning"
	Danger    ColorRole = "danger"
	Light     ColorRole = "light"
	Dark      ColorRole = "dark"
	Bg        ColorRole = "bg"
	Fg        ColorRole = "fg"
	SelectBg  ColorRole = "selectbg"
	SelectFg  ColorRole = "selectfg"
	Border    ColorRole = "border"
	InputFg   ColorRole = "inputfg"
	InputBg   ColorRole = "inputbg"
)

// Roles lists every recognized color role in stable order. The order matches
// the creator tool's field layout.
func Roles() []ColorRole {
	return []ColorRole{
		Primary, Secondary, Success, Info, Warning, Danger,
		Light, Dark,
		Bg, Fg, SelectBg, SelectFg, Border, InputFg, InputBg,
	}
}

// AccentRoles lists the roles usable as style variants (the subset a widget
// can be accented with, e.g. a danger-colored button).
func AccentRoles() []ColorRole {
	return []ColorRole{Primary, Secondary, Success, Info, Warning, Danger}
}

// ValidRole reports whether name is a recognized color role.
func ValidRole(name string) bool {
	switch ColorRole(name) {
	case Primary, Secondary, Success, Info, Warning, Danger,
		Light, Dark, Bg, Fg, SelectBg, SelectFg, Border, InputFg, InputBg:
		return true
	}
	return false
}
