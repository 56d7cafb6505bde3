// Package style computes per-widget-class style records from a theme
// definition. Compute is a pure function: the same definition always yields
// an identical sheet. Records translate to lipgloss styles for rendering.
package style

// WidgetClass identifies a category of widget the toolkit knows how to
// style. The set is closed; Compute produces a record for every class.
type WidgetClass string

const (
	Button      WidgetClass = "button"
	Label       WidgetClass = "label"
	Entry       WidgetClass = "entry"
	Checkbox    WidgetClass = "checkbox"
	Radio       WidgetClass = "radio"
	Combobox    WidgetClass = "combobox"
	Spinbox     WidgetClass = "spinbox"
	Progressbar WidgetClass = "progressbar"
	Scale       WidgetClass = "scale"
	Scrollbar   WidgetClass = "scrollbar"
	Separator   WidgetClass = "separator"
	Frame       WidgetClass = "frame"
	Labelframe  WidgetClass = "labelframe"
	Notebook    WidgetClass = "notebook"
	Treeview    WidgetClass = "treeview"
	Menu        WidgetClass = "menu"
)

// Classes lists every widget class in stable order (the gallery's display
// order).
func Classes() []WidgetClass {
	return []WidgetClass{
		Button, Label, Entry, Checkbox, Radio, Combobox, Spinbox,
		Progressbar, Scale, Scrollbar, Separator, Frame, Labelframe,
		Notebook, Treeview, Menu,
	}
}
