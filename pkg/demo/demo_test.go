package demo

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/termstrap/pkg/styler"
	"gitlab.com/tinyland/lab/termstrap/pkg/terminal"
	"gitlab.com/tinyland/lab/termstrap/pkg/theme"
)

func newTestModel(t *testing.T, start string) Model {
	t.Helper()
	reg := theme.NewRegistry()
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))
	st := styler.New(reg, styler.WithOutput(out), styler.WithTTYCheck(false))
	return New(reg, st, start)
}

func TestNewAppliesStartTheme(t *testing.T) {
	m := newTestModel(t, "darkly")
	if m.active != "darkly" {
		t.Errorf("active = %q, want %q", m.active, "darkly")
	}
	if m.names[m.cursor] != "darkly" {
		t.Errorf("cursor on %q, want %q", m.names[m.cursor], "darkly")
	}
	if m.sheet == nil {
		t.Error("sheet is nil after New()")
	}
}

func TestNewStartThemeMatchIsCaseInsensitive(t *testing.T) {
	m := newTestModel(t, "FLATLY")
	if m.active != "flatly" {
		t.Errorf("active = %q, want %q", m.active, "flatly")
	}
	if m.names[m.cursor] != "flatly" {
		t.Errorf("cursor on %q, want %q", m.names[m.cursor], "flatly")
	}
}

func TestNewUnknownStartFallsBackToFirst(t *testing.T) {
	m := newTestModel(t, "nonexistent")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	if m.active != m.names[0] {
		t.Errorf("active = %q, want first theme %q", m.active, m.names[0])
	}
}

func TestCursorMovementAppliesTheme(t *testing.T) {
	m := newTestModel(t, "")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)

	if m.cursor != 1 {
		t.Fatalf("cursor = %d after down, want 1", m.cursor)
	}
	if m.active != m.names[1] {
		t.Errorf("active = %q, want %q", m.active, m.names[1])
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}
}

func TestCursorStopsAtEnds(t *testing.T) {
	m := newTestModel(t, "")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d at top after up, want 0", m.cursor)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, "")
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("key %q produced no command, want quit", key.String())
		}
	}
}

func TestGalleryPreviewsEveryClass(t *testing.T) {
	m := newTestModel(t, "flatly")
	gallery := ansi.Strip(m.renderGallery())

	// One visible marker per widget class preview.
	for _, marker := range []string{
		"Primary",    // button
		"label text", // label
		"input text", // entry
		"combobox",   // combobox
		"42",         // spinbox
		"☑",          // checkbox
		"●",          // radio
		"█",          // progressbar
		"◉",          // scale
		"░",          // scrollbar lane
		"General",    // notebook tabs
		"drafts",     // treeview
		"Treeview",   // labelframe title
		"File",       // menu bar
	} {
		if !strings.Contains(gallery, marker) {
			t.Errorf("gallery missing %q", marker)
		}
	}
}

func TestResizeRefreshesCapabilities(t *testing.T) {
	m := newTestModel(t, "flatly")
	before := terminal.DetectCapabilities()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if _, ok := next.(Model); !ok {
		t.Fatal("Update returned a foreign model")
	}

	if after := terminal.DetectCapabilities(); after == before {
		t.Error("capability summary not refreshed after resize")
	}
}

func TestViewListsThemes(t *testing.T) {
	m := newTestModel(t, "flatly")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	view := m.View()
	for _, name := range []string{"flatly", "darkly", "cosmo"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing theme %q", name)
		}
	}
	if !strings.Contains(m.status, "flatly") {
		t.Errorf("status = %q, want active theme name", m.status)
	}
}
