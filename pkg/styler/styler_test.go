package styler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/termstrap/pkg/style"
	"gitlab.com/tinyland/lab/termstrap/pkg/theme"
)

// newTestStyler builds a styler that writes into buf with a forced truecolor
// profile, bypassing the terminal probe.
func newTestStyler(t *testing.T, buf *bytes.Buffer) *Styler {
	t.Helper()
	out := termenv.NewOutput(buf, termenv.WithProfile(termenv.TrueColor))
	return New(theme.NewRegistry(), WithOutput(out), WithTTYCheck(false))
}

func TestUseSetsActiveAndSheet(t *testing.T) {
	var buf bytes.Buffer
	st := newTestStyler(t, &buf)

	if _, ok := st.Active(); ok {
		t.Error("Active() reports a theme before any Use()")
	}

	if err := st.Use("flatly"); err != nil {
		t.Fatalf("Use(flatly) error: %v", err)
	}

	def, ok := st.Active()
	if !ok {
		t.Fatal("Active() reports no theme after Use()")
	}
	if def.Name != "flatly" {
		t.Errorf("Active().Name = %q, want %q", def.Name, "flatly")
	}

	sheet := st.Sheet()
	if len(sheet) != len(style.Classes()) {
		t.Errorf("Sheet() has %d records, want %d", len(sheet), len(style.Classes()))
	}
	if buf.Len() == 0 {
		t.Error("Use() wrote nothing to the output")
	}
}

func TestUseUnknownTheme(t *testing.T) {
	var buf bytes.Buffer
	st := newTestStyler(t, &buf)

	err := st.Use("nonexistent")
	if !errors.Is(err, theme.ErrNotFound) {
		t.Errorf("Use(nonexistent) = %v, want theme.ErrNotFound", err)
	}
	if _, ok := st.Active(); ok {
		t.Error("failed Use() left a theme active")
	}
}

func TestUseKeepsPreviousThemeOnError(t *testing.T) {
	var buf bytes.Buffer
	st := newTestStyler(t, &buf)

	if err := st.Use("darkly"); err != nil {
		t.Fatalf("Use(darkly) error: %v", err)
	}
	if err := st.Use("nonexistent"); err == nil {
		t.Fatal("Use(nonexistent) succeeded")
	}

	def, ok := st.Active()
	if !ok || def.Name != "darkly" {
		t.Errorf("Active() = %q/%v after failed switch, want darkly kept", def.Name, ok)
	}
}

func TestUseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	st := newTestStyler(t, &buf)

	if err := st.Use("cosmo"); err != nil {
		t.Fatal(err)
	}
	first := buf.String()
	buf.Reset()

	if err := st.Use("cosmo"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != first {
		t.Error("second Use() of the same theme emitted different sequences")
	}
}

func TestApplyErrorWhenNoColorSupport(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	st := New(theme.NewRegistry(), WithOutput(out), WithTTYCheck(false))

	err := st.Use("flatly")
	var applyErr *ApplyError
	if !errors.As(err, &applyErr) {
		t.Fatalf("Use() = %v, want *ApplyError", err)
	}
	if !strings.Contains(applyErr.Reason, "color") {
		t.Errorf("Reason = %q, want mention of color support", applyErr.Reason)
	}
}

func TestApplyErrorWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.TrueColor))
	st := New(theme.NewRegistry(), WithOutput(out)) // probe enabled

	err := st.Use("flatly")
	var applyErr *ApplyError
	if !errors.As(err, &applyErr) {
		t.Fatalf("Use() = %v, want *ApplyError", err)
	}
}

func TestOnChange(t *testing.T) {
	var buf bytes.Buffer
	st := newTestStyler(t, &buf)

	var gotName string
	var gotSheet style.Sheet
	st.OnChange(func(def theme.Definition, sheet style.Sheet) {
		gotName = def.Name
		gotSheet = sheet
	})

	if err := st.Use("minty"); err != nil {
		t.Fatal(err)
	}
	if gotName != "minty" {
		t.Errorf("listener saw %q, want %q", gotName, "minty")
	}
	if len(gotSheet) == 0 {
		t.Error("listener received an empty sheet")
	}

	// Mutating the listener's copy must not leak into the styler.
	gotSheet[style.Button] = style.Record{Background: "#000000"}
	if st.Sheet()[style.Button].Background == "#000000" {
		t.Error("listener sheet aliases styler state")
	}
}

func TestSheetReturnsCopy(t *testing.T) {
	var buf bytes.Buffer
	st := newTestStyler(t, &buf)
	if err := st.Use("flatly"); err != nil {
		t.Fatal(err)
	}

	sheet := st.Sheet()
	sheet[style.Button] = style.Record{Background: "#000000"}
	if st.Sheet()[style.Button].Background == "#000000" {
		t.Error("Sheet() aliases styler state")
	}
}

func TestReset(t *testing.T) {
	var buf bytes.Buffer
	st := newTestStyler(t, &buf)
	if err := st.Use("flatly"); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	st.Reset()

	if _, ok := st.Active(); ok {
		t.Error("Active() reports a theme after Reset()")
	}
	if !strings.Contains(buf.String(), "\x1b]110") || !strings.Contains(buf.String(), "\x1b]111") {
		t.Errorf("Reset() output = %q, want OSC 110/111", buf.String())
	}
}
