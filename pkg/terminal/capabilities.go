// Package terminal answers the questions the styler and the TUIs ask about
// the hosting terminal: is there a terminal at all, how much color can it
// show, and how big is it.
package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities is the cached capability summary for the current session.
type Capabilities struct {
	TTY       bool            // Stdout is attached to a terminal
	Profile   termenv.Profile // Detected color profile
	TrueColor bool            // 24-bit color support
	Size      Size            // Terminal dimensions
	Tmux      bool            // Inside tmux
	Mux       bool            // Inside any multiplexer (tmux, screen, zellij)
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs detection and caches the result. Safe for
// concurrent use; detection runs exactly once via sync.Once.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects capabilities, replacing the cached value. Use
// after a terminal change (e.g. attaching/detaching from tmux).
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce = sync.Once{}
	cached = detect()
	return cached
}

func detect() *Capabilities {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	profile := termenv.EnvColorProfile()
	trueColor := profile == termenv.TrueColor
	if !trueColor {
		ct := os.Getenv("COLORTERM")
		trueColor = ct == "truecolor" || ct == "24bit"
	}

	tmux := os.Getenv("TMUX") != ""
	screen := os.Getenv("STY") != ""
	zellij := os.Getenv("ZELLIJ") != ""

	return &Capabilities{
		TTY:       tty,
		Profile:   profile,
		TrueColor: trueColor,
		Size:      GetSize(),
		Tmux:      tmux,
		Mux:       tmux || screen || zellij,
	}
}
