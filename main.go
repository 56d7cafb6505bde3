// termstrap supplies flat color themes for terminal user interfaces.
//
// Without flags it launches the theme gallery: a Bubbletea application that
// previews every widget class in each registered theme and applies the
// selection live. The bundled creator authors new theme files that load on
// the next start (or immediately, inside the creator session).
//
// Usage:
//
//	termstrap [flags]
//
// Flags:
//
//	-creator          Launch the interactive theme creator
//	-theme string     Theme to apply at startup (overrides config)
//	-list             Print registered theme names and exit
//	-themes-dir string Directory of user theme files (overrides config)
//	-config string    Path to configuration file
//	-no-mouse         Disable mouse support in the gallery
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/termstrap/pkg/config"
	"gitlab.com/tinyland/lab/termstrap/pkg/creator"
	"gitlab.com/tinyland/lab/termstrap/pkg/demo"
	"gitlab.com/tinyland/lab/termstrap/pkg/styler"
	"gitlab.com/tinyland/lab/termstrap/pkg/terminal"
	"gitlab.com/tinyland/lab/termstrap/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termstrap: %v\n", err)
		os.Exit(1)
	}
}

// run carries the whole program so deferred cleanup (styler reset) executes
// on every exit path, including errors.
func run() error {
	var (
		runCreator  = flag.Bool("creator", false, "Launch the interactive theme creator")
		startTheme  = flag.String("theme", "", "Theme to apply at startup (overrides config)")
		listThemes  = flag.Bool("list", false, "Print registered theme names and exit")
		themesDir   = flag.String("themes-dir", "", "Directory of user theme files (overrides config)")
		configPath  = flag.String("config", "", "Path to configuration file")
		noMouse     = flag.Bool("no-mouse", false, "Disable mouse support in the gallery")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("termstrap %s (%s) built %s\n", version, commit, date)
		return nil
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Load configuration.
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if *startTheme != "" {
		cfg.Theme.Name = *startTheme
	}
	if *themesDir != "" {
		cfg.Theme.Dir = *themesDir
	}
	if *noMouse {
		cfg.Terminal.Mouse = false
	}

	// Built-ins first, then user theme files layered on top.
	reg := theme.NewRegistry()
	loaded, err := theme.LoadDir(reg, cfg.Theme.Dir)
	if err != nil {
		return fmt.Errorf("load user themes: %w", err)
	}
	slog.Debug("themes registered", "builtin", len(reg.Names())-loaded, "user", loaded, "dir", cfg.Theme.Dir)

	if *listThemes {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return nil
	}

	if cfg.Terminal.NoColor {
		return errors.New("color output is disabled (NO_COLOR); nothing to show")
	}

	caps := terminal.DetectCapabilities()
	slog.Debug("terminal detected",
		"tty", caps.TTY,
		"truecolor", caps.TrueColor,
		"cols", caps.Size.Cols,
		"rows", caps.Size.Rows,
		"tmux", caps.Tmux)

	if *runCreator {
		return creator.Run(reg, cfg.Theme.Dir, cfg.Theme.Name)
	}

	// Mouse reporting needs a terminal on the other end, and the styler
	// reuses the profile the capability probe already detected.
	mouse := cfg.Terminal.Mouse && caps.TTY
	out := termenv.NewOutput(os.Stdout, termenv.WithProfile(caps.Profile))

	st := styler.New(reg, styler.WithOutput(out))
	defer st.Reset()

	return demo.Run(reg, st, cfg.Theme.Name, mouse)
}
