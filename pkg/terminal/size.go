package terminal

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// Size represents terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries the TIOCGWINSZ
// ioctl on stdout then stderr, falls back to COLUMNS/LINES, and finally to
// 80x24.
func GetSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s, ok := sizeFromIoctl(fd); ok {
			return s
		}
	}
	return sizeFromEnv()
}

func sizeFromIoctl(fd uintptr) (Size, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return Size{}, false
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, true
}

func sizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", 80),
		Rows: envInt("LINES", 24),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback when unset or invalid.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
