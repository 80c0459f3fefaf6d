// Package terminal provides terminal rendering utilities for CLI report output.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Width bounds for rendered reports.
const (
	DefaultWidth = 80
	MinWidth     = 60
	MaxWidth     = 120
)

// Config holds terminal rendering configuration.
type Config struct {
	Width   int
	NoColor bool
}

// NewConfig creates a Config with sensible defaults from the environment.
func NewConfig() Config {
	return Config{
		Width:   DetectWidth(),
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// DetectWidth returns the terminal width clamped to [MinWidth, MaxWidth].
// The COLUMNS environment variable wins over the tty size so output stays
// reproducible in scripts and tests.
func DetectWidth() int {
	if columnsEnv := os.Getenv("COLUMNS"); columnsEnv != "" {
		if width, err := strconv.Atoi(columnsEnv); err == nil {
			return clampWidth(width)
		}
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return clampWidth(width)
	}

	return DefaultWidth
}

func clampWidth(width int) int {
	if width < MinWidth {
		return MinWidth
	}

	if width > MaxWidth {
		return MaxWidth
	}

	return width
}
