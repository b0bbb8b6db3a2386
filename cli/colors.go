package main

import (
	"io"
	"os"

	"github.com/aledsdavies/rescode/cli/internal/config"
	"github.com/aledsdavies/rescode/core/formatter"
)

// Re-export color constants from formatter package for convenience
const (
	ColorReset  = formatter.ColorReset
	ColorRed    = formatter.ColorRed
	ColorGreen  = formatter.ColorGreen
	ColorYellow = formatter.ColorYellow
	ColorBlue   = formatter.ColorBlue
	ColorCyan   = formatter.ColorCyan
	ColorGray   = formatter.ColorGray
)

// Colorize wraps text in ANSI color codes if color is enabled
// This is a convenience wrapper around formatter.Colorize
func Colorize(text, color string, useColor bool) string {
	return formatter.Colorize(text, color, useColor)
}

// ShouldUseColor determines if color output should be used.
// Respects --no-color, NO_COLOR and RESCODE_NO_COLOR, and only colors
// terminals.
func ShouldUseColor(noColorFlag bool, cfg config.Config, w io.Writer) bool {
	if noColorFlag || cfg.ColorDisabled() {
		return false
	}
	return isTerminal(w)
}

// isTerminal reports whether v is a character device such as a tty.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
