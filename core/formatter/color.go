package formatter

import (
	"fmt"

	"github.com/aledsdavies/rescode/core/colorcode"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Colorize wraps text in ANSI color codes if color is enabled
func Colorize(text, color string, useColor bool) string {
	if !useColor {
		return text
	}
	return color + text + ColorReset
}

// Swatch returns a two-cell block painted with the band's display color
// (24-bit background). Without color it returns the bracketed color name.
func Swatch(c colorcode.Color, useColor bool) string {
	if !useColor {
		return "[" + c.String() + "]"
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  %s", r, g, b, ColorReset)
}

// Strip renders a whole band sequence as adjacent swatches.
func Strip(colors []colorcode.Color, useColor bool) string {
	out := ""
	for i, c := range colors {
		if i > 0 && !useColor {
			out += " "
		}
		out += Swatch(c, useColor)
	}
	return out
}
