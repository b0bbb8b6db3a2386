// Package formatter provides human-readable formatting for color codes.
// This includes plain text, band trees and answer diffs.
package formatter

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/rescode/core/colorcode"
)

// FormatCode returns the color names separated by spaces, e.g.
// "yellow violet red gold".
func FormatCode(colors []colorcode.Color) string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}

// FormatBand describes what a single band contributes: "4", "×100", "±5%".
func FormatBand(b colorcode.Band) string {
	switch b.Role {
	case colorcode.RoleDigit:
		return strconv.Itoa(b.Digit)
	case colorcode.RoleMultiplier:
		return "×" + formatPower(b.Exponent)
	case colorcode.RoleTolerance:
		return "±" + strconv.FormatFloat(b.Tolerance, 'f', -1, 64) + "%"
	default:
		return "?"
	}
}

// formatPower renders 10^exp as a plain number: 0.01, 1, 1000, 100000000.
func formatPower(exp int) string {
	if exp >= 0 {
		return "1" + strings.Repeat("0", exp)
	}
	return "0." + strings.Repeat("0", -exp-1) + "1"
}
