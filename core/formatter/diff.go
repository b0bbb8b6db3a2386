package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aledsdavies/rescode/core/colorcode"
)

// DiffResult represents the differences between an expected and an actual
// band sequence, compared position by position in physical order.
type DiffResult struct {
	Added    []BandDiff // bands present only in actual
	Removed  []BandDiff // bands present only in expected
	Modified []BandDiff // bands whose color differs
}

// BandDiff represents a difference at a single band position.
type BandDiff struct {
	Band     int    // 1-indexed
	Expected string // empty for added bands
	Actual   string // empty for removed bands
}

// Empty reports whether the sequences matched.
func (d *DiffResult) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Modified) == 0
}

// Diff compares two band sequences.
func Diff(expected, actual []colorcode.Color) *DiffResult {
	result := &DiffResult{}

	n := max(len(expected), len(actual))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(actual):
			result.Removed = append(result.Removed, BandDiff{Band: i + 1, Expected: expected[i].String()})
		case i >= len(expected):
			result.Added = append(result.Added, BandDiff{Band: i + 1, Actual: actual[i].String()})
		case expected[i] != actual[i]:
			result.Modified = append(result.Modified, BandDiff{
				Band:     i + 1,
				Expected: expected[i].String(),
				Actual:   actual[i].String(),
			})
		}
	}

	return result
}

// FormatDiff returns a human-readable diff display.
func FormatDiff(d *DiffResult, useColor bool) string {
	if d.Empty() {
		return "no differences\n"
	}

	var b strings.Builder
	for _, m := range d.Modified {
		fmt.Fprintf(&b, "band %d: %s -> %s\n", m.Band,
			Colorize(m.Expected, ColorGreen, useColor),
			Colorize(m.Actual, ColorRed, useColor))
	}
	for _, r := range d.Removed {
		fmt.Fprintf(&b, "band %d: %s\n", r.Band, Colorize("- "+r.Expected, ColorGreen, useColor))
	}
	for _, a := range d.Added {
		fmt.Fprintf(&b, "band %d: %s\n", a.Band, Colorize("+ "+a.Actual, ColorRed, useColor))
	}
	return b.String()
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
