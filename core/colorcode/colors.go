// Package colorcode implements the 4/5/6-band resistor color code.
//
// The tables in this package are fixed at process start and never mutated,
// so every function is safe for concurrent use.
package colorcode

import (
	"fmt"
	"sort"
	"strings"
)

// Color is one band color.
type Color int

const (
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White
	Gold
	Silver
)

// colorInfo holds the canonical name and display RGB of each Color.
var colorInfo = [...]struct {
	name string
	rgb  [3]uint8
}{
	Black:  {"black", [3]uint8{0x00, 0x00, 0x00}},
	Brown:  {"brown", [3]uint8{0x8B, 0x45, 0x13}},
	Red:    {"red", [3]uint8{0xE0, 0x1B, 0x1B}},
	Orange: {"orange", [3]uint8{0xFF, 0x8C, 0x00}},
	Yellow: {"yellow", [3]uint8{0xFF, 0xD7, 0x00}},
	Green:  {"green", [3]uint8{0x22, 0x8B, 0x22}},
	Blue:   {"blue", [3]uint8{0x1E, 0x5B, 0xD8}},
	Violet: {"violet", [3]uint8{0x8A, 0x2B, 0xE2}},
	Grey:   {"grey", [3]uint8{0x80, 0x80, 0x80}},
	White:  {"white", [3]uint8{0xFF, 0xFF, 0xFF}},
	Gold:   {"gold", [3]uint8{0xCF, 0xB5, 0x3B}},
	Silver: {"silver", [3]uint8{0xC0, 0xC0, 0xC0}},
}

// String returns the canonical lowercase color name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorInfo[c].name
}

// Valid reports whether c is one of the twelve band colors.
func (c Color) Valid() bool {
	return c >= Black && c <= Silver
}

// RGB returns the display color used for swatches and chart fills.
func (c Color) RGB() (r, g, b uint8) {
	if !c.Valid() {
		return 0, 0, 0
	}
	rgb := colorInfo[c].rgb
	return rgb[0], rgb[1], rgb[2]
}

// Hex returns the display color as "RRGGBB".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

// Digit band colors, index = digit value.
var digitColors = [10]Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}

// Multiplier band colors, index = exponent + 2 (silver ×0.01 … grey ×10^8).
var multiplierColors = [11]Color{Silver, Gold, Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey}

const (
	// MinExponent is the smallest multiplier exponent with a band color (silver).
	MinExponent = -2
	// MaxExponent is the largest multiplier exponent with a band color (grey).
	MaxExponent = 8
)

// toleranceColors maps an exact tolerance percentage to its band color.
var toleranceColors = map[float64]Color{
	0.05: Grey,
	0.10: Violet,
	0.25: Blue,
	0.5:  Green,
	1:    Brown,
	2:    Red,
	5:    Gold,
	10:   Silver,
}

// DigitColors returns the digit table.
func DigitColors() [10]Color { return digitColors }

// MultiplierColors returns the multiplier table, index = exponent + 2.
func MultiplierColors() [11]Color { return multiplierColors }

// DigitColor returns the band color for a digit 0–9.
func DigitColor(d int) (Color, bool) {
	if d < 0 || d >= len(digitColors) {
		return 0, false
	}
	return digitColors[d], true
}

// MultiplierColor returns the band color for a power-of-ten exponent.
func MultiplierColor(exp int) (Color, bool) {
	if exp < MinExponent || exp > MaxExponent {
		return 0, false
	}
	return multiplierColors[exp-MinExponent], true
}

// ToleranceColor looks up a tolerance by exact match. There is no nearest
// value fallback: 1.0001 is not 1.
func ToleranceColor(tolerance float64) (Color, bool) {
	c, ok := toleranceColors[tolerance]
	return c, ok
}

// Tolerances returns the eight standard tolerances in ascending order.
func Tolerances() []float64 {
	out := make([]float64, 0, len(toleranceColors))
	for t := range toleranceColors {
		out = append(out, t)
	}
	sort.Float64s(out)
	return out
}

func digitOf(c Color) (int, bool) {
	for d, dc := range digitColors {
		if dc == c {
			return d, true
		}
	}
	return 0, false
}

func exponentOf(c Color) (int, bool) {
	for i, mc := range multiplierColors {
		if mc == c {
			return i + MinExponent, true
		}
	}
	return 0, false
}

func toleranceOf(c Color) (float64, bool) {
	for t, tc := range toleranceColors {
		if tc == c {
			return t, true
		}
	}
	return 0, false
}

// aliases are accepted spellings beyond the canonical names.
var aliases = map[string]Color{
	"gray":   Grey,
	"purple": Violet,
	"cyan":   Blue,
}

var byName = map[string]Color{}

// knownNames lists canonical names and aliases for suggestions.
var knownNames []string

func init() {
	for c := Black; c <= Silver; c++ {
		byName[c.String()] = c
	}
	for name, c := range aliases {
		byName[name] = c
	}
	for name := range byName {
		knownNames = append(knownNames, name)
	}
	sort.Strings(knownNames)
}

// LookupColor resolves a color name, case-insensitively, including the
// aliases gray, purple and cyan. Unknown names return an
// *UnknownColorError carrying the closest known name.
func LookupColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := byName[key]; ok {
		return c, nil
	}
	return 0, &UnknownColorError{Name: name, Suggestion: closestColorName(key)}
}

// ParseColors resolves a list of color names, stopping at the first unknown one.
func ParseColors(names []string) ([]Color, error) {
	colors := make([]Color, 0, len(names))
	for i, name := range names {
		c, err := LookupColor(name)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i+1, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}
