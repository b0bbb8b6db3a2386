// Package units maps SI prefix suffixes to powers of ten and formats
// resistances back into the compact notation the value parser accepts.
//
// Values are scaled from an integer mantissa and a decimal exponent so that
// typed text such as "4k7" or "0.05" lands on the same float64 as the
// equivalent Go literal.
package units

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Ohm is the unit symbol used in human-readable output.
const Ohm = "Ω"

// SnapDigits is the number of significant decimal digits kept when a
// computed resistance is normalized before digit extraction or formatting.
const SnapDigits = 12

// prefix is one SI prefix accepted as a unit suffix.
type prefix struct {
	symbol rune
	exp    int
}

// ladder lists prefixes from largest to smallest; Format walks it in order.
var ladder = []prefix{
	{'G', 9},
	{'M', 6},
	{'k', 3},
	{'m', -3},
	{'u', -6},
}

var exponents = map[rune]int{}

func init() {
	for _, p := range ladder {
		exponents[p.symbol] = p.exp
	}
}

// Lookup returns the power-of-ten exponent for a unit suffix character.
func Lookup(r rune) (exp int, ok bool) {
	exp, ok = exponents[r]
	return exp, ok
}

// Suffixes returns every accepted unit suffix, largest first.
func Suffixes() string {
	var b strings.Builder
	for _, p := range ladder {
		b.WriteRune(p.symbol)
	}
	return b.String()
}

// Scale computes mantissa × 10^(exp − scale) with a single rounding step.
//
// mantissa holds the digits typed by the user with the decimal point
// removed, scale the number of digits that followed the point and exp the
// unit exponent (3 for 'k'). Scale(47, 1, 3) is exactly 4700.
func Scale(mantissa uint64, scale, exp int) float64 {
	e := exp - scale
	v := float64(mantissa)
	if e >= 0 {
		return v * math.Pow10(e)
	}
	return v / math.Pow10(-e)
}

// Snap rounds v to SnapDigits significant digits, removing the binary
// noise left by earlier float arithmetic (4699.999999999999 → 4700).
func Snap(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	s, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', SnapDigits, 64), 64)
	if err != nil {
		return v
	}
	return s
}

// split divides ohms into a mantissa in [1, 1000) and its prefix symbol.
// A zero symbol means no prefix.
func split(ohms float64) (float64, rune) {
	v := Snap(ohms)
	abs := math.Abs(v)
	if abs >= 1 && abs < 1000 {
		return v, 0
	}
	for _, p := range ladder {
		if abs >= math.Pow10(p.exp) {
			return scaleDown(v, p.exp), p.symbol
		}
	}
	last := ladder[len(ladder)-1]
	return scaleDown(v, last.exp), last.symbol
}

func scaleDown(v float64, exp int) float64 {
	if exp >= 0 {
		return Snap(v / math.Pow10(exp))
	}
	return Snap(v * math.Pow10(-exp))
}

// Format renders ohms in the compact notation accepted by the parser:
// 4700 → "4.7k", 0.47 → "470m", 330 → "330".
func Format(ohms float64) string {
	if ohms == 0 || math.IsNaN(ohms) || math.IsInf(ohms, 0) {
		return strconv.FormatFloat(ohms, 'f', -1, 64)
	}
	mantissa, symbol := split(ohms)
	text := strconv.FormatFloat(mantissa, 'f', -1, 64)
	if symbol != 0 {
		text += string(symbol)
	}
	return text
}

// Human renders ohms for people, localized by tag:
// 4700 → "4.7 kΩ (4,700 Ω)" for English. Values below 1 kΩ and at least
// 1 Ω are shown once ("330 Ω").
func Human(ohms float64, tag language.Tag) string {
	p := message.NewPrinter(tag)
	exact := p.Sprintf("%v %s", number.Decimal(Snap(ohms), number.MaxFractionDigits(9)), Ohm)

	mantissa, symbol := split(ohms)
	if symbol == 0 || ohms == 0 {
		return exact
	}
	compact := p.Sprintf("%v %s%s", number.Decimal(mantissa, number.MaxFractionDigits(9)), string(symbol), Ohm)
	return compact + " (" + exact + ")"
}
