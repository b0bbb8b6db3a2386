package colorcode

import (
	"math"

	"github.com/aledsdavies/rescode/core/invariant"
	"github.com/aledsdavies/rescode/core/units"
)

// significandDecimals is the precision the scaled significand is rounded to
// before truncation, so 6.9999999 reads as digit 7.
const significandDecimals = 6

// Encode maps s to its color bands in reverse physical order: tolerance,
// multiplier, then digit bands least-significant first. Reverse the result
// (or call Bands) for left-to-right display.
func Encode(s Spec) ([]Color, error) {
	tolerance, ok := ToleranceColor(s.Tolerance)
	if !ok {
		return nil, &EncodingError{Kind: ErrTolerance, Spec: s}
	}
	if s.Lines < MinLines || s.Lines > MaxLines {
		return nil, &EncodingError{Kind: ErrLines, Spec: s}
	}
	if !(s.Resistance > 0) || math.IsInf(s.Resistance, 0) {
		return nil, &EncodingError{Kind: ErrResistance, Spec: s}
	}

	sig := s.SignificantDigits()
	invariant.InRange(sig, MinLines-2, MaxLines-2, "digit band count")
	exp := integerDigits(s.Resistance) - sig
	if exp < MinExponent-1 || exp > MaxExponent {
		return nil, &EncodingError{Kind: ErrMultiplier, Spec: s, Exponent: exp}
	}
	digits := significand(s.Resistance, exp)

	// Rounding can carry into an extra digit (9999.9999999 with two digit
	// bands reads as 100); shift it into the multiplier.
	if digits >= uint64(math.Pow10(sig)) {
		digits /= 10
		exp++
	}

	multiplier, ok := MultiplierColor(exp)
	if !ok {
		return nil, &EncodingError{Kind: ErrMultiplier, Spec: s, Exponent: exp}
	}
	invariant.InRange(exp, MinExponent, MaxExponent, "multiplier exponent")
	invariant.Invariant(digits < uint64(math.Pow10(sig)), "significand %d has more than %d digits", digits, sig)

	colors := make([]Color, 0, s.Lines)
	colors = append(colors, tolerance, multiplier)
	for i := 0; i < sig; i++ {
		colors = append(colors, digitColors[digits%10])
		digits /= 10
	}

	invariant.Postcondition(len(colors) == s.Lines, "expected %d bands, got %d", s.Lines, len(colors))
	return colors, nil
}

// Bands returns the color bands of s in physical, left-to-right order:
// digit bands most-significant first, multiplier, tolerance.
func Bands(s Spec) ([]Color, error) {
	colors, err := Encode(s)
	if err != nil {
		return nil, err
	}
	Reverse(colors)
	return colors, nil
}

// Reverse reverses colors in place.
func Reverse(colors []Color) {
	for i, j := 0, len(colors)-1; i < j; i, j = i+1, j-1 {
		colors[i], colors[j] = colors[j], colors[i]
	}
}

// integerDigits returns floor(log10(r)) + 1, the number of digits before
// the decimal point (4700 → 4, 0.47 → 0). log10 alone is off by one on
// exact powers of ten (log10(1000) = 2.9999999999999996), so the estimate
// is corrected against math.Pow10.
func integerDigits(r float64) int {
	v := units.Snap(r)
	e := int(math.Floor(math.Log10(v)))
	if math.Pow10(e+1) <= v {
		e++
	} else if math.Pow10(e) > v {
		e--
	}
	return e + 1
}

// significand returns r / 10^exp as an integer, rounded to
// significandDecimals places before truncation.
func significand(r float64, exp int) uint64 {
	v := units.Snap(r)
	var s float64
	if exp >= 0 {
		s = v / math.Pow10(exp)
	} else {
		s = v * math.Pow10(-exp)
	}
	scale := math.Pow10(significandDecimals)
	s = math.Round(s*scale) / scale
	return uint64(math.Floor(s))
}
