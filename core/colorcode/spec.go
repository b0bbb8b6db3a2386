package colorcode

import (
	"strconv"

	"github.com/aledsdavies/rescode/core/units"
)

const (
	// MinLines is the smallest supported band count.
	MinLines = 4
	// MaxLines is the largest supported band count.
	MaxLines = 6
	// DefaultTolerance applies when no tolerance is given.
	DefaultTolerance = 5.0
)

// Spec is the electrical specification of a resistor: nominal resistance in
// ohms, tolerance in percent and the number of bands used to display it.
//
// Spec is a plain value; two specs with equal fields are interchangeable.
type Spec struct {
	Resistance float64
	Tolerance  float64
	Lines      int
}

// NewSpec builds a Spec and checks that it can be encoded: resistance is
// positive, the tolerance is one of the standard values and the multiplier
// exponent implied by lines has a band color.
func NewSpec(resistance, tolerance float64, lines int) (Spec, error) {
	s := Spec{Resistance: resistance, Tolerance: tolerance, Lines: lines}
	if _, err := Encode(s); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// SignificantDigits is the number of digit bands.
func (s Spec) SignificantDigits() int {
	return s.Lines - 2
}

// WithLines returns a copy of s displayed with n bands.
func (s Spec) WithLines(n int) Spec {
	s.Lines = n
	return s
}

// String renders s in a form the value parser accepts, e.g. "4.7k+-5".
func (s Spec) String() string {
	return units.Format(s.Resistance) + "+-" + strconv.FormatFloat(s.Tolerance, 'f', -1, 64)
}
