package colorcode

import (
	"fmt"

	"github.com/aledsdavies/rescode/core/invariant"
	"github.com/aledsdavies/rescode/core/units"
)

// BandRole says what a band encodes.
type BandRole int

const (
	RoleDigit BandRole = iota
	RoleMultiplier
	RoleTolerance
)

func (r BandRole) String() string {
	switch r {
	case RoleDigit:
		return "digit"
	case RoleMultiplier:
		return "multiplier"
	case RoleTolerance:
		return "tolerance"
	default:
		return "band"
	}
}

// Band is one band of a code in physical order together with its meaning.
type Band struct {
	Color     Color
	Role      BandRole
	Digit     int     // RoleDigit
	Exponent  int     // RoleMultiplier
	Tolerance float64 // RoleTolerance
}

// Describe assigns a role and value to every band of a code given in
// physical order: digit bands, multiplier, tolerance.
func Describe(colors []Color) ([]Band, error) {
	n := len(colors)
	if n < MinLines || n > MaxLines {
		return nil, &DecodeError{Reason: fmt.Sprintf("got %d bands, want %d..%d", n, MinLines, MaxLines)}
	}

	bands := make([]Band, n)
	for i, c := range colors[:n-2] {
		d, ok := digitOf(c)
		if !ok {
			return nil, &DecodeError{Band: i + 1, Color: c, Reason: "not a digit color"}
		}
		bands[i] = Band{Color: c, Role: RoleDigit, Digit: d}
	}

	exp, ok := exponentOf(colors[n-2])
	if !ok {
		return nil, &DecodeError{Band: n - 1, Color: colors[n-2], Reason: "not a multiplier color"}
	}
	bands[n-2] = Band{Color: colors[n-2], Role: RoleMultiplier, Exponent: exp}

	tolerance, ok := toleranceOf(colors[n-1])
	if !ok {
		return nil, &DecodeError{Band: n, Color: colors[n-1], Reason: "not a tolerance color"}
	}
	bands[n-1] = Band{Color: colors[n-1], Role: RoleTolerance, Tolerance: tolerance}

	return bands, nil
}

// Decode reads a band sequence in physical order back into a Spec. It is
// the inverse of Bands for every code whose first digit band is not black.
func Decode(colors []Color) (Spec, error) {
	bands, err := Describe(colors)
	if err != nil {
		return Spec{}, err
	}

	var mantissa uint64
	var exp int
	var tolerance float64
	for _, b := range bands {
		switch b.Role {
		case RoleDigit:
			mantissa = mantissa*10 + uint64(b.Digit)
		case RoleMultiplier:
			exp = b.Exponent
		case RoleTolerance:
			tolerance = b.Tolerance
		}
	}

	resistance := units.Scale(mantissa, 0, exp)
	invariant.Finite(resistance, "decoded resistance")

	return Spec{
		Resistance: resistance,
		Tolerance:  tolerance,
		Lines:      len(colors),
	}, nil
}

// DecodeNames resolves color names and decodes them.
func DecodeNames(names []string) (Spec, error) {
	colors, err := ParseColors(names)
	if err != nil {
		return Spec{}, err
	}
	return Decode(colors)
}
