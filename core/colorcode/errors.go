package colorcode

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind classifies why a Spec cannot be encoded.
type ErrorKind int

const (
	ErrTolerance  ErrorKind = iota // tolerance is not a standard value
	ErrResistance                  // resistance is zero, negative or not finite
	ErrMultiplier                  // multiplier exponent outside -2..8
	ErrLines                       // band count outside 4..6
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTolerance:
		return "non-standard tolerance"
	case ErrResistance:
		return "invalid resistance"
	case ErrMultiplier:
		return "multiplier out of range"
	case ErrLines:
		return "unsupported band count"
	default:
		return "encoding error"
	}
}

// EncodingError reports a Spec that has no standard color code.
type EncodingError struct {
	Kind     ErrorKind
	Spec     Spec
	Exponent int // computed multiplier exponent, set for ErrMultiplier
}

func (e *EncodingError) Error() string {
	switch e.Kind {
	case ErrTolerance:
		return fmt.Sprintf("%s: %s%% has no band color (standard: 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10)",
			e.Kind, strconv.FormatFloat(e.Spec.Tolerance, 'f', -1, 64))
	case ErrResistance:
		return fmt.Sprintf("%s: resistance must be positive, got %v", e.Kind, e.Spec.Resistance)
	case ErrMultiplier:
		return fmt.Sprintf("%s: %v Ω with %d bands needs ×10^%d (supported ×10^%d..×10^%d)",
			e.Kind, e.Spec.Resistance, e.Spec.Lines, e.Exponent, MinExponent, MaxExponent)
	case ErrLines:
		return fmt.Sprintf("%s: %d bands (supported %d..%d)", e.Kind, e.Spec.Lines, MinLines, MaxLines)
	default:
		return e.Kind.String()
	}
}

// IsEncodingError reports whether err is or wraps an *EncodingError.
func IsEncodingError(err error) bool {
	var e *EncodingError
	return errors.As(err, &e)
}

// UnknownColorError reports a color name that is not a band color.
type UnknownColorError struct {
	Name       string
	Suggestion string // closest known name, empty when nothing is close
}

func (e *UnknownColorError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown color %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown color %q", e.Name)
}

// DecodeError reports a band sequence that is not a valid color code.
type DecodeError struct {
	Band   int // 1-based band position in physical order, 0 for the whole sequence
	Color  Color
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Band == 0 {
		return "invalid band sequence: " + e.Reason
	}
	return fmt.Sprintf("band %d (%s): %s", e.Band, e.Color, e.Reason)
}
