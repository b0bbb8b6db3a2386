package parser

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/rescode/core/formatter"
)

// ErrorKind classifies parse errors
type ErrorKind int

const (
	ErrMissingSign  ErrorKind = iota // tolerance section does not start with a sign
	ErrBadTolerance                  // unexpected character inside the tolerance digits
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingSign:
		return "missing sign"
	case ErrBadTolerance:
		return "incorrect tolerance"
	default:
		return "parse error"
	}
}

// ParseError represents a malformed value with position and context.
//
// Magnitude parsing never fails; every ParseError comes from the tolerance
// section that follows it.
type ParseError struct {
	Kind       ErrorKind
	Position   int    // 0-based character offset of the offending character
	Message    string // "tolerance must start with a sign"
	Context    string // "tolerance"
	Got        string // offending character
	Suggestion string // "write the tolerance after a sign: +-5"
	Example    string // "10+-5"
	Input      string // complete input
}

// Column returns the 1-based column of the offending character.
func (e ParseError) Column() int {
	return e.Position + 1
}

func (e ParseError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("%s at column %d (got %q)", e.Message, e.Column(), e.Got)
	}
	return fmt.Sprintf("%s at column %d", e.Message, e.Column())
}

// Format renders the error with a Rust/Clang style snippet:
//
//	error: tolerance must start with a sign
//	  --> column 3
//	   |
//	 1 | 10*5
//	   |   ^ got '*'
//	   = help: write the tolerance after a sign: +-5
//	   = example: 10+-5
func (e ParseError) Format(useColor bool) string {
	var b strings.Builder

	b.WriteString(formatter.Colorize("error", formatter.ColorRed, useColor))
	b.WriteString(": " + e.Message + "\n")
	fmt.Fprintf(&b, "  --> column %d\n", e.Column())
	b.WriteString("   |\n")
	fmt.Fprintf(&b, " 1 | %s\n", e.Input)

	caret := strings.Repeat(" ", e.Position) + "^"
	if e.Got != "" {
		caret += " got '" + e.Got + "'"
	}
	b.WriteString("   | " + formatter.Colorize(caret, formatter.ColorRed, useColor) + "\n")

	if e.Suggestion != "" {
		b.WriteString("   = " + formatter.Colorize("help", formatter.ColorCyan, useColor) + ": " + e.Suggestion + "\n")
	}
	if e.Example != "" {
		b.WriteString("   = example: " + e.Example + "\n")
	}
	return b.String()
}
