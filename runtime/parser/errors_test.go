package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("10*5")
	if err == nil {
		t.Fatal("expected error")
	}

	want := `tolerance must start with a sign at column 3 (got "*")`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseErrorFormat(t *testing.T) {
	_, err := Parse("10*5")
	var parseErr ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want ParseError", err)
	}

	want := "error: tolerance must start with a sign\n" +
		"  --> column 3\n" +
		"   |\n" +
		" 1 | 10*5\n" +
		"   |   ^ got '*'\n" +
		"   = help: write the tolerance after a sign: +-5\n" +
		"   = example: 10+-5\n"
	if diff := cmp.Diff(want, parseErr.Format(false)); diff != "" {
		t.Errorf("Format mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingSignAfterLetterListsUnits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4R7", "a value takes at most one unit suffix (G M k m u); write the tolerance after a sign: +-5"},
		{"4k7k", "a value takes at most one unit suffix (G M k m u); write the tolerance after a sign: +-5"},
		{"1k 5", "write the tolerance after a sign: +-5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			var parseErr ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) error = %v, want ParseError", tt.input, err)
			}
			if parseErr.Suggestion != tt.want {
				t.Errorf("Suggestion = %q, want %q", parseErr.Suggestion, tt.want)
			}
		})
	}
}

func TestParseErrorFormatColor(t *testing.T) {
	_, err := Parse("1k+-5x")
	var parseErr ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want ParseError", err)
	}

	out := parseErr.Format(true)
	if !strings.Contains(out, "\033[31merror\033[0m") {
		t.Errorf("colored output should highlight the error label:\n%q", out)
	}
	if !strings.Contains(out, "example: 1k+-0.25") {
		t.Errorf("output missing example:\n%s", out)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrMissingSign, "missing sign"},
		{ErrBadTolerance, "incorrect tolerance"},
		{ErrorKind(99), "parse error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
