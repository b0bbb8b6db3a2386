package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/runtime/parser"
)

// CLIError represents a formatted CLI error with context
type CLIError struct {
	Type    string // "input", "transcript", "chart"
	Message string
	Details string // Additional context
	Hint    string // How to fix it
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	var (
		parseErr   parser.ParseError
		encErr     *colorcode.EncodingError
		unknownErr *colorcode.UnknownColorError
		decodeErr  *colorcode.DecodeError
		cliErr     *CLIError
	)

	switch {
	case errors.As(err, &parseErr):
		_, _ = fmt.Fprint(w, parseErr.Format(useColor))
	case errors.As(err, &encErr):
		formatEncodingError(w, encErr, useColor)
	case errors.As(err, &unknownErr):
		formatUnknownColorError(w, unknownErr, useColor)
	case errors.As(err, &decodeErr):
		writeError(w, err.Error(), useColor)
		writeHint(w, "bands are digit colors, then a multiplier, then a tolerance (4 to 6 in total)", useColor)
	case errors.As(err, &cliErr):
		formatCLIError(w, cliErr, useColor)
	default:
		// Generic error
		writeError(w, err.Error(), useColor)
	}
}

// formatEncodingError explains why a spec has no color code
func formatEncodingError(w io.Writer, err *colorcode.EncodingError, useColor bool) {
	writeError(w, err.Error(), useColor)

	switch err.Kind {
	case colorcode.ErrTolerance:
		writeHint(w, "use one of the standard tolerances, e.g. 4k7+-1", useColor)
	case colorcode.ErrResistance:
		writeHint(w, "the resistance must be greater than zero", useColor)
	case colorcode.ErrMultiplier:
		writeHint(w, "4 bands cover 0.1 Ω to 9.9 GΩ; try a different --lines", useColor)
	case colorcode.ErrLines:
		writeHint(w, "pass --lines 4, 5 or 6", useColor)
	}
}

// formatUnknownColorError lists the accepted names
func formatUnknownColorError(w io.Writer, err *colorcode.UnknownColorError, useColor bool) {
	writeError(w, err.Error(), useColor)
	names := make([]string, 0, int(colorcode.Silver)+1)
	for c := colorcode.Black; c <= colorcode.Silver; c++ {
		names = append(names, c.String())
	}
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("  Colors: ", ColorGray, useColor), strings.Join(names, ", "))
}

// formatCLIError formats CLI errors
func formatCLIError(w io.Writer, err *CLIError, useColor bool) {
	writeError(w, err.Message, useColor)

	if err.Details != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", err.Details)
	}

	if err.Hint != "" {
		writeHint(w, err.Hint, useColor)
	}
}

func writeError(w io.Writer, msg string, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), msg)
}

func writeHint(w io.Writer, hint string, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), hint)
}
