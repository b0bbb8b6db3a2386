package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// inputValues returns the values to process. Command arguments win; with
// no arguments or a single "-", non-empty lines are read from stdin unless
// stdin is a terminal.
func (a *app) inputValues(args []string) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}

	explicit := len(args) == 1
	if !explicit && !hasPipedInput(a.in) {
		return nil, &CLIError{
			Type:    "input",
			Message: "no values given",
			Hint:    "pass values as arguments or pipe them on stdin",
		}
	}

	lines, err := readLines(a.in)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &CLIError{Type: "input", Message: "stdin contained no values"}
	}
	return lines, nil
}

// hasPipedInput detects if there's data piped to stdin
func hasPipedInput(in io.Reader) bool {
	if in == nil {
		return false
	}
	return !isTerminal(in)
}

// readLines returns the trimmed non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
