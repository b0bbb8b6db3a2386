package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/rescode/core/report"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file]",
		Short: "Check a parts list of JSON reports against their bands",
		Long: `Read a parts list, one JSON report per line as written by encode --json,
and check that every listed band sequence is the color code of its value.

Without a file (or with "-") the list is read from stdin.`,
		Example: `  rescode encode --json 4k7 10k+-1 > parts.jsonl
  rescode verify parts.jsonl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.in
			name := "stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return &CLIError{Type: "input", Message: "cannot open parts list", Details: err.Error()}
				}
				defer func() { _ = f.Close() }()
				in, name = f, args[0]
			}
			return a.verify(in, name)
		},
	}
}

// verify checks every entry and reports each one; it fails when any entry
// is invalid.
func (a *app) verify(in io.Reader, name string) error {
	v, err := report.NewValidator()
	if err != nil {
		return err
	}

	useColor := a.useColor()
	var total, failed int
	scanner := bufio.NewScanner(in)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++

		r, err := v.Decode([]byte(line))
		if err == nil {
			err = r.Check()
		}
		if err != nil {
			failed++
			_, _ = fmt.Fprintf(a.out, "%s line %d: %s\n", Colorize("✗", ColorRed, useColor), lineNum, oneLine(err))
			continue
		}
		_, _ = fmt.Fprintf(a.out, "%s line %d: %s\n", Colorize("✓", ColorGreen, useColor), lineNum, r.Value)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	if total == 0 {
		return &CLIError{Type: "input", Message: fmt.Sprintf("%s contained no reports", name)}
	}
	if failed > 0 {
		return &CLIError{
			Type:    "verify",
			Message: fmt.Sprintf("%d of %d entries in %s failed", failed, total, name),
			Hint:    "regenerate the entries with rescode encode --json",
		}
	}
	_, _ = fmt.Fprintf(a.out, "%d entries ok\n", total)
	return nil
}

// oneLine flattens multi-line validation errors.
func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}
