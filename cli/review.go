package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/rescode/core/quizlog"
)

func newReviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "review <file>",
		Short:   "Show a recorded quiz session",
		Example: `  rescode review practice.rcqz`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.review(args[0])
		},
	}
}

func (a *app) review(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &CLIError{Type: "transcript", Message: "cannot open transcript", Details: err.Error()}
	}
	defer func() { _ = f.Close() }()

	t, digest, err := quizlog.Read(f)
	if err != nil {
		return fmt.Errorf("read transcript %s: %w", path, err)
	}

	useColor := a.useColor()
	_, _ = fmt.Fprintf(a.out, "Mode:   %s\n", t.Mode)
	_, _ = fmt.Fprintf(a.out, "Seed:   %d\n", t.Seed)
	_, _ = fmt.Fprintf(a.out, "Digest: %s\n\n", hex.EncodeToString(digest[:]))

	for _, e := range t.Entries {
		mark := Colorize("✓", ColorGreen, useColor)
		if !e.Correct {
			mark = Colorize("✗", ColorRed, useColor)
		}
		_, _ = fmt.Fprintf(a.out, "%s %2d. %s\n", mark, e.Round, e.Prompt)
		_, _ = fmt.Fprintf(a.out, "      answer %q", e.Answer)
		if !e.Correct {
			_, _ = fmt.Fprintf(a.out, ", required %s", e.Required)
		}
		_, _ = fmt.Fprintln(a.out)
	}

	correct, total := t.Score()
	_, _ = fmt.Fprintf(a.out, "\nScore: %s\n", Colorize(fmt.Sprintf("%d/%d", correct, total), ColorCyan, useColor))
	return nil
}
