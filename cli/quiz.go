package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/rescode/core/formatter"
	"github.com/aledsdavies/rescode/core/quizlog"
	"github.com/aledsdavies/rescode/runtime/quiz"
)

func newQuizCmd(a *app) *cobra.Command {
	var (
		mode   string
		rounds int
		seed   int64
		record string
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Practice reading and writing color codes",
		Long: `Play practice rounds in the terminal.

In ask mode the bands are shown and you type the value (4k7, 2.2M+-1).
In generate mode the value is shown and you type the band colors.
Press Ctrl-D or Ctrl-C to stop early.`,
		Example: `  rescode quiz --rounds 5
  rescode quiz --mode generate --seed 42 --record practice.rcqz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := quiz.ParseMode(mode)
			if err != nil {
				return err
			}
			if rounds < 0 {
				return &CLIError{Type: "input", Message: fmt.Sprintf("--rounds must not be negative, got %d", rounds)}
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			session, err := a.runQuiz(ctx, m, rounds, seed)
			if err != nil {
				return err
			}
			if record == "" {
				return nil
			}
			return a.recordSession(record, session)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", a.cfg.QuizMode, "Quiz mode: ask or generate")
	cmd.Flags().IntVar(&rounds, "rounds", a.cfg.QuizRounds, "Number of rounds; 0 plays until input ends")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default: current time)")
	cmd.Flags().StringVar(&record, "record", "", "Write a transcript of the session to this file")
	return cmd
}

// runQuiz plays a session and prints the score. Interrupting the quiz is
// not an error: the rounds answered so far still count.
func (a *app) runQuiz(ctx context.Context, mode quiz.Mode, rounds int, seed int64) (*quiz.Session, error) {
	useColor := a.useColor()
	session := quiz.NewSession(mode, seed)
	runner := &quiz.Runner{
		Generator: quiz.NewGenerator(mode, seed),
		Rounds:    rounds,
		In:        a.in,
		Out:       a.out,
		Presenter: &terminalPresenter{useColor: useColor},
		// stdin is not needed once the quiz ends
		CloseInput: true,
	}

	a.logger().Debug("quiz started", "mode", mode, "rounds", rounds, "seed", seed)

	err := runner.Run(ctx, session)
	if err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}

	correct, total := session.Score()
	_, _ = fmt.Fprintf(a.out, "\nScore: %s\n", Colorize(fmt.Sprintf("%d/%d", correct, total), ColorCyan, useColor))
	return session, nil
}

func (a *app) recordSession(path string, session *quiz.Session) error {
	f, err := os.Create(path)
	if err != nil {
		return &CLIError{Type: "transcript", Message: "cannot create transcript", Details: err.Error()}
	}

	digest, err := quizlog.Write(f, session.Transcript())
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write transcript %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(a.out, "Recorded %s (blake2b-256 %s)\n", path, hex.EncodeToString(digest[:]))
	return nil
}

// terminalPresenter renders quiz rounds for a line-based terminal.
type terminalPresenter struct {
	useColor bool
}

func (p *terminalPresenter) ShowRound(w io.Writer, r quiz.Round) {
	label := Colorize(fmt.Sprintf("Round %d", r.Number), ColorBlue, p.useColor)
	if r.Mode == quiz.ModeGenerateColors {
		_, _ = fmt.Fprintf(w, "\n%s: %s\n", label, r.Prompt())
		p.prompt(w, r.Mode)
		return
	}
	_, _ = fmt.Fprintf(w, "\n%s: %s  %s\n", label, formatter.Strip(r.Bands, p.useColor), r.Prompt())
	p.prompt(w, r.Mode)
}

func (p *terminalPresenter) ShowResult(w io.Writer, res quiz.Result) {
	if res.Correct {
		_, _ = fmt.Fprintln(w, Colorize("✓ correct", ColorGreen, p.useColor))
		return
	}

	_, _ = fmt.Fprintln(w, Colorize("✗ incorrect", ColorRed, p.useColor))
	_, _ = fmt.Fprintf(w, "  Entered:  %s\n", res.Entered)
	_, _ = fmt.Fprintf(w, "  Required: %s\n", res.Required)
	if res.EnteredBands == nil {
		_, _ = fmt.Fprintln(w, "  (the entered value has no standard color code)")
		return
	}
	_, _ = fmt.Fprint(w, indent(formatter.FormatDiff(formatter.Diff(res.RequiredBands, res.EnteredBands), p.useColor)))
}

func (p *terminalPresenter) ShowError(w io.Writer, err error) {
	FormatError(w, err, p.useColor)
	_, _ = fmt.Fprint(w, "try again> ")
}

func (p *terminalPresenter) prompt(w io.Writer, mode quiz.Mode) {
	if mode == quiz.ModeGenerateColors {
		_, _ = fmt.Fprint(w, "colors> ")
		return
	}
	_, _ = fmt.Fprint(w, "value> ")
}

// indent prefixes every line of s with two spaces.
func indent(s string) string {
	out := ""
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out += "  " + s[start:i+1]
			start = i + 1
		}
	}
	if start < len(s) {
		out += "  " + s[start:]
	}
	return out
}
