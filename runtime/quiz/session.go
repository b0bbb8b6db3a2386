package quiz

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/rescode/core/quizlog"
)

// Entry is one answered round.
type Entry struct {
	Round  Round
	Result Result
}

// Session collects the answered rounds of one quiz.
type Session struct {
	Mode    Mode
	Seed    int64
	Entries []Entry
}

// NewSession starts an empty session.
func NewSession(mode Mode, seed int64) *Session {
	return &Session{Mode: mode, Seed: seed}
}

// Record appends an answered round.
func (s *Session) Record(r Round, res Result) {
	s.Entries = append(s.Entries, Entry{Round: r, Result: res})
}

// Score returns the number of correct answers and the number of answers.
func (s *Session) Score() (correct, total int) {
	for _, e := range s.Entries {
		if e.Result.Correct {
			correct++
		}
	}
	return correct, len(s.Entries)
}

// Transcript converts the session into its recorded form.
func (s *Session) Transcript() *quizlog.Transcript {
	t := &quizlog.Transcript{
		Mode:    s.Mode.String(),
		Seed:    s.Seed,
		Entries: make([]quizlog.Entry, 0, len(s.Entries)),
	}
	for _, e := range s.Entries {
		t.Entries = append(t.Entries, quizlog.Entry{
			Round:    e.Round.Number,
			Prompt:   e.Round.Prompt(),
			Answer:   e.Result.Answer,
			Correct:  e.Result.Correct,
			Required: e.Result.Required,
			Entered:  e.Result.Entered,
		})
	}
	return t
}

// Presenter renders rounds, results and rejected answers.
type Presenter interface {
	ShowRound(w io.Writer, r Round)
	ShowResult(w io.Writer, res Result)
	ShowError(w io.Writer, err error)
}

// Runner plays rounds over line-based input.
type Runner struct {
	Generator *Generator
	Rounds    int // 0 plays until input ends
	In        io.Reader
	Out       io.Writer
	Presenter Presenter

	// CloseInput closes In when Run returns if In is an io.Closer, so the
	// line reader stops instead of waiting for one more line.
	CloseInput bool
}

// Run plays until Rounds answers are recorded in session, input ends or
// ctx is cancelled. A rejected answer (bad value or unknown color) is
// reported and the same round is asked again.
//
// Lines are read on a separate goroutine. A read blocked on input that
// Close cannot interrupt, such as a terminal, keeps that goroutine
// alive until the next line arrives; it then sees the cancelled context and
// exits without sending.
func (r *Runner) Run(ctx context.Context, session *Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if c, ok := r.In.(io.Closer); ok && r.CloseInput {
		defer func() { _ = c.Close() }()
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for r.Rounds == 0 || len(session.Entries) < r.Rounds {
		round := r.Generator.Next()
		r.Presenter.ShowRound(r.Out, round)

		for answered := false; !answered; {
			var line string
			var ok bool
			select {
			case <-ctx.Done():
				return ctx.Err()
			case line, ok = <-lines:
			}
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-readErr; err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}

			res, err := round.Check(line)
			if err != nil {
				r.Presenter.ShowError(r.Out, err)
				continue
			}
			session.Record(round, res)
			r.Presenter.ShowResult(r.Out, res)
			answered = true
		}
	}
	return nil
}
