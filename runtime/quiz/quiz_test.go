package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/runtime/parser"
)

var fourK7 = Round{
	Number: 1,
	Spec:   colorcode.Spec{Resistance: 4700, Tolerance: 5, Lines: 4},
	Bands:  []colorcode.Color{colorcode.Yellow, colorcode.Violet, colorcode.Red, colorcode.Gold},
}

func generateRound(r Round) Round {
	r.Mode = ModeGenerateColors
	return r
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"ask", ModeAskValue},
		{"ASK-VALUE", ModeAskValue},
		{" value ", ModeAskValue},
		{"generate", ModeGenerateColors},
		{"generate-colors", ModeGenerateColors},
		{"colors", ModeGenerateColors},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if err != nil {
				t.Fatalf("ParseMode(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseMode("random"); err == nil {
		t.Error("ParseMode(\"random\") should fail")
	}
	if got := Mode(7).String(); got != "Mode(7)" {
		t.Errorf("Mode(7).String() = %q", got)
	}
}

func TestCheckValue(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		correct   bool
		entered   colorcode.Spec
		encodable bool
	}{
		{"rkm", "4k7", true, colorcode.Spec{Resistance: 4700, Tolerance: 5, Lines: 4}, true},
		{"explicit tolerance", "4.7k+-5", true, colorcode.Spec{Resistance: 4700, Tolerance: 5, Lines: 4}, true},
		{"plain ohms", "4700", true, colorcode.Spec{Resistance: 4700, Tolerance: 5, Lines: 4}, true},
		{"surrounding space", "  4k7 ", true, colorcode.Spec{Resistance: 4700, Tolerance: 5, Lines: 4}, true},
		{"extra digit hidden by band count", "4k75", true, colorcode.Spec{Resistance: 4750, Tolerance: 5, Lines: 4}, true},
		{"wrong tolerance", "4k7+-1", false, colorcode.Spec{Resistance: 4700, Tolerance: 1, Lines: 4}, true},
		{"wrong multiplier", "47k", false, colorcode.Spec{Resistance: 47000, Tolerance: 5, Lines: 4}, true},
		{"non-standard tolerance", "4k7+-3", false, colorcode.Spec{Resistance: 4700, Tolerance: 3, Lines: 4}, false},
		{"zero", "0", false, colorcode.Spec{Resistance: 0, Tolerance: 5, Lines: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := fourK7.Check(tt.answer)
			if err != nil {
				t.Fatalf("Check(%q) error: %v", tt.answer, err)
			}
			if res.Correct != tt.correct {
				t.Errorf("Correct = %v, want %v", res.Correct, tt.correct)
			}
			if diff := cmp.Diff(tt.entered, res.Entered); diff != "" {
				t.Errorf("Entered mismatch (-want +got):\n%s", diff)
			}
			if (res.EnteredBands != nil) != tt.encodable {
				t.Errorf("EnteredBands = %v, encodable want %v", res.EnteredBands, tt.encodable)
			}
			if res.Answer != tt.answer {
				t.Errorf("Answer = %q, want %q", res.Answer, tt.answer)
			}
			if diff := cmp.Diff(fourK7.Bands, res.RequiredBands); diff != "" {
				t.Errorf("RequiredBands mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckValueParseError(t *testing.T) {
	_, err := fourK7.Check("10*5")
	var parseErr parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Check error = %v, want parser.ParseError", err)
	}
}

func TestCheckColors(t *testing.T) {
	round := generateRound(fourK7)

	tests := []struct {
		name    string
		answer  string
		correct bool
		entered colorcode.Spec
	}{
		{"exact", "yellow violet red gold", true, colorcode.Spec{Resistance: 4700, Tolerance: 5, Lines: 4}},
		{"commas and case", "Yellow, Violet, Red, Gold", true, colorcode.Spec{Resistance: 4700, Tolerance: 5, Lines: 4}},
		{"alias", "yellow purple red gold", true, colorcode.Spec{Resistance: 4700, Tolerance: 5, Lines: 4}},
		{"wrong multiplier", "yellow violet orange gold", false, colorcode.Spec{Resistance: 47000, Tolerance: 5, Lines: 4}},
		{"too few bands", "yellow violet", false, colorcode.Spec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := round.Check(tt.answer)
			if err != nil {
				t.Fatalf("Check(%q) error: %v", tt.answer, err)
			}
			if res.Correct != tt.correct {
				t.Errorf("Correct = %v, want %v", res.Correct, tt.correct)
			}
			if diff := cmp.Diff(tt.entered, res.Entered); diff != "" {
				t.Errorf("Entered mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckColorsUnknown(t *testing.T) {
	_, err := generateRound(fourK7).Check("yelow violet red gold")
	var unknown *colorcode.UnknownColorError
	if !errors.As(err, &unknown) {
		t.Fatalf("Check error = %v, want *UnknownColorError", err)
	}
	if unknown.Suggestion != "yellow" {
		t.Errorf("Suggestion = %q, want %q", unknown.Suggestion, "yellow")
	}
}

func TestPrompt(t *testing.T) {
	if got := fourK7.Prompt(); got != "yellow violet red gold" {
		t.Errorf("ask Prompt() = %q", got)
	}
	if got := generateRound(fourK7).Prompt(); got != "4.7k+-5 (4 bands)" {
		t.Errorf("generate Prompt() = %q", got)
	}
}

func TestResultString(t *testing.T) {
	res, err := fourK7.Check("47k")
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	want := "incorrect\nEntered: 47k+-5\nRequired: 4.7k+-5"
	if diff := cmp.Diff(want, res.String()); diff != "" {
		t.Errorf("String mismatch (-want +got):\n%s", diff)
	}

	res, _ = fourK7.Check("4k7")
	if res.String() != "correct" {
		t.Errorf("String() = %q, want %q", res.String(), "correct")
	}
}

func TestGeneratorRounds(t *testing.T) {
	g := NewGenerator(ModeAskValue, 1)
	tolerances := colorcode.Tolerances()

	for i := 1; i <= 500; i++ {
		r := g.Next()

		if r.Number != i {
			t.Fatalf("round %d numbered %d", i, r.Number)
		}
		if r.Spec.Lines != 4 && r.Spec.Lines != 5 {
			t.Fatalf("round %d: Lines = %d", i, r.Spec.Lines)
		}
		if !slices.Contains(tolerances, r.Spec.Tolerance) {
			t.Fatalf("round %d: tolerance %v is not standard", i, r.Spec.Tolerance)
		}
		if len(r.Bands) != r.Spec.Lines {
			t.Fatalf("round %d: %d bands for %d lines", i, len(r.Bands), r.Spec.Lines)
		}
		if r.Bands[0] == colorcode.Black {
			t.Fatalf("round %d: leading black band %v", i, r.Bands)
		}

		decoded, err := colorcode.Decode(r.Bands)
		if err != nil {
			t.Fatalf("round %d: Decode error: %v", i, err)
		}
		if diff := cmp.Diff(r.Spec, decoded); diff != "" {
			t.Fatalf("round %d: spec does not match its bands (-spec +decoded):\n%s", i, diff)
		}

		// The canonical answer is always accepted.
		res, err := r.Check(r.Spec.String())
		if err != nil {
			t.Fatalf("round %d: Check(%q) error: %v", i, r.Spec.String(), err)
		}
		if !res.Correct {
			t.Fatalf("round %d: canonical answer %q rejected for bands %v", i, r.Spec.String(), r.Bands)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(ModeAskValue, 99)
	b := NewGenerator(ModeAskValue, 99)

	for i := 0; i < 20; i++ {
		if diff := cmp.Diff(a.Next(), b.Next()); diff != "" {
			t.Fatalf("round %d differs (-a +b):\n%s", i, diff)
		}
	}
}

// recorder is a Presenter that logs every call.
type recorder struct {
	calls []string
}

func (r *recorder) ShowRound(w io.Writer, round Round) {
	r.calls = append(r.calls, fmt.Sprintf("round %d", round.Number))
}

func (r *recorder) ShowResult(w io.Writer, res Result) {
	r.calls = append(r.calls, fmt.Sprintf("result %v", res.Correct))
}

func (r *recorder) ShowError(w io.Writer, err error) {
	r.calls = append(r.calls, "error")
}

func TestRunnerRun(t *testing.T) {
	first := NewGenerator(ModeAskValue, 7).Next()
	input := "10*5\n" + first.Spec.String() + "\n\n1k+-3\n"

	rec := &recorder{}
	runner := &Runner{
		Generator: NewGenerator(ModeAskValue, 7),
		Rounds:    2,
		In:        strings.NewReader(input),
		Out:       io.Discard,
		Presenter: rec,
	}
	session := NewSession(ModeAskValue, 7)

	if err := runner.Run(context.Background(), session); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	wantCalls := []string{"round 1", "error", "result true", "round 2", "result false"}
	if diff := cmp.Diff(wantCalls, rec.calls); diff != "" {
		t.Errorf("presenter calls mismatch (-want +got):\n%s", diff)
	}

	correct, total := session.Score()
	if correct != 1 || total != 2 {
		t.Errorf("Score() = %d/%d, want 1/2", correct, total)
	}
}

func TestRunnerInputEnds(t *testing.T) {
	first := NewGenerator(ModeAskValue, 3).Next()

	runner := &Runner{
		Generator: NewGenerator(ModeAskValue, 3),
		Rounds:    5,
		In:        strings.NewReader(first.Spec.String() + "\n"),
		Out:       io.Discard,
		Presenter: &recorder{},
	}
	session := NewSession(ModeAskValue, 3)

	if err := runner.Run(context.Background(), session); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(session.Entries) != 1 {
		t.Errorf("recorded %d entries, want 1", len(session.Entries))
	}
}

func TestRunnerCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{
		Generator: NewGenerator(ModeAskValue, 1),
		In:        pr,
		Out:       io.Discard,
		Presenter: &recorder{},
	}

	err := runner.Run(ctx, NewSession(ModeAskValue, 1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestRunnerClosesInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	first := NewGenerator(ModeAskValue, 5).Next()
	go func() { _, _ = io.WriteString(pw, first.Spec.String()+"\n") }()

	runner := &Runner{
		Generator:  NewGenerator(ModeAskValue, 5),
		Rounds:     1,
		In:         pr,
		Out:        io.Discard,
		Presenter:  &recorder{},
		CloseInput: true,
	}

	if err := runner.Run(context.Background(), NewSession(ModeAskValue, 5)); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	// Nobody reads the pipe any more.
	if _, err := io.WriteString(pw, "4k7\n"); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("write after Run error = %v, want io.ErrClosedPipe", err)
	}
}

func TestSessionTranscript(t *testing.T) {
	session := NewSession(ModeAskValue, 11)
	res, err := fourK7.Check("4k7")
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	session.Record(fourK7, res)

	tr := session.Transcript()
	if tr.Mode != "ask" || tr.Seed != 11 {
		t.Errorf("transcript header = %q/%d, want ask/11", tr.Mode, tr.Seed)
	}
	if len(tr.Entries) != 1 {
		t.Fatalf("transcript has %d entries, want 1", len(tr.Entries))
	}

	e := tr.Entries[0]
	if e.Round != 1 || e.Prompt != "yellow violet red gold" || e.Answer != "4k7" || !e.Correct {
		t.Errorf("unexpected entry: %+v", e)
	}
	if diff := cmp.Diff(fourK7.Spec, e.Required); diff != "" {
		t.Errorf("Required mismatch (-want +got):\n%s", diff)
	}
}
