// Package quiz generates practice rounds and checks answers against them.
package quiz

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/core/invariant"
	"github.com/aledsdavies/rescode/core/units"
	"github.com/aledsdavies/rescode/runtime/parser"
)

// Round is one question: the required spec and its bands.
type Round struct {
	Number int
	Mode   Mode
	Spec   colorcode.Spec
	Bands  []colorcode.Color // physical order
}

// Prompt returns the text shown to the player: the band names in
// ModeAskValue, the value in ModeGenerateColors.
func (r Round) Prompt() string {
	if r.Mode == ModeGenerateColors {
		return fmt.Sprintf("%s (%d bands)", r.Spec, r.Spec.Lines)
	}
	names := make([]string, len(r.Bands))
	for i, c := range r.Bands {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}

// Result is the outcome of checking one answer.
type Result struct {
	Answer        string
	Correct       bool
	Entered       colorcode.Spec
	Required      colorcode.Spec
	EnteredBands  []colorcode.Color // nil when the answer has no color code
	RequiredBands []colorcode.Color
}

// Check compares an answer with the round. A malformed answer (ParseError
// or an unknown color name) is returned as an error and the round stays
// open; an answer that parses but has no standard color code is wrong.
func (r Round) Check(answer string) (Result, error) {
	if r.Mode == ModeGenerateColors {
		return r.checkColors(answer)
	}
	return r.checkValue(answer)
}

// checkValue parses a typed value, displays it with the required number
// of bands and compares the bands.
func (r Round) checkValue(answer string) (Result, error) {
	entered, err := parser.Parse(strings.TrimSpace(answer))
	if err != nil {
		return Result{}, err
	}
	entered = entered.WithLines(r.Spec.Lines)

	res := Result{
		Answer:        answer,
		Entered:       entered,
		Required:      r.Spec,
		RequiredBands: r.Bands,
	}

	bands, err := colorcode.Bands(entered)
	if err != nil {
		if !colorcode.IsEncodingError(err) {
			return Result{}, err
		}
		return res, nil
	}
	res.EnteredBands = bands
	res.Correct = slices.Equal(bands, r.Bands)
	return res, nil
}

// checkColors resolves typed color names and compares them band by band.
func (r Round) checkColors(answer string) (Result, error) {
	names := strings.FieldsFunc(answer, func(c rune) bool {
		return c == ' ' || c == ',' || c == '\t'
	})
	colors, err := colorcode.ParseColors(names)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Answer:        answer,
		Required:      r.Spec,
		EnteredBands:  colors,
		RequiredBands: r.Bands,
		Correct:       slices.Equal(colors, r.Bands),
	}
	if entered, err := colorcode.Decode(colors); err == nil {
		res.Entered = entered
	}
	return res, nil
}

// Generator draws random encodable rounds.
type Generator struct {
	rng   *rand.Rand
	mode  Mode
	count int
}

// NewGenerator returns a generator for mode. Equal seeds yield equal
// round sequences.
func NewGenerator(mode Mode, seed int64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		mode: mode,
	}
}

// Next draws a value of 1 to 999 times 10^0 to 10^5, one of the standard
// tolerances and 4 or 5 bands. The stored resistance is the value the
// bands actually show, so three typed digits shown with two digit bands
// read back as the rounded-down value.
func (g *Generator) Next() Round {
	digits := uint64(g.rng.Intn(999) + 1)
	exp := g.rng.Intn(6)
	tolerances := colorcode.Tolerances()

	spec := colorcode.Spec{
		Resistance: units.Scale(digits, 0, exp),
		Tolerance:  tolerances[g.rng.Intn(len(tolerances))],
		Lines:      colorcode.MinLines + g.rng.Intn(2),
	}

	bands, err := colorcode.Bands(spec)
	invariant.Postcondition(err == nil, "generated spec %+v has no color code: %v", spec, err)

	shown, err := colorcode.Decode(bands)
	invariant.Postcondition(err == nil, "generated bands %v do not decode: %v", bands, err)

	g.count++
	return Round{
		Number: g.count,
		Mode:   g.mode,
		Spec:   shown,
		Bands:  bands,
	}
}

// String describes a result for the player.
func (res Result) String() string {
	if res.Correct {
		return "correct"
	}
	return fmt.Sprintf("incorrect\nEntered: %s\nRequired: %s", res.Entered, res.Required)
}
