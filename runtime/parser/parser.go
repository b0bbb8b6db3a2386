// Package parser reads typed resistance values such as "4k7", "330" or
// "2.2M+-5" into a colorcode.Spec.
//
// The grammar is a three-phase stream over a lexer.Cursor:
//
//	value     = integer [ ( "." | "," ) fraction [ unit ] | unit fraction ]
//	tolerance = sign [ sign ] integer [ ( "." | "," ) fraction ]
//
// A unit letter directly after the integer part doubles as the decimal
// point ("4k7" is 4.7k). Every digit typed counts as significant, leading
// zeros included, so "0.47" needs five bands. Magnitude parsing never
// fails: the first character it cannot use starts the tolerance section.
package parser

import (
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/core/invariant"
	"github.com/aledsdavies/rescode/core/units"
	"github.com/aledsdavies/rescode/runtime/lexer"
)

// maxMantissa is the largest accumulator that can take another digit
// without overflowing.
const maxMantissa = (math.MaxUint64 - 9) / 10

// Parser parses one input string.
type Parser struct {
	text        string
	cursor      *lexer.Cursor
	config      *ParserConfig
	logger      *slog.Logger
	telemetry   *ParseTelemetry
	debugEvents []DebugEvent
}

// New creates a parser for text.
func New(text string, opts ...ParserOpt) *Parser {
	config := &ParserConfig{}
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = defaultLogger()
	}

	return &Parser{
		text:   text,
		config: config,
		logger: logger,
	}
}

// Parse parses text into a Spec. The line count is
// max(significant digits + 2, 4); a missing tolerance defaults to 5%.
func Parse(text string, opts ...ParserOpt) (colorcode.Spec, error) {
	return New(text, opts...).Parse()
}

// Parse runs the parser from the start of its input. Debug events and
// telemetry reflect the most recent call.
func (p *Parser) Parse() (colorcode.Spec, error) {
	p.cursor = lexer.NewCursor(p.text)
	p.telemetry = nil
	p.debugEvents = nil

	var start time.Time
	if p.config.telemetry >= TelemetryBasic {
		p.telemetry = &ParseTelemetry{}
		if p.config.telemetry >= TelemetryTiming {
			start = time.Now()
		}
	}
	if p.config.debug > DebugOff {
		p.debugEvents = make([]DebugEvent, 0, 16)
	}

	resistance, digits := p.parseValue()
	tolerance, err := p.parseTolerance()

	if p.telemetry != nil {
		p.telemetry.CharCount = p.cursor.Pos()
		if p.config.telemetry >= TelemetryTiming {
			p.telemetry.TotalTime = time.Since(start)
		}
	}

	if err != nil {
		if p.telemetry != nil {
			p.telemetry.ErrorCount++
		}
		p.logger.Debug("parse failed", "input", p.text, "error", err)
		return colorcode.Spec{}, err
	}

	spec := colorcode.Spec{
		Resistance: resistance,
		Tolerance:  tolerance,
		Lines:      max(digits+2, colorcode.MinLines),
	}
	p.logger.Debug("parsed value",
		"input", p.text,
		"resistance", spec.Resistance,
		"tolerance", spec.Tolerance,
		"lines", spec.Lines)
	return spec, nil
}

// DebugEvents returns the events recorded by the last Parse call.
func (p *Parser) DebugEvents() []DebugEvent {
	return p.debugEvents
}

// Telemetry returns the metrics of the last Parse call, nil when disabled.
func (p *Parser) Telemetry() *ParseTelemetry {
	return p.telemetry
}

// parseValue accumulates the integer part (phase 1) and hands over to
// parseFraction on a separator or a unit letter.
func (p *Parser) parseValue() (float64, int) {
	p.enter("integer")

	var d decimal
	for {
		start := p.cursor.Pos()
		r, ok := p.cursor.PeekRune()
		switch {
		case !ok:
			p.exit("integer", "eof")
			return d.value(0), d.digits
		case lexer.IsDigit(r):
			p.cursor.Skip(1)
			d.addInteger(lexer.DigitValue(r))
			p.digit(r)
		case lexer.IsSeparator(r):
			p.cursor.Skip(1)
			p.trace("separator", string(r))
			p.exit("integer", "separator")
			return p.parseFraction(&d, 0, true)
		default:
			if exp, isUnit := units.Lookup(r); isUnit {
				p.cursor.Skip(1)
				p.trace("unit_suffix", string(r))
				p.exit("integer", "rkm")
				return p.parseFraction(&d, exp, false)
			}
			p.exit("integer", "stop")
			return d.value(0), d.digits
		}
		p.advanced(start, "integer")
	}
}

// parseFraction accumulates digits after the decimal point (phase 2).
// exp is the unit already read when the point was a unit letter; a
// trailing unit is only accepted after a real separator.
func (p *Parser) parseFraction(d *decimal, exp int, suffixAllowed bool) (float64, int) {
	p.enter("fraction")

	for {
		start := p.cursor.Pos()
		r, ok := p.cursor.PeekRune()
		switch {
		case !ok:
			p.exit("fraction", "eof")
			return d.value(exp), d.digits
		case lexer.IsDigit(r):
			p.cursor.Skip(1)
			d.addFraction(lexer.DigitValue(r))
			p.digit(r)
		default:
			if unitExp, isUnit := units.Lookup(r); isUnit && suffixAllowed {
				p.cursor.Skip(1)
				p.trace("unit_suffix", string(r))
				p.exit("fraction", "unit")
				return d.value(unitExp), d.digits
			}
			p.exit("fraction", "stop")
			return d.value(exp), d.digits
		}
		p.advanced(start, "fraction")
	}
}

// parseTolerance reads the optional tolerance section (phase 3). The sign
// never negates: tolerance is always a positive percentage.
func (p *Parser) parseTolerance() (float64, error) {
	p.enter("tolerance")

	r, ok := p.cursor.PeekRune()
	if !ok {
		p.exit("tolerance", "default")
		return colorcode.DefaultTolerance, nil
	}
	if !lexer.IsSign(r) {
		return 0, p.missingSign(r)
	}
	p.cursor.Skip(1)
	p.trace("sign", string(r))
	if next, ok := p.cursor.PeekRune(); ok && pairedSign(r, next) {
		p.cursor.Skip(1)
		p.trace("sign", string(next))
	}

	var d decimal
	for {
		start := p.cursor.Pos()
		r, ok := p.cursor.PeekRune()
		if !ok {
			p.exit("tolerance", "eof")
			return d.value(0), nil
		}
		if lexer.IsSeparator(r) {
			p.cursor.Skip(1)
			p.trace("separator", string(r))
			break
		}
		if !lexer.IsDigit(r) {
			return 0, p.badTolerance(r)
		}
		p.cursor.Skip(1)
		d.addInteger(lexer.DigitValue(r))
		p.digit(r)
		p.advanced(start, "tolerance")
	}

	for {
		start := p.cursor.Pos()
		r, ok := p.cursor.PeekRune()
		if !ok {
			p.exit("tolerance", "eof")
			return d.value(0), nil
		}
		if !lexer.IsDigit(r) {
			return 0, p.badTolerance(r)
		}
		p.cursor.Skip(1)
		d.addFraction(lexer.DigitValue(r))
		p.digit(r)
		p.advanced(start, "tolerance")
	}
}

// pairedSign reports whether next completes a two-character symmetric
// sign: "+-" or "-+".
func pairedSign(first, next rune) bool {
	return (first == '+' && next == '-') || (first == '-' && next == '+')
}

func (p *Parser) missingSign(r rune) error {
	pos := p.cursor.Pos()
	p.exit("tolerance", "missing_sign")

	suggestion := "write the tolerance after a sign: +-5"
	if unicode.IsLetter(r) {
		suggestion = "a value takes at most one unit suffix (" + strings.Join(strings.Split(units.Suffixes(), ""), " ") + "); " + suggestion
	}
	return ParseError{
		Kind:       ErrMissingSign,
		Position:   pos,
		Message:    "tolerance must start with a sign",
		Context:    "tolerance",
		Got:        string(r),
		Suggestion: suggestion,
		Example:    string([]rune(p.text)[:pos]) + "+-5",
		Input:      p.text,
	}
}

func (p *Parser) badTolerance(r rune) error {
	p.exit("tolerance", "bad_character")
	return ParseError{
		Kind:       ErrBadTolerance,
		Position:   p.cursor.Pos(),
		Message:    "incorrect tolerance",
		Context:    "tolerance",
		Got:        string(r),
		Suggestion: "tolerance is a percentage made of digits and at most one decimal point",
		Example:    "1k+-0.25",
		Input:      p.text,
	}
}

// decimal accumulates typed digits exactly: the value is
// mantissa × 10^(overflow − scale), converted to float64 once.
type decimal struct {
	mantissa uint64
	scale    int // digits kept after the decimal point
	overflow int // integer digits dropped once the mantissa is full
	digits   int // significant digits: every digit typed, leading zeros included
}

func (d *decimal) addInteger(digit int) {
	d.digits++
	if d.mantissa > maxMantissa {
		d.overflow++
		return
	}
	d.mantissa = d.mantissa*10 + uint64(digit)
}

func (d *decimal) addFraction(digit int) {
	d.digits++
	if d.mantissa > maxMantissa {
		return
	}
	d.mantissa = d.mantissa*10 + uint64(digit)
	d.scale++
}

// value returns the accumulated number scaled by a unit exponent.
func (d *decimal) value(exp int) float64 {
	return units.Scale(d.mantissa, d.scale, exp+d.overflow)
}

// advanced checks that a loop iteration of phase consumed input.
func (p *Parser) advanced(start int, phase string) {
	invariant.Invariant(p.cursor.Pos() > start, "%s phase did not advance at position %d", phase, start)
}

// enter records a phase start
func (p *Parser) enter(phase string) {
	if p.telemetry != nil {
		p.telemetry.PhaseCount++
	}
	p.recordDebugEvent("enter_"+phase, "")
}

// exit records a phase end and why it ended
func (p *Parser) exit(phase, reason string) {
	p.recordDebugEvent("exit_"+phase, reason)
}

// digit counts an accumulated digit
func (p *Parser) digit(r rune) {
	if p.telemetry != nil {
		p.telemetry.DigitCount++
	}
	p.trace("digit", string(r))
}

// trace records a per-character event at DebugDetailed
func (p *Parser) trace(event, context string) {
	if p.config.debug < DebugDetailed {
		return
	}
	p.recordDebugEvent(event, context)
}

// recordDebugEvent records debug events (only when debug enabled)
func (p *Parser) recordDebugEvent(event, context string) {
	if p.config.debug == DebugOff || p.debugEvents == nil {
		return
	}

	p.debugEvents = append(p.debugEvents, DebugEvent{
		Timestamp: time.Now(),
		Event:     event,
		Pos:       p.cursor.Pos(),
		Context:   context,
	})
}
