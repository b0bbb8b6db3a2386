// Package lexer provides the forward-only character cursor the value
// parser reads from.
package lexer

import (
	"github.com/aledsdavies/rescode/core/invariant"
)

// Cursor is a forward-only, lookahead-capable view over an immutable input.
//
// Peeks never fail: a range past the end of input yields "", which callers
// treat as end of input. Advancing is only legal while input remains.
type Cursor struct {
	input []rune
	pos   int
}

// NewCursor wraps input. The position starts at 0.
func NewCursor(input string) *Cursor {
	return &Cursor{input: []rune(input)}
}

// Peek returns the next unread character, or "" at end of input.
func (c *Cursor) Peek() string {
	return c.PeekRange(0, 1)
}

// PeekRange returns the input between pos+start and pos+end without
// advancing. The range is clipped to the input; an empty or out-of-range
// request returns "".
func (c *Cursor) PeekRange(start, end int) string {
	invariant.NonNegative(start, "peek start")
	s := c.pos + start
	e := c.pos + end
	if e > len(c.input) {
		e = len(c.input)
	}
	if s >= e {
		return ""
	}
	return string(c.input[s:e])
}

// PeekRune returns the next unread character without advancing.
// ok is false at end of input.
func (c *Cursor) PeekRune() (r rune, ok bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

// Next consumes and returns one character. Calling Next at end of input is
// a programming error: callers peek first.
func (c *Cursor) Next() rune {
	invariant.Precondition(c.pos < len(c.input), "cursor advanced past end of input (pos=%d)", c.pos)
	r := c.input[c.pos]
	c.pos++
	return r
}

// Skip advances n characters without returning them.
func (c *Cursor) Skip(n int) {
	invariant.NonNegative(n, "skip count")
	invariant.Precondition(c.pos+n <= len(c.input), "cursor skipped past end of input (pos=%d, n=%d)", c.pos, n)
	c.pos += n
}

// Pos returns the number of characters consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Column returns the 1-based column of the next unread character.
func (c *Cursor) Column() int {
	return c.pos + 1
}

// EOF reports whether all input has been consumed.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.input)
}

// Rest returns the unread input.
func (c *Cursor) Rest() string {
	return string(c.input[c.pos:])
}

// Input returns the complete input.
func (c *Cursor) Input() string {
	return string(c.input)
}

// Len returns the input length in characters.
func (c *Cursor) Len() int {
	return len(c.input)
}
