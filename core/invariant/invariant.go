// Package invariant provides contract assertions for rescode.
//
// Assertions guard programming errors, not user errors: a malformed value
// typed by a user is reported through the parser's ParseError, while a
// cursor advanced past its input or an encoder that emits the wrong number
// of bands is a bug and panics here.
package invariant

import (
	"fmt"
	"math"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func (c *Cursor) Next() rune {
//	    invariant.Precondition(c.pos < len(c.input), "cursor advanced past end of input")
//	    // ... work ...
//	}
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
// Panics with POSTCONDITION VIOLATION if condition is false.
func Postcondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks internal consistency during function execution.
// Panics with INVARIANT VIOLATION if condition is false.
//
// Example:
//
//	prev := c.Pos()
//	for !c.EOF() {
//	    // ... consume ...
//	    invariant.Invariant(c.Pos() > prev, "cursor must advance")
//	    prev = c.Pos()
//	}
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// InRange panics if value is outside [min, max].
func InRange(value, minVal, maxVal int, name string) {
	if value < minVal || value > maxVal {
		fail("PRECONDITION", "%s must be in range [%d, %d], got %d",
			name, minVal, maxVal, value)
	}
}

// NonNegative panics if count is negative.
func NonNegative(count int, name string) {
	if count < 0 {
		fail("PRECONDITION", "%s must not be negative, got %d", name, count)
	}
}

// Finite panics if value is NaN or infinite.
func Finite(value float64, name string) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		fail("PRECONDITION", "%s must be finite, got %v", name, value)
	}
}

// fail panics with a formatted message including call stack context.
func fail(kind, format string, args ...interface{}) {
	// Skip runtime.Callers, fail and the exported wrapper
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)

	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
