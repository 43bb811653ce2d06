package onlyargs

import (
	"os"
	"unicode/utf8"
)

// RawArg is a single OS-level argument, exactly as delivered by the
// operating system. Go strings are lossless byte containers, so a RawArg may
// hold data that is not valid UTF-8; converters decide whether that matters.
type RawArg string

// IsText reports whether the argument is valid UTF-8.
func (a RawArg) IsText() bool {
	return utf8.ValidString(string(a))
}

// Capture snapshots the process argument list, excluding the program name.
func Capture() []RawArg {
	args := make([]RawArg, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		args = append(args, RawArg(arg))
	}
	return args
}

// Cursor is a forward-only consumer over a raw argument list. It assigns no
// meaning to any token; the caller's matching logic decides what a token is
// from its position relative to already-consumed tokens. There is no rewind:
// once consumed, a token cannot be re-examined.
//
// A Cursor is owned by a single parsing pass and is not safe for concurrent
// use.
type Cursor struct {
	args []RawArg
	pos  int
}

// NewCursor returns a cursor positioned at the first element of args.
func NewCursor(args []RawArg) *Cursor {
	return &Cursor{args: args}
}

// Peek returns the next unconsumed element as text without advancing the
// cursor. It returns ok=false when the list is exhausted, and also when the
// next element is not valid UTF-8; Peek is meant for matching flag and
// option names, which are always text. Use Len to tell the two cases apart.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.args) {
		return "", false
	}
	arg := c.args[c.pos]
	if !arg.IsText() {
		return "", false
	}
	return string(arg), true
}

// NextValue advances the cursor by one and returns the raw element at that
// position. The name is used only for error attribution. It fails with a
// MissingArgumentError when the list is exhausted, without moving the cursor
// past the end.
func (c *Cursor) NextValue(name string) (RawArg, error) {
	if c.pos >= len(c.args) {
		return "", &MissingArgumentError{Name: name, Value: true}
	}
	arg := c.args[c.pos]
	c.pos++
	return arg, nil
}

// AdvanceFlag advances the cursor by one without inspecting the value. It is
// used after a flag name has been matched via Peek, to consume the flag
// token itself.
func (c *Cursor) AdvanceFlag() {
	if c.pos < len(c.args) {
		c.pos++
	}
}

// Len returns the number of unconsumed elements.
func (c *Cursor) Len() int {
	return len(c.args) - c.pos
}
