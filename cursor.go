package unescape

import "unicode/utf8"

// Cursor tracks a position within the input text being decoded.
//
// The scanner hands its cursor to a Handler for the duration of one
// escape resolution. The cursor's position is the single source of
// truth for consumption: every character the handler advances past is
// permanently skipped by the scan. Positions only move forward and
// always land on UTF-8 boundaries.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	input string
	pos   int
}

// NewCursor returns a cursor positioned at the start of s. It is
// mainly useful for exercising a Handler outside of a decode.
func NewCursor(s string) *Cursor {
	return &Cursor{input: s}
}

// Pos reports the byte offset of the next character to be read.
func (c *Cursor) Pos() int {
	return c.pos
}

// Next consumes and returns the next character. It reports false when
// the input is exhausted.
func (c *Cursor) Next() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, true
}

// Rest returns the unconsumed remainder of the input. The returned
// slice shares the input's backing data; reading it does not advance
// the cursor.
func (c *Cursor) Rest() string {
	return c.input[c.pos:]
}
