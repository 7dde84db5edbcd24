package source

import (
	"strings"
	"unicode/utf8"
)

// Cursor holds the unread remainder of a source string and the position of
// its first character.
type Cursor struct {
	rest string
	pos  Position
}

// NewCursor returns a cursor at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{rest: src, pos: Start}
}

// Pos returns the position of the next unread character.
func (c *Cursor) Pos() Position { return c.pos }

// Rest returns the unread input.
func (c *Cursor) Rest() string { return c.rest }

// Done reports whether all input has been consumed.
func (c *Cursor) Done() bool { return len(c.rest) == 0 }

// Peek returns the next character without consuming it.
func (c *Cursor) Peek() (CodePoint, bool) {
	if c.Done() {
		return CodePoint{}, false
	}
	r, _ := utf8.DecodeRuneInString(c.rest)
	return At(r, c.pos), true
}

// Next consumes one character.
func (c *Cursor) Next() (CodePoint, bool) {
	if c.Done() {
		return CodePoint{}, false
	}
	r, size := utf8.DecodeRuneInString(c.rest)
	cp := At(r, c.pos)
	c.consume(size)
	return cp, true
}

// PeekN returns the next n bytes without consuming them. It fails if fewer
// than n bytes remain or if n would cut a multi-byte character in half.
func (c *Cursor) PeekN(n int) (Fragment, bool) {
	if !c.fits(n) {
		return Fragment{}, false
	}
	return At(c.rest[:n], c.pos), true
}

// TakeN consumes the next n bytes under the same conditions as PeekN.
func (c *Cursor) TakeN(n int) (Fragment, bool) {
	if !c.fits(n) {
		return Fragment{}, false
	}
	f := At(c.rest[:n], c.pos)
	c.consume(n)
	return f, true
}

// Match consumes text if the input starts with it. Nothing is consumed on a
// mismatch.
func (c *Cursor) Match(text string) (Fragment, bool) {
	if !strings.HasPrefix(c.rest, text) {
		return Fragment{}, false
	}
	return c.TakeN(len(text))
}

// TakeWhile consumes the longest prefix whose characters all satisfy pred.
// The result may be empty.
func (c *Cursor) TakeWhile(pred func(rune) bool) Fragment {
	n := 0
	for n < len(c.rest) {
		r, size := utf8.DecodeRuneInString(c.rest[n:])
		if !pred(r) {
			break
		}
		n += size
	}
	f := At(c.rest[:n], c.pos)
	c.consume(n)
	return f
}

// fits reports whether the next n bytes end on a character boundary, where
// an invalid byte counts as a character of its own.
func (c *Cursor) fits(n int) bool {
	if n < 0 || n > len(c.rest) {
		return false
	}
	i := 0
	for i < n {
		_, size := utf8.DecodeRuneInString(c.rest[i:])
		i += size
	}
	return i == n
}

func (c *Cursor) consume(n int) {
	c.pos = c.pos.advance(c.rest[:n])
	c.rest = c.rest[n:]
}
