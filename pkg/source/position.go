// Package source tracks line/column positions over UTF-8 source text and
// provides the character cursor the lexer reads through.
package source

import "fmt"

// Position is a 1-based line/column location in the source.
type Position struct {
	Line   int
	Column int
}

// Start is the position of the first character of any source.
var Start = Position{Line: 1, Column: 1}

func (p Position) String() string {
	return fmt.Sprintf("ln %d, col %d", p.Line, p.Column)
}

// Compare orders positions by line, then column. It returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	switch {
	case p.Line < q.Line:
		return -1
	case p.Line > q.Line:
		return 1
	case p.Column < q.Column:
		return -1
	case p.Column > q.Column:
		return 1
	}
	return 0
}

// advance moves p over text: '\n' starts a new line, every other character
// (not byte) moves one column right.
func (p Position) advance(text string) Position {
	for _, r := range text {
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	return p
}

// Located pairs a value with the position where it begins.
type Located[T any] struct {
	Value T
	Pos   Position
}

// At wraps v with position pos.
func At[T any](v T, pos Position) Located[T] {
	return Located[T]{Value: v, Pos: pos}
}

func (l Located[T]) String() string {
	return fmt.Sprintf("%s: %v", l.Pos, l.Value)
}

// CodePoint is a single character and its position.
type CodePoint = Located[rune]

// Fragment is a substring of the source and the position of its first
// character. The string shares memory with the source it was cut from.
type Fragment = Located[string]
