package lexer

import (
	"fmt"

	"minicc/pkg/source"
)

// ErrorKind classifies a lexical error.
type ErrorKind int

const (
	// UnexpectedCharacter: a character the grammar does not allow at this point.
	UnexpectedCharacter ErrorKind = iota
	// EndOfInput: the input ended inside a construct that needs more text.
	EndOfInput
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case EndOfInput:
		return "EndOfInput"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a lexical error at the position where it was detected.
// Char is set for UnexpectedCharacter only.
type Error struct {
	Kind ErrorKind
	Char rune
	Pos  source.Position
}

func unexpected(cp source.CodePoint) *Error {
	return &Error{Kind: UnexpectedCharacter, Char: cp.Value, Pos: cp.Pos}
}

func endOfInput(pos source.Position) *Error {
	return &Error{Kind: EndOfInput, Pos: pos}
}

func (e *Error) Error() string {
	if e.Kind == UnexpectedCharacter {
		return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Char)
	}
	return fmt.Sprintf("%s: unexpected end of input", e.Pos)
}

// NumberError reports a numeral that does not fit in 64 unsigned bits, or a
// 0x prefix with no hex digits after it. Err is the strconv cause
// (strconv.ErrRange or strconv.ErrSyntax).
type NumberError struct {
	Literal string // the full numeral, prefix included
	Base    int
	Pos     source.Position
	Err     error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s: invalid base-%d number %q: %v", e.Pos, e.Base, e.Literal, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }
