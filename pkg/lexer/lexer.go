// Package lexer turns the source text of the C-like input language into a
// list of located tokens.
//
// Lexing stops at the first error; a failed call never returns tokens.
package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"minicc/pkg/source"
)

// Option configures a Lexer.
type Option func(*Lexer)

// WithKeywordBoundary makes a keyword match only when it is not directly
// followed by another identifier character, so "integer" lexes as one
// identifier instead of INT followed by Identifier("eger").
// Quote characters do not end an identifier, so "char'a'" is a single
// identifier under this option.
func WithKeywordBoundary() Option {
	return func(l *Lexer) { l.keywordBoundary = true }
}

// Lexer holds all mutable state for a single scanning pass over a source.
type Lexer struct {
	cs              *source.Cursor
	keywordBoundary bool
}

// New returns a lexer positioned at the start of src.
func New(src string, opts ...Option) *Lexer {
	l := &Lexer{cs: source.NewCursor(src)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lex tokenises src. See (*Lexer).Lex.
func Lex(src string, opts ...Option) ([]Token, error) {
	return New(src, opts...).Lex()
}

// Lex consumes the remaining input and returns its tokens in order. The
// error is a *Error or a *NumberError; on error the token slice is nil.
func (l *Lexer) Lex() ([]Token, error) {
	var tokens []Token
	for {
		c, ok := l.cs.Peek()
		if !ok {
			return tokens, nil
		}

		var tok Token
		var err error
		switch {
		case isASCIISpace(c.Value):
			l.cs.Next()
			continue
		case c.Value == '\'':
			tok, err = l.scanChar()
		case c.Value == '"':
			tok, err = l.scanString()
		case c.Value >= '0' && c.Value <= '9':
			tok, err = l.scanNumber()
		case isPunct(c.Value):
			tok = l.scanPunct()
		default:
			tok, err = l.scanKeywordOrIdent()
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// expect consumes the next character and fails unless it is want.
func (l *Lexer) expect(want rune) error {
	c, ok := l.cs.Next()
	if !ok {
		return endOfInput(l.cs.Pos())
	}
	if c.Value != want {
		return unexpected(c)
	}
	return nil
}

// scanNumber reads a hex (0x/0X), octal (leading 0) or decimal literal.
// The first digit must still be at Peek.
func (l *Lexer) scanNumber() (Token, error) {
	pos := l.cs.Pos()
	first, _ := l.cs.Peek()

	var (
		prefix source.Fragment
		digits source.Fragment
		base   int
	)
	if first.Value == '0' {
		var hex bool
		if prefix, hex = l.cs.Match("0x"); !hex {
			prefix, hex = l.cs.Match("0X")
		}
		if hex {
			base = 16
			digits = l.cs.TakeWhile(isHexDigit)
		} else {
			base = 8
			digits = l.cs.TakeWhile(isOctalDigit)
		}
	} else {
		base = 10
		digits = l.cs.TakeWhile(isDecimalDigit)
	}

	n, err := strconv.ParseUint(digits.Value, base, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return Token{}, &NumberError{
			Literal: prefix.Value + digits.Value,
			Base:    base,
			Pos:     pos,
			Err:     err,
		}
	}
	return source.At(Number(n), pos), nil
}

// scanChar reads a one-character literal 'c'. No escapes are interpreted.
func (l *Lexer) scanChar() (Token, error) {
	pos := l.cs.Pos()
	if err := l.expect('\''); err != nil {
		return Token{}, err
	}

	c, ok := l.cs.Next()
	if !ok {
		return Token{}, endOfInput(l.cs.Pos())
	}
	if c.Value == '\'' {
		return Token{}, unexpected(c)
	}

	if err := l.expect('\''); err != nil {
		return Token{}, err
	}
	return source.At(CharLiteral(c.Value), pos), nil
}

// scanString reads a string literal "...". The body runs to the next '"',
// newlines included; no escapes are interpreted.
func (l *Lexer) scanString() (Token, error) {
	pos := l.cs.Pos()
	if err := l.expect('"'); err != nil {
		return Token{}, err
	}
	body := l.cs.TakeWhile(func(r rune) bool { return r != '"' })
	if err := l.expect('"'); err != nil {
		return Token{}, err
	}
	return source.At(StringLiteral(body.Value), pos), nil
}

// scanPunct reads a punctuation character, folding a following '=' into a
// COMPOUND_PUNCT when the character allows it.
func (l *Lexer) scanPunct() Token {
	p, _ := l.cs.Next()
	if isCompoundCandidate(p.Value) {
		if _, ok := l.cs.Match("="); ok {
			return source.At(CompoundPunct(p.Value), p.Pos)
		}
	}
	return source.At(Punct(p.Value), p.Pos)
}

// scanKeywordOrIdent tries each keyword in order, then falls back to an
// identifier running up to the next whitespace or punctuation character.
func (l *Lexer) scanKeywordOrIdent() (Token, error) {
	pos := l.cs.Pos()

	for _, kw := range keywords {
		if l.matchKeyword(kw.text) {
			return source.At(Keyword(kw.typ), pos), nil
		}
	}

	c, ok := l.cs.Peek()
	if !ok {
		return Token{}, endOfInput(pos)
	}
	id := l.cs.TakeWhile(isIdentChar)
	if id.Value == "" {
		// non-ASCII whitespace such as U+00A0 ends identifiers but is not
		// skipped between tokens
		return Token{}, unexpected(c)
	}
	return source.At(Identifier(id.Value), pos), nil
}

// matchKeyword consumes kw if the input starts with it. Without the
// keyword-boundary option this is a plain prefix match.
func (l *Lexer) matchKeyword(kw string) bool {
	rest := l.cs.Rest()
	if !strings.HasPrefix(rest, kw) {
		return false
	}
	if l.keywordBoundary && len(rest) > len(kw) {
		if r, _ := utf8.DecodeRuneInString(rest[len(kw):]); isIdentChar(r) {
			return false
		}
	}
	_, ok := l.cs.Match(kw)
	return ok
}

func isIdentChar(r rune) bool {
	return !unicode.IsSpace(r) && !isPunct(r)
}

func isDecimalDigit(r rune) bool { return r >= '0' && r <= '9' }

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

func isHexDigit(r rune) bool {
	return isDecimalDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
