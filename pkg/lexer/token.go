package lexer

import (
	"fmt"
	"strconv"

	"minicc/pkg/source"
)

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	// Literals
	NUMBER         TokenType = iota // unsigned integer literal, any base
	STRING_LITERAL                  // "..."
	CHAR_LITERAL                    // 'c'
	IDENTIFIER                      // variable / function name

	// Punctuation
	PUNCT          // one of ! % & ( ) * + , - / ; < = > @ [ ] { | }
	COMPOUND_PUNCT // != %= &= *= += -= /= <= == >= |=

	// Keywords
	INT    // "int"
	CHAR   // "char"
	VOID   // "void"
	IF     // "if"
	ELSE   // "else"
	FOR    // "for"
	WHILE  // "while"
	RETURN // "return"
	SIZEOF // "sizeof"
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	NUMBER:         "Number",
	STRING_LITERAL: "StringLiteral",
	CHAR_LITERAL:   "CharLiteral",
	IDENTIFIER:     "Identifier",
	PUNCT:          "Punct",
	COMPOUND_PUNCT: "CompoundPunct",
	INT:            "Int",
	CHAR:           "Char",
	VOID:           "Void",
	IF:             "If",
	ELSE:           "Else",
	FOR:            "For",
	WHILE:          "While",
	RETURN:         "Return",
	SIZEOF:         "Sizeof",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsKeyword reports whether tt is one of the reserved words.
func (tt TokenType) IsKeyword() bool {
	return tt >= INT && tt <= SIZEOF
}

// keywords lists the reserved words in the order the lexer tries them.
// The order matters while keyword matching is a plain prefix match.
var keywords = []struct {
	text string
	typ  TokenType
}{
	{"return", RETURN},
	{"if", IF},
	{"else", ELSE},
	{"while", WHILE},
	{"for", FOR},
	{"void", VOID},
	{"int", INT},
	{"char", CHAR},
	{"sizeof", SIZEOF},
}

// Value is the classified content of a token. Only the field matching Type
// is meaningful: Num for NUMBER, Text for STRING_LITERAL and IDENTIFIER,
// Char for CHAR_LITERAL, PUNCT and COMPOUND_PUNCT (the character before '=').
type Value struct {
	Type TokenType
	Num  uint64
	Text string
	Char rune
}

// Token is a Value tagged with the position of its first character.
type Token = source.Located[Value]

// Number returns a NUMBER value.
func Number(n uint64) Value { return Value{Type: NUMBER, Num: n} }

// StringLiteral returns a STRING_LITERAL value with body s.
func StringLiteral(s string) Value { return Value{Type: STRING_LITERAL, Text: s} }

// CharLiteral returns a CHAR_LITERAL value.
func CharLiteral(c rune) Value { return Value{Type: CHAR_LITERAL, Char: c} }

// Identifier returns an IDENTIFIER value.
func Identifier(s string) Value { return Value{Type: IDENTIFIER, Text: s} }

// Punct returns a single-character PUNCT value.
func Punct(c rune) Value { return Value{Type: PUNCT, Char: c} }

// CompoundPunct returns the COMPOUND_PUNCT value for c followed by '='.
func CompoundPunct(c rune) Value { return Value{Type: COMPOUND_PUNCT, Char: c} }

// Keyword returns the value for keyword type tt.
func Keyword(tt TokenType) Value { return Value{Type: tt} }

// String renders the value the way the token listing prints it, e.g.
// Number(42), Identifier("x"), CompoundPunct('<') or Int.
func (v Value) String() string {
	switch v.Type {
	case NUMBER:
		return fmt.Sprintf("%s(%d)", v.Type, v.Num)
	case STRING_LITERAL, IDENTIFIER:
		return fmt.Sprintf("%s(%q)", v.Type, v.Text)
	case CHAR_LITERAL, PUNCT, COMPOUND_PUNCT:
		return fmt.Sprintf("%s(%q)", v.Type, v.Char)
	}
	return v.Type.String()
}

// Lexeme returns the value spelled as source text. Numbers come back in
// decimal whatever base they were written in.
func (v Value) Lexeme() string {
	switch v.Type {
	case NUMBER:
		return strconv.FormatUint(v.Num, 10)
	case STRING_LITERAL:
		return `"` + v.Text + `"`
	case CHAR_LITERAL:
		return "'" + string(v.Char) + "'"
	case IDENTIFIER:
		return v.Text
	case PUNCT:
		return string(v.Char)
	case COMPOUND_PUNCT:
		return string(v.Char) + "="
	}
	for _, kw := range keywords {
		if kw.typ == v.Type {
			return kw.text
		}
	}
	return ""
}

func isPunct(r rune) bool {
	switch r {
	case '!', '%', '&', '(', ')', '*', '+', ',', '-', '/', ';', '<', '=', '>', '@', '[', ']', '{', '|', '}':
		return true
	}
	return false
}

// isCompoundCandidate reports whether r may be followed by '=' to form a
// COMPOUND_PUNCT.
func isCompoundCandidate(r rune) bool {
	switch r {
	case '!', '%', '&', '*', '+', '-', '/', '<', '=', '>', '|':
		return true
	}
	return false
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
