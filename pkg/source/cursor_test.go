package source

import (
	"testing"
	"unicode"
	"unicode/utf8"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_PeekDoesNotConsume(t *testing.T) {
	c := NewCursor("ab")
	first, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, At('a', Start), first)

	again, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, first, again)
	assert.Equal(t, Start, c.Pos())
	assert.Equal(t, "ab", c.Rest())
}

func TestCursor_EmptyInput(t *testing.T) {
	c := NewCursor("")
	assert.True(t, c.Done())

	_, ok := c.Peek()
	assert.False(t, ok)
	_, ok = c.Next()
	assert.False(t, ok)
	_, ok = c.Match("x")
	assert.False(t, ok)

	f := c.TakeWhile(func(rune) bool { return true })
	assert.Equal(t, Fragment{Value: "", Pos: Start}, f)
}

func TestCursor_NextTracksLinesAndColumns(t *testing.T) {
	c := NewCursor("a\nbc")
	want := []CodePoint{
		At('a', Position{1, 1}),
		At('\n', Position{1, 2}),
		At('b', Position{2, 1}),
		At('c', Position{2, 2}),
	}
	for i, w := range want {
		got, ok := c.Next()
		require.True(t, ok, "char %d", i)
		assert.Equal(t, w, got, "char %d", i)
	}
	assert.True(t, c.Done())
	assert.Equal(t, Position{2, 3}, c.Pos())
}

func TestCursor_MultiByteIsOneColumn(t *testing.T) {
	c := NewCursor("é日x")
	cp, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 'é', cp.Value)
	cp, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, At('日', Position{1, 2}), cp)
	cp, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, At('x', Position{1, 3}), cp)
}

func TestCursor_PeekNAndTakeN(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		n      int
		wantOK bool
		want   string
	}{
		{name: "exact", input: "abc", n: 3, wantOK: true, want: "abc"},
		{name: "prefix", input: "abc", n: 2, wantOK: true, want: "ab"},
		{name: "zero", input: "abc", n: 0, wantOK: true, want: ""},
		{name: "too long", input: "abc", n: 4},
		{name: "negative", input: "abc", n: -1},
		{name: "splits rune", input: "éa", n: 1},
		{name: "whole rune", input: "éa", n: 2, wantOK: true, want: "é"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.input)
			peeked, ok := c.PeekN(tt.n)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.input, c.Rest())

			taken, ok := c.TakeN(tt.n)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, tt.input, c.Rest())
				assert.Equal(t, Start, c.Pos())
				return
			}
			assert.Equal(t, At(tt.want, Start), peeked)
			assert.Equal(t, peeked, taken)
			assert.Equal(t, tt.input[len(tt.want):], c.Rest())
		})
	}
}

func TestCursor_TakeNAdvancesOverEveryCharacter(t *testing.T) {
	c := NewCursor("ab\n\ncd\nefg")
	f, ok := c.TakeN(len("ab\n\ncd\ne"))
	require.True(t, ok)
	assert.Equal(t, Start, f.Pos)
	assert.Equal(t, Position{4, 2}, c.Pos())
}

func TestCursor_Match(t *testing.T) {
	c := NewCursor("return x")

	_, ok := c.Match("int")
	assert.False(t, ok)
	assert.Equal(t, Start, c.Pos())

	_, ok = c.Match("return x and more")
	assert.False(t, ok, "longer than the input")
	assert.Equal(t, "return x", c.Rest())

	f, ok := c.Match("return")
	require.True(t, ok)
	assert.Equal(t, At("return", Start), f)
	assert.Equal(t, Position{1, 7}, c.Pos())
	assert.Equal(t, " x", c.Rest())
}

func TestCursor_TakeWhile(t *testing.T) {
	c := NewCursor("abc123 rest")

	empty := c.TakeWhile(unicode.IsDigit)
	assert.Equal(t, At("", Start), empty)

	letters := c.TakeWhile(unicode.IsLetter)
	assert.Equal(t, At("abc", Start), letters)

	digits := c.TakeWhile(unicode.IsDigit)
	assert.Equal(t, At("123", Position{1, 4}), digits)
	assert.Equal(t, " rest", c.Rest())

	all := c.TakeWhile(func(rune) bool { return true })
	assert.Equal(t, " rest", all.Value)
	assert.True(t, c.Done())
}

func TestCursor_TakeWhileKeepsMultiByteIntact(t *testing.T) {
	c := NewCursor("héllo wörld")
	word := c.TakeWhile(func(r rune) bool { return r != ' ' })
	assert.Equal(t, "héllo", word.Value)
	assert.Equal(t, Position{1, 6}, c.Pos())
}

func TestCursor_StrayContinuationByte(t *testing.T) {
	c := NewCursor("ab\x80c")
	word := c.TakeWhile(func(r rune) bool { return r != utf8.RuneError })
	assert.Equal(t, At("ab", Start), word)
	assert.Equal(t, "\x80c", c.Rest())
	assert.Equal(t, Position{1, 3}, c.Pos())

	bad := c.TakeWhile(func(r rune) bool { return r == utf8.RuneError })
	assert.Equal(t, At("\x80", Position{1, 3}), bad)
	assert.Equal(t, Position{1, 4}, c.Pos())
}

func TestCursor_MatchBeforeStrayByte(t *testing.T) {
	c := NewCursor("int\xa9")
	f, ok := c.Match("int")
	require.True(t, ok)
	assert.Equal(t, At("int", Start), f)

	f, ok = c.TakeN(1)
	require.True(t, ok)
	assert.Equal(t, At("\xa9", Position{1, 4}), f)
	assert.True(t, c.Done())
}

func TestCursor_FragmentsShareSource(t *testing.T) {
	src := "shared text"
	c := NewCursor(src)
	f := c.TakeWhile(unicode.IsLetter)
	assert.Equal(t, "shared", f.Value)
	assert.Same(t, unsafe.StringData(src), unsafe.StringData(f.Value))
}

func TestPosition_Compare(t *testing.T) {
	assert.Equal(t, 0, Position{2, 3}.Compare(Position{2, 3}))
	assert.Equal(t, -1, Position{1, 9}.Compare(Position{2, 1}))
	assert.Equal(t, 1, Position{2, 4}.Compare(Position{2, 3}))
	assert.Equal(t, -1, Position{2, 2}.Compare(Position{2, 3}))
}

func TestLocated_String(t *testing.T) {
	assert.Equal(t, "ln 3, col 7: x", At("x", Position{3, 7}).String())
}
