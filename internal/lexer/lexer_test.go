package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allKinds(t *testing.T, src string) []Kind {
	t.Helper()
	l := New(src, "test.an", false)
	var kinds []Kind
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EndOfInput {
			return kinds
		}
		if len(kinds) > 10000 {
			require.Fail(t, "lexer did not terminate")
		}
	}
}

func TestKeywords(t *testing.T) {
	kinds := allKinds(t, "if elif else for while do in match continue break return import where")
	assert.Equal(t, []Kind{If, Elif, Else, For, While, Do, In, Match, Continue, Break, Return, Import, Where, EndOfInput}, kinds)
}

func TestIdentifiers(t *testing.T) {
	l := New("foo bar_baz _leading x1", "test.an", false)
	for _, want := range []string{"foo", "bar_baz", "_leading", "x1"} {
		tok := l.Next()
		assert.Equal(t, Identifier, tok.Kind)
		assert.Equal(t, want, tok.Lexeme)
	}
}

func TestNumericSuffix(t *testing.T) {
	l := New("42i8 3.14f32 7", "test.an", false)

	tok := l.Next()
	assert.Equal(t, IntLit, tok.Kind)
	assert.Equal(t, "42", tok.Lexeme)
	assert.Equal(t, I8, tok.Suffix)

	tok = l.Next()
	assert.Equal(t, FltLit, tok.Kind)
	assert.Equal(t, "3.14", tok.Lexeme)
	assert.Equal(t, F32, tok.Suffix)

	tok = l.Next()
	assert.Equal(t, IntLit, tok.Kind)
	assert.Equal(t, "7", tok.Lexeme)
	assert.Equal(t, EndOfInput, tok.Suffix)
}

func TestMalformedStringNeverAborts(t *testing.T) {
	l := New(`"unterminated`, "test.an", false)
	tok := l.Next()
	assert.Equal(t, MalformedString, tok.Kind)
	assert.Equal(t, EndOfInput, l.Next().Kind)
}

func TestMalformedChar(t *testing.T) {
	l := New(`'x`, "test.an", false)
	tok := l.Next()
	assert.Equal(t, MalformedChar, tok.Kind)
}

func TestComments(t *testing.T) {
	kinds := allKinds(t, "x ~ trailing comment\ny `block comment` z")
	assert.Equal(t, []Kind{Identifier, Newline, Identifier, Identifier, EndOfInput}, kinds)
}

func TestInvalidByteIsTokenNotAbort(t *testing.T) {
	l := New("x @ y", "test.an", false)
	assert.Equal(t, Identifier, l.Next().Kind)
	tok := l.Next()
	assert.Equal(t, Invalid, tok.Kind)
	assert.Equal(t, "@", tok.Lexeme)
	assert.Equal(t, Identifier, l.Next().Kind)
}

// Scenario 5: two lines at column 0, then a line at column 4, then a line
// at column 0.
func TestIndentationScenario(t *testing.T) {
	src := "a\nb\n    c\nd\n"
	kinds := allKinds(t, src)
	assert.Equal(t, []Kind{
		Identifier, // a
		Newline,
		Identifier, // b
		Indent,
		Identifier, // c
		Unindent,
		Identifier, // d
		EndOfInput,
	}, kinds)
}

func TestMultipleUnindentsOnOneNewline(t *testing.T) {
	src := "a\n    b\n        c\nd\n"
	kinds := allKinds(t, src)
	assert.Equal(t, []Kind{
		Identifier, // a
		Indent,
		Identifier, // b
		Indent,
		Identifier, // c
		Unindent,
		Unindent,
		Identifier, // d
		EndOfInput,
	}, kinds)
}

func TestIndentationBalanced(t *testing.T) {
	src := "a\n    b\n        c\n            d\n"
	kinds := allKinds(t, src)
	indents, unindents := 0, 0
	for _, k := range kinds {
		if k == Indent {
			indents++
		}
		if k == Unindent {
			unindents++
		}
	}
	assert.Equal(t, indents, unindents)
}

func TestBlankAndCommentOnlyLinesDoNotChangeIndent(t *testing.T) {
	src := "a\n\n    ~ just a comment\nb\n"
	kinds := allKinds(t, src)
	assert.Equal(t, []Kind{Identifier, Newline, Identifier, EndOfInput}, kinds)
}

func TestOperators(t *testing.T) {
	kinds := allKinds(t, "== != <= >= += -= *= /= ++ -> => = < > + - * / % !")
	assert.Equal(t, []Kind{
		Eq, NotEq, LtEq, GtEq, AddEq, SubEq, MulEq, DivEq, Concat, Arrow, FatArrow,
		Assign, Lt, Gt, Plus, Minus, Star, Slash, Percent, Not, EndOfInput,
	}, kinds)
}
