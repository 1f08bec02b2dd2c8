package parser

import (
	"testing"

	"github.com/antec-lang/antec/internal/lexer"
	"github.com/stretchr/testify/assert"
)

func TestGetPrecedenceOrdering(t *testing.T) {
	assert.Less(t, getPrecedence(lexer.Eq), getPrecedence(lexer.Lt))
	assert.Less(t, getPrecedence(lexer.Lt), getPrecedence(lexer.Plus))
	assert.Less(t, getPrecedence(lexer.Plus), getPrecedence(lexer.Star))
	assert.Less(t, getPrecedence(lexer.Star), getPrecedence(lexer.Dot))
	assert.Equal(t, PrecNone, getPrecedence(lexer.Assign))
}

func TestCompoundAssignOp(t *testing.T) {
	op, ok := compoundAssignOp(lexer.AddEq)
	assert.True(t, ok)
	assert.Equal(t, lexer.Plus, op)

	_, ok = compoundAssignOp(lexer.Colon)
	assert.False(t, ok)
}
