package symtab_test

import (
	"testing"

	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/lexer"
	"github.com/antec-lang/antec/internal/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShadowingIsAllowed(t *testing.T) {
	global := symtab.NewGlobal()
	global.Declare("x", &symtab.Declaration{Name: "x"})

	inner := global.Push(symtab.Block)
	inner.Declare("x", &symtab.Declaration{Name: "x", Mutable: true})

	d, ok := inner.Lookup("x")
	require.True(t, ok)
	assert.True(t, d.Mutable)

	outer, ok := global.Lookup("x")
	require.True(t, ok)
	assert.False(t, outer.Mutable)
}

func TestLookupLocalDoesNotSeeParent(t *testing.T) {
	global := symtab.NewGlobal()
	global.Declare("x", &symtab.Declaration{Name: "x"})
	inner := global.Push(symtab.Block)

	_, ok := inner.LookupLocal("x")
	assert.False(t, ok)

	_, ok = inner.Lookup("x")
	assert.True(t, ok)
}

func TestEnclosingFunctionAndLoop(t *testing.T) {
	global := symtab.NewGlobal()
	fn := global.Push(symtab.Function)
	loop := fn.Push(symtab.Loop)
	block := loop.Push(symtab.Block)

	assert.Same(t, fn, block.EnclosingFunction())
	assert.Same(t, loop, block.EnclosingLoop())
	assert.Nil(t, fn.EnclosingLoop())
}

func TestDeclarationSatisfiesAstDecl(t *testing.T) {
	var d ast.Decl = &symtab.Declaration{Name: "count"}
	assert.Equal(t, "count", d.DeclName())
}

func TestAssignmentHistory(t *testing.T) {
	decl := &symtab.Declaration{Name: "i"}
	_, ok := decl.LatestAssignment()
	assert.False(t, ok)

	decl.Record(symtab.ForLoop, &ast.IntLit{Lexeme: "0"}, lexer.Span{})
	last, ok := decl.LatestAssignment()
	require.True(t, ok)
	assert.Equal(t, symtab.ForLoop, last.Kind)
}
