package resolver_test

import (
	"io"
	"testing"

	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/diag"
	"github.com/antec-lang/antec/internal/lexer"
	"github.com/antec-lang/antec/internal/resolver"
	"github.com/antec-lang/antec/internal/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnteVisitorTracesNormalDependency(t *testing.T) {
	decl := &symtab.Declaration{Name: "x"}
	decl.Record(symtab.Normal, &ast.IntLit{Lexeme: "1"}, lexer.Span{})

	use := &ast.Var{Name: "x", Decl: decl}
	v := resolver.NewAnteVisitor(diag.NewReporter(io.Discard))
	use.Accept(v)

	require.Len(t, v.Dependencies, 1)
	assert.Equal(t, "x", v.Dependencies[0].Name)
}

func TestAnteVisitorSkipsDependencyWhenTypeCarriesAnteModifier(t *testing.T) {
	decl := &symtab.Declaration{Name: "x", Type: &ast.TypeExpr{Name: "i32", Modifiers: []lexer.Kind{lexer.Ante}}}
	decl.Record(symtab.Normal, &ast.IntLit{Lexeme: "1"}, lexer.Span{})

	use := &ast.Var{Name: "x", Decl: decl}
	v := resolver.NewAnteVisitor(diag.NewReporter(io.Discard))
	use.Accept(v)

	assert.Empty(t, v.Dependencies)
}

func TestAnteVisitorRejectsForLoopBinding(t *testing.T) {
	decl := &symtab.Declaration{Name: "i"}
	decl.Record(symtab.ForLoop, &ast.IntLit{Lexeme: "0"}, lexer.Span{})

	use := &ast.Var{Name: "i", Decl: decl}
	var buf countingWriter
	rep := diag.NewReporter(&buf)
	v := resolver.NewAnteVisitor(rep)
	use.Accept(v)
	rep.Render()

	assert.Empty(t, v.Dependencies)
	assert.Greater(t, buf.n, 0)
}

func TestAnteVisitorLocalsAreNotDependencies(t *testing.T) {
	body := &ast.Block{Body: &ast.Seq{Stmts: []ast.Node{
		&ast.VarAssign{
			Ref:       &ast.Var{Name: "y"},
			Modifiers: []lexer.Kind{lexer.Let},
			Expr:      &ast.IntLit{Lexeme: "1"},
		},
	}}}
	v := resolver.NewAnteVisitor(diag.NewReporter(io.Discard))
	body.Accept(v)
	assert.Empty(t, v.Dependencies)
}

type countingWriter struct{ n int }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}
