package ast_test

import (
	"strings"
	"testing"

	"github.com/antec-lang/antec/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintIfBranches(t *testing.T) {
	n := &ast.If{
		Cond: &ast.BoolLit{Value: true},
		Then: &ast.IntLit{Lexeme: "1"},
		Else: &ast.If{
			Cond: &ast.BoolLit{Value: false},
			Then: &ast.IntLit{Lexeme: "2"},
		},
	}
	out := ast.Print(n)
	assert.Contains(t, out, "if")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
	require.Equal(t, 2, strings.Count(out, "if"))
}

func TestPrintDataDeclUnion(t *testing.T) {
	n := &ast.DataDecl{
		Name: "Option",
		Variants: []*ast.UnionVariant{
			{Tag: "Some", Fields: []*ast.TypeExpr{{Name: "i32"}}},
			{Tag: "None"},
		},
	}
	out := ast.Print(n)
	assert.Contains(t, out, "data Option")
	assert.Contains(t, out, "| Some")
	assert.Contains(t, out, "| None")
}

// collectingVisitor counts how many Var nodes it sees, exercising the
// embedded-BaseVisitor override pattern.
type collectingVisitor struct {
	ast.BaseVisitor
	vars int
}

func (c *collectingVisitor) VisitVar(*ast.Var) { c.vars++ }

func TestBaseVisitorSelectiveOverride(t *testing.T) {
	root := &ast.Root{
		Main: []ast.Node{
			&ast.Var{Name: "x"},
			&ast.BinOp{Op: 0, Lhs: &ast.Var{Name: "y"}, Rhs: &ast.IntLit{Lexeme: "1"}},
		},
	}
	c := &collectingVisitor{}
	for _, n := range root.Main {
		n.Accept(c)
	}
	assert.Equal(t, 1, c.vars)
}

func TestDeclNameSatisfiesDeclInterface(t *testing.T) {
	var d ast.Decl = &ast.FuncDecl{Name: "main"}
	assert.Equal(t, "main", d.DeclName())

	d = &ast.DataDecl{Name: "Option"}
	assert.Equal(t, "Option", d.DeclName())

	d = &ast.Trait{Name: "Show"}
	assert.Equal(t, "Show", d.DeclName())
}
