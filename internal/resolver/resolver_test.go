package resolver_test

import (
	"io"
	"testing"

	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/diag"
	"github.com/antec-lang/antec/internal/lexer"
	"github.com/antec-lang/antec/internal/module"
	"github.com/antec-lang/antec/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver() *resolver.Resolver {
	return resolver.New(module.NewRoot(), diag.NewReporter(io.Discard))
}

func TestForwardReferenceBetweenTopLevelFuncs(t *testing.T) {
	callee := &ast.FuncDecl{Name: "helper"}
	caller := &ast.FuncDecl{
		Name: "main",
		Body: &ast.Block{Body: &ast.Seq{Stmts: []ast.Node{
			&ast.Var{Name: "helper"},
		}}},
	}
	root := &ast.Root{Funcs: []*ast.FuncDecl{caller, callee}}

	r := newResolver()
	r.Resolve(root)

	use := root.Funcs[0].Body.(*ast.Block).Body.Stmts[0].(*ast.Var)
	require.NotNil(t, use.Decl)
	assert.Equal(t, "helper", use.Decl.DeclName())
}

func TestLetShadowsOuterBindingAfterResolvingRhs(t *testing.T) {
	outerLet := &ast.VarAssign{
		Ref:       &ast.Var{Name: "x"},
		Modifiers: []lexer.Kind{lexer.Let},
		Expr:      &ast.IntLit{Lexeme: "1"},
	}
	innerUse := &ast.Var{Name: "x"}
	innerLet := &ast.VarAssign{
		Ref:       &ast.Var{Name: "x"},
		Modifiers: []lexer.Kind{lexer.Let, lexer.Mut},
		Expr:      innerUse, // rhs resolves against the OUTER x, per rule 2
	}
	inner := &ast.Block{Body: &ast.Seq{Stmts: []ast.Node{innerLet}}}
	root := &ast.Root{Main: []ast.Node{outerLet, inner}}

	r := newResolver()
	r.Resolve(root)

	require.NotNil(t, innerUse.Decl)
	assert.Equal(t, outerLet.Ref.(*ast.Var).Decl, innerUse.Decl)
}

func TestMutationDoesNotIntroduceNewBinding(t *testing.T) {
	let := &ast.VarAssign{
		Ref:       &ast.Var{Name: "x"},
		Modifiers: []lexer.Kind{lexer.Let, lexer.Mut},
		Expr:      &ast.IntLit{Lexeme: "1"},
	}
	mutateRef := &ast.Var{Name: "x"}
	mutate := &ast.VarAssign{Ref: mutateRef, Expr: &ast.IntLit{Lexeme: "2"}}
	root := &ast.Root{Main: []ast.Node{let, mutate}}

	r := newResolver()
	r.Resolve(root)

	require.NotNil(t, mutateRef.Decl)
	assert.Equal(t, let.Ref.(*ast.Var).Decl, mutateRef.Decl)
}

func TestUndefinedVariableReportsAndLeavesDeclNil(t *testing.T) {
	use := &ast.Var{Name: "missing"}
	root := &ast.Root{Main: []ast.Node{use}}

	var buf ioDiscardCounter
	rep := diag.NewReporter(&buf)
	r := resolver.New(module.NewRoot(), rep)
	r.Resolve(root)

	assert.True(t, rep.HasErrors())
	assert.Nil(t, use.Decl)
}

type ioDiscardCounter struct{ n int }

func (c *ioDiscardCounter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

func TestMatchBranchPatternBindsFreshVar(t *testing.T) {
	patternVar := &ast.Var{Name: "rest"}
	branchUse := &ast.Var{Name: "rest"}
	branch := &ast.MatchBranch{Pattern: patternVar, Branch: branchUse}
	match := &ast.Match{Expr: &ast.IntLit{Lexeme: "0"}, Branches: []*ast.MatchBranch{branch}}
	root := &ast.Root{Main: []ast.Node{match}}

	r := newResolver()
	r.Resolve(root)

	require.NotNil(t, patternVar.Decl)
	require.NotNil(t, branchUse.Decl)
	assert.Equal(t, patternVar.Decl, branchUse.Decl)
}

func TestMatchBranchUnderscoreNeverBinds(t *testing.T) {
	patternVar := &ast.Var{Name: "_"}
	branch := &ast.MatchBranch{Pattern: patternVar, Branch: &ast.IntLit{Lexeme: "0"}}
	match := &ast.Match{Expr: &ast.IntLit{Lexeme: "0"}, Branches: []*ast.MatchBranch{branch}}
	root := &ast.Root{Main: []ast.Node{match}}

	r := newResolver()
	r.Resolve(root)

	assert.Nil(t, patternVar.Decl)
}

func TestForLoopVariableScopedToBodyOnly(t *testing.T) {
	loopUse := &ast.Var{Name: "i"}
	forNode := &ast.For{
		VarName: "i",
		Range:   &ast.Array{Elems: []ast.Node{&ast.IntLit{Lexeme: "1"}}},
		Body:    &ast.Block{Body: &ast.Seq{Stmts: []ast.Node{loopUse}}},
	}
	afterLoopUse := &ast.Var{Name: "i"}
	root := &ast.Root{Main: []ast.Node{forNode, afterLoopUse}}

	var buf ioDiscardCounter
	r := resolver.New(module.NewRoot(), diag.NewReporter(&buf))
	r.Resolve(root)

	require.NotNil(t, loopUse.Decl)
	assert.Equal(t, "i", loopUse.Decl.DeclName())
	assert.Nil(t, afterLoopUse.Decl)
}
