package parser_test

import (
	"testing"

	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/lexer"
	"github.com/antec-lang/antec/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRoot(t *testing.T, source string) *ast.Root {
	t.Helper()
	p := parser.New(source, "test.an", false)
	root, errs := p.ParseRoot()
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	return root
}

func TestParseFuncDeclWithReturn(t *testing.T) {
	root := parseRoot(t, "fun add(a: i32, b: i32) -> i32:\n    return a + b\n")

	require.Len(t, root.Funcs, 1)
	fn := root.Funcs[0]
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "i32", fn.Params[0].Type.Name)
	require.NotNil(t, fn.RetType)
	assert.Equal(t, "i32", fn.RetType.Name)

	block, ok := fn.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Body.Stmts, 1)
	ret, ok := block.Body.Stmts[0].(*ast.Ret)
	require.True(t, ok)
	bin, ok := ret.Expr.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, bin.Op)
}

func TestParseAnteTypeModifier(t *testing.T) {
	root := parseRoot(t, "fun f(a: ante i32) -> i32:\n    return a\n")

	require.Len(t, root.Funcs, 1)
	fn := root.Funcs[0]
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "i32", fn.Params[0].Type.Name)
	assert.Equal(t, []lexer.Kind{lexer.Ante}, fn.Params[0].Type.Modifiers)
}

func TestParseGenericFuncDecl(t *testing.T) {
	root := parseRoot(t, "fun identity<T>(x: T) -> T:\n    return x\n")
	fn := root.Funcs[0]
	assert.Equal(t, []string{"T"}, fn.TypeVars)
	assert.Equal(t, "T", fn.Params[0].Type.Name)
}

func TestParseLetAndMutation(t *testing.T) {
	root := parseRoot(t, "let x = 1\nx = 2\n")
	require.Len(t, root.Main, 2)

	let, ok := root.Main[0].(*ast.VarAssign)
	require.True(t, ok)
	assert.Equal(t, []lexer.Kind{lexer.Let}, let.Modifiers)
	ref, ok := let.Ref.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", ref.Name)

	mutate, ok := root.Main[1].(*ast.VarAssign)
	require.True(t, ok)
	assert.Empty(t, mutate.Modifiers)
}

func TestParseCompoundAssignDesugarsToBinOp(t *testing.T) {
	root := parseRoot(t, "x += 1\n")
	assign, ok := root.Main[0].(*ast.VarAssign)
	require.True(t, ok)
	bin, ok := assign.Expr.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, bin.Op)
}

func TestParseDestructuringLet(t *testing.T) {
	root := parseRoot(t, "let (a, b) = pair\n")
	let := root.Main[0].(*ast.VarAssign)
	tup, ok := let.Ref.(*ast.Tuple)
	require.True(t, ok)
	require.Len(t, tup.Elems, 2)
}

func TestParseIfElifElse(t *testing.T) {
	source := "if x:\n    return 1\nelif y:\n    return 2\nelse:\n    return 3\n"
	root := parseRoot(t, source)
	ifNode, ok := root.Main[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifNode.Else)
	elif, ok := ifNode.Else.(*ast.If)
	require.True(t, ok)
	require.NotNil(t, elif.Else)
	_, ok = elif.Else.(*ast.Block)
	assert.True(t, ok)
}

func TestParseForLoop(t *testing.T) {
	root := parseRoot(t, "for i in xs:\n    return i\n")
	forNode, ok := root.Main[0].(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.VarName)
	rangeVar, ok := forNode.Range.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "xs", rangeVar.Name)
}

func TestParseStructDataDecl(t *testing.T) {
	root := parseRoot(t, "data Point = { x: i32, y: i32 }\n")
	decl, ok := root.Main[0].(*ast.DataDecl)
	require.True(t, ok)
	assert.Equal(t, "Point", decl.Name)
	require.Len(t, decl.Fields, 2)
	assert.Nil(t, decl.Variants)
}

func TestParseUnionDataDecl(t *testing.T) {
	root := parseRoot(t, "data Option<T> = Some(T) | None\n")
	decl, ok := root.Main[0].(*ast.DataDecl)
	require.True(t, ok)
	assert.Equal(t, []string{"T"}, decl.TypeVars)
	require.Len(t, decl.Variants, 2)
	assert.Equal(t, "Some", decl.Variants[0].Tag)
	require.Len(t, decl.Variants[0].Fields, 1)
	assert.Equal(t, "None", decl.Variants[1].Tag)
	assert.Empty(t, decl.Variants[1].Fields)
}

func TestParseMatchWithVariantAndCatchAll(t *testing.T) {
	source := "match opt:\n    Some(v) => v\n    None => 0\n"
	root := parseRoot(t, source)
	m, ok := root.Main[0].(*ast.Match)
	require.True(t, ok)
	require.Len(t, m.Branches, 2)

	cast, ok := m.Branches[0].Pattern.(*ast.TypeCast)
	require.True(t, ok)
	assert.Equal(t, "Some", cast.Type.Name)
	binder, ok := cast.Expr.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "v", binder.Name)

	none, ok := m.Branches[1].Pattern.(*ast.TypeExpr)
	require.True(t, ok)
	assert.Equal(t, "None", none.Name)
}

func TestParseCallExpressionEncodedAsBinOp(t *testing.T) {
	root := parseRoot(t, "foo(1, 2)\n")
	call, ok := root.Main[0].(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, lexer.LParen, call.Op)
	callee, ok := call.Lhs.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "foo", callee.Name)
	args, ok := call.Rhs.(*ast.Tuple)
	require.True(t, ok)
	assert.Len(t, args.Elems, 2)
}

func TestParseFieldAccessEncodedAsBinOp(t *testing.T) {
	root := parseRoot(t, "a.b\n")
	bin, ok := root.Main[0].(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, lexer.Dot, bin.Op)
	rhs, ok := bin.Rhs.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "b", rhs.Name)
}

func TestParseTraitVsExtensionByMethodBodies(t *testing.T) {
	trait := parseRoot(t, "class Show:\n    fun show() -> i32\n")
	require.Len(t, trait.Main, 1)
	_, ok := trait.Main[0].(*ast.Trait)
	assert.True(t, ok)

	ext := parseRoot(t, "class Point:\n    fun show() -> i32:\n        return 1\n")
	require.Len(t, ext.Extensions, 1)
	assert.Equal(t, "Point", ext.Extensions[0].TypeName)
}

func TestParseErrorsAreAccumulatedNotFatal(t *testing.T) {
	p := parser.New("let = 1\nlet y = 2\n", "test.an", false)
	root, errs := p.ParseRoot()
	assert.NotEmpty(t, errs)
	assert.NotEmpty(t, root.Main)
}
