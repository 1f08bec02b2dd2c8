// Package resolver implements the name resolver visitor (§4.E): a
// single-pass walk that links every ast.Var to the symtab.Declaration it
// names, hoisting top-level functions and data types so forward
// references between them resolve.
package resolver

import (
	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/diag"
	"github.com/antec-lang/antec/internal/lexer"
	"github.com/antec-lang/antec/internal/module"
	"github.com/antec-lang/antec/internal/symtab"
)

// Resolver walks an *ast.Root exactly once.
type Resolver struct {
	ast.BaseVisitor

	scope  *symtab.Scope
	module *module.Tree
	report *diag.Reporter

	// implicitDeclare is set while visiting a match-branch pattern: a
	// fresh Var there binds a new name instead of looking one up (§4.E
	// rule 6).
	implicitDeclare bool
}

// New returns a resolver rooted at a fresh global scope.
func New(mod *module.Tree, report *diag.Reporter) *Resolver {
	return &Resolver{scope: symtab.NewGlobal(), module: mod, report: report}
}

// Resolve walks root, mutating every ast.Var's Decl field in place.
func (r *Resolver) Resolve(root *ast.Root) {
	root.Accept(r)
}

func (r *Resolver) declare(name string, def ast.Node, kind symtab.AssignmentKind) *symtab.Declaration {
	d := &symtab.Declaration{Name: name, Definition: def}
	d.Record(kind, def, def.Location())
	r.scope.Declare(name, d)
	return d
}

// VisitRoot hoists every top-level FuncDecl and DataDecl (rule 1) before
// visiting anything else, so a function may call a sibling defined later
// in the file and a data type may reference a sibling declared later.
func (r *Resolver) VisitRoot(n *ast.Root) {
	for _, fn := range n.Funcs {
		r.declare(fn.Name, fn, symtab.Normal)
	}
	for _, ext := range n.Extensions {
		for _, m := range ext.Methods {
			r.declare(m.Name, m, symtab.Normal)
		}
	}
	for _, stmt := range n.Main {
		if dd, ok := stmt.(*ast.DataDecl); ok {
			r.declare(dd.Name, dd, symtab.Normal)
		}
	}

	for _, fn := range n.Funcs {
		fn.Accept(r)
	}
	for _, ext := range n.Extensions {
		ext.Accept(r)
	}
	for _, stmt := range n.Main {
		stmt.Accept(r)
	}
}

func (r *Resolver) VisitFuncDecl(n *ast.FuncDecl) {
	outer := r.scope
	r.scope = outer.Push(symtab.Function)
	defer func() { r.scope = outer }()

	for _, tv := range n.TypeVars {
		r.declare(tv, n, symtab.TypeVarAssignment)
	}
	for _, p := range n.Params {
		d := r.declare(p.Name, p, symtab.Parameter)
		d.Type = p.Type
	}
	if n.Body != nil {
		n.Body.Accept(r)
	}
}

func (r *Resolver) VisitDataDecl(n *ast.DataDecl) {
	for _, tv := range n.TypeVars {
		r.declare(tv, n, symtab.TypeVarAssignment)
	}
}

func (r *Resolver) VisitExt(n *ast.Ext) {
	for _, m := range n.Methods {
		m.Accept(r)
	}
}

func (r *Resolver) VisitImport(n *ast.Import) { n.Expr.Accept(r) }

// VisitBlock opens a new scope (rule 4); Seq does not, so it falls
// through to VisitSeq unchanged.
func (r *Resolver) VisitBlock(n *ast.Block) {
	outer := r.scope
	r.scope = outer.Push(symtab.Block)
	n.Body.Accept(r)
	r.scope = outer
}

func (r *Resolver) VisitSeq(n *ast.Seq) {
	for _, stmt := range n.Stmts {
		stmt.Accept(r)
	}
}

// VisitVarAssign implements rules 2 and 3: a non-empty Modifiers list
// declares a fresh binding after resolving the rhs; an empty one mutates
// an existing binding, with both sides resolved against the current
// scope.
func (r *Resolver) VisitVarAssign(n *ast.VarAssign) {
	n.Expr.Accept(r)

	if len(n.Modifiers) == 0 {
		n.Ref.Accept(r)
		return
	}

	switch ref := n.Ref.(type) {
	case *ast.Var:
		d := r.declare(ref.Name, n, symtab.Normal)
		ref.Decl = d
	case *ast.Tuple:
		for _, elem := range ref.Elems {
			v, ok := elem.(*ast.Var)
			if !ok {
				continue
			}
			d := r.declare(v.Name, n, symtab.Normal)
			v.Decl = d
		}
	}
}

func (r *Resolver) VisitGlobal(n *ast.Global) {
	for _, v := range n.Vars {
		v.Accept(r)
	}
}

// VisitVar implements rules 7-8, plus implicit declaration under
// implicitDeclare: `_` is never bound (§4.F catch-all convention).
func (r *Resolver) VisitVar(n *ast.Var) {
	if r.implicitDeclare {
		if n.Name == "_" {
			return
		}
		if existing, ok := r.scope.LookupLocal(n.Name); ok {
			n.Decl = existing
			return
		}
		n.Decl = r.declare(n.Name, n, symtab.Normal)
		return
	}

	d, ok := r.scope.Lookup(n.Name)
	if !ok {
		r.report.Reportf(diag.Resolution, n.Span.Start, "undefined name %q", n.Name)
		return
	}
	n.Decl = d
}

// VisitFor implements rule 5: the loop variable's scope covers both the
// body and the range expression's tail (the original compiler resolves
// a chained `for x in xs.rest` against the same scope x is bound in).
func (r *Resolver) VisitFor(n *ast.For) {
	n.Range.Accept(r)

	outer := r.scope
	r.scope = outer.Push(symtab.Loop)
	d := r.declare(n.VarName, n, symtab.ForLoop)
	n.VarDecl = d
	n.Body.Accept(r)
	r.scope = outer
}

func (r *Resolver) VisitWhile(n *ast.While) {
	n.Cond.Accept(r)
	outer := r.scope
	r.scope = outer.Push(symtab.Loop)
	n.Body.Accept(r)
	r.scope = outer
}

func (r *Resolver) VisitIf(n *ast.If) {
	n.Cond.Accept(r)
	n.Then.Accept(r)
	if n.Else != nil {
		n.Else.Accept(r)
	}
}

func (r *Resolver) VisitJump(n *ast.Jump) {
	if n.Expr != nil {
		n.Expr.Accept(r)
	}
}

func (r *Resolver) VisitRet(n *ast.Ret) {
	if n.Expr != nil {
		n.Expr.Accept(r)
	}
}

func (r *Resolver) VisitTypeCast(n *ast.TypeCast) { n.Expr.Accept(r) }

func (r *Resolver) VisitUnOp(n *ast.UnOp) { n.Rhs.Accept(r) }

// VisitBinOp skips resolving the rhs of a field-access expression: the
// name to the right of '.' is a field name, not a variable reference, and
// is resolved later against the lhs's type rather than the scope stack.
func (r *Resolver) VisitBinOp(n *ast.BinOp) {
	n.Lhs.Accept(r)
	if n.Op != lexer.Dot {
		n.Rhs.Accept(r)
	}
}

func (r *Resolver) VisitArray(n *ast.Array) {
	for _, e := range n.Elems {
		e.Accept(r)
	}
}

func (r *Resolver) VisitTuple(n *ast.Tuple) {
	for _, e := range n.Elems {
		e.Accept(r)
	}
}

func (r *Resolver) VisitMod(n *ast.Mod) { n.Target.Accept(r) }

// VisitMatch resolves the scrutinee, then each branch.
func (r *Resolver) VisitMatch(n *ast.Match) {
	n.Expr.Accept(r)
	for _, b := range n.Branches {
		b.Accept(r)
	}
}

// VisitMatchBranch implements rule 6: a fresh scope, implicit_declare
// while visiting the pattern, then the branch body in that same scope.
func (r *Resolver) VisitMatchBranch(n *ast.MatchBranch) {
	outer := r.scope
	r.scope = outer.Push(symtab.Match)

	r.implicitDeclare = true
	n.Pattern.Accept(r)
	r.implicitDeclare = false

	n.Branch.Accept(r)
	r.scope = outer
}
