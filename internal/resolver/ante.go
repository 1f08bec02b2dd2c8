package resolver

import (
	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/diag"
	"github.com/antec-lang/antec/internal/lexer"
	"github.com/antec-lang/antec/internal/symtab"
)

// Dependency is one free variable an ante (compile-time) expression
// transitively reads, resolved back to the Declaration that bound it.
type Dependency struct {
	Name string
	Decl *symtab.Declaration
}

// AnteVisitor traces the transitive dependencies of an expression
// evaluated at compile time, handling each free variable by the category
// of its most recent assignment: a for-loop binder, or a parameter whose
// type lacks the `ante` modifier, is reported with a diagnostic specific
// to that category; a normal binding whose type lacks the modifier is
// appended to Dependencies; a type variable is always compile-time
// visible.
type AnteVisitor struct {
	ast.BaseVisitor

	report *diag.Reporter

	// localScopes shadows internally-declared names (block locals
	// introduced inside the ante expression itself) so they are never
	// mistaken for external dependencies.
	localScopes []map[string]bool

	// implicitDeclare mirrors the resolver's flag: set while walking a
	// match pattern, so fresh binders register as local rather than as
	// a dependency.
	implicitDeclare bool

	Dependencies []Dependency
}

// NewAnteVisitor returns a visitor ready to trace one ante expression.
func NewAnteVisitor(report *diag.Reporter) *AnteVisitor {
	v := &AnteVisitor{report: report}
	v.pushScope()
	return v
}

func (v *AnteVisitor) pushScope() { v.localScopes = append(v.localScopes, map[string]bool{}) }
func (v *AnteVisitor) popScope()   { v.localScopes = v.localScopes[:len(v.localScopes)-1] }

func (v *AnteVisitor) declareLocal(name string) {
	v.localScopes[len(v.localScopes)-1][name] = true
}

func (v *AnteVisitor) isLocal(name string) bool {
	for _, scope := range v.localScopes {
		if scope[name] {
			return true
		}
	}
	return false
}

func (v *AnteVisitor) VisitRoot(n *ast.Root) {
	for _, e := range n.Extensions {
		e.Accept(v)
	}
	for _, f := range n.Funcs {
		f.Accept(v)
	}
	for _, m := range n.Main {
		m.Accept(v)
	}
}

func (v *AnteVisitor) VisitArray(n *ast.Array) {
	for _, e := range n.Elems {
		e.Accept(v)
	}
}

func (v *AnteVisitor) VisitTuple(n *ast.Tuple) {
	for _, e := range n.Elems {
		e.Accept(v)
	}
}

func (v *AnteVisitor) VisitUnOp(n *ast.UnOp) { n.Rhs.Accept(v) }

// VisitBinOp skips the rhs of a field-access expression: `.field` is not
// itself a variable reference, so tracing into it would misreport a
// dependency on a name that never resolves.
func (v *AnteVisitor) VisitBinOp(n *ast.BinOp) {
	n.Lhs.Accept(v)
	if n.Op != lexer.Dot {
		n.Rhs.Accept(v)
	}
}

func (v *AnteVisitor) VisitSeq(n *ast.Seq) {
	for _, s := range n.Stmts {
		s.Accept(v)
	}
}

func (v *AnteVisitor) VisitBlock(n *ast.Block) {
	v.pushScope()
	n.Body.Accept(v)
	v.popScope()
}

func (v *AnteVisitor) VisitMod(n *ast.Mod) {
	if n.Target != nil {
		n.Target.Accept(v)
	}
}

func (v *AnteVisitor) VisitTypeCast(n *ast.TypeCast) { n.Expr.Accept(v) }

func (v *AnteVisitor) VisitRet(n *ast.Ret) {
	if n.Expr != nil {
		n.Expr.Accept(v)
	}
}

func (v *AnteVisitor) VisitGlobal(n *ast.Global) {
	for _, va := range n.Vars {
		va.Accept(v)
		if ref, ok := va.Ref.(*ast.Var); ok {
			v.declareLocal(ref.Name)
		}
	}
}

func (v *AnteVisitor) VisitVarAssign(n *ast.VarAssign) {
	n.Expr.Accept(v)

	if len(n.Modifiers) == 0 {
		n.Ref.Accept(v)
		return
	}

	ref, ok := n.Ref.(*ast.Var)
	if !ok {
		v.report.Reportf(diag.Resolution, n.Span.Start, "pattern-declarations are unimplemented in ante expressions")
		return
	}
	v.declareLocal(ref.Name)
}

func (v *AnteVisitor) VisitExt(n *ast.Ext) {
	for _, m := range n.Methods {
		m.Accept(v)
	}
}

func (v *AnteVisitor) VisitImport(n *ast.Import) { n.Expr.Accept(v) }

func (v *AnteVisitor) VisitJump(n *ast.Jump) {
	if n.Expr != nil {
		n.Expr.Accept(v)
	}
}

func (v *AnteVisitor) VisitWhile(n *ast.While) {
	n.Cond.Accept(v)
	n.Body.Accept(v)
}

func (v *AnteVisitor) VisitFor(n *ast.For) {
	n.Range.Accept(v)
	v.pushScope()
	v.declareLocal(n.VarName)
	n.Body.Accept(v)
	v.popScope()
}

func (v *AnteVisitor) VisitIf(n *ast.If) {
	n.Cond.Accept(v)
	n.Then.Accept(v)
	if n.Else != nil {
		n.Else.Accept(v)
	}
}

func (v *AnteVisitor) VisitMatch(n *ast.Match) {
	n.Expr.Accept(v)
	for _, b := range n.Branches {
		b.Accept(v)
	}
}

func (v *AnteVisitor) VisitMatchBranch(n *ast.MatchBranch) {
	v.pushScope()
	v.implicitDeclare = true
	n.Pattern.Accept(v)
	v.implicitDeclare = false
	n.Branch.Accept(v)
	v.popScope()
}

func (v *AnteVisitor) VisitFuncDecl(n *ast.FuncDecl) {
	v.pushScope()
	for _, p := range n.Params {
		v.declareLocal(p.Name)
	}
	if n.Body != nil {
		n.Body.Accept(v)
	}
	v.popScope()
}

// VisitVar is the core of the trace: a free variable either resolves to
// an internally-declared local (fine, stays off the dependency list) or
// it must be a compile-time-visible external binding, category-checked
// against its most recent assignment.
func (v *AnteVisitor) VisitVar(n *ast.Var) {
	if v.implicitDeclare {
		if n.Name != "_" {
			v.declareLocal(n.Name)
		}
		return
	}

	if v.isLocal(n.Name) {
		return
	}

	decl, ok := n.Decl.(*symtab.Declaration)
	if !ok || decl == nil {
		v.report.Reportf(diag.Resolution, n.Span.Start, "use of undeclared variable %q in ante expression", n.Name)
		return
	}

	last, ok := decl.LatestAssignment()
	if !ok {
		v.report.Reportf(diag.Resolution, n.Span.Start, "cannot find last assignment to variable %q used in ante expression", n.Name)
		return
	}

	switch last.Kind {
	case symtab.ForLoop:
		v.report.Reportf(diag.Resolution, n.Span.Start,
			"cannot evaluate a non-ante for-loop binding %q during compile-time; prefix the for loop with 'ante' to evaluate it in compile-time", n.Name)
	case symtab.Parameter:
		if !decl.HasAnteModifier() {
			v.report.Reportf(diag.Resolution, n.Span.Start,
				"cannot evaluate a non-ante parameter %q during compile-time; mark the parameter's type with 'ante' to take it in at compile-time", n.Name)
		}
	case symtab.TypeVarAssignment:
		// Type variables are always compile-time visible; no diagnostic.
	case symtab.Normal:
		if !decl.HasAnteModifier() {
			v.Dependencies = append(v.Dependencies, Dependency{Name: n.Name, Decl: decl})
		}
	}
}
