package ast

import (
	"fmt"
	"strings"
)

// Printer renders a tree to a single indented text dump, used by the `-p`
// CLI flag. It implements Visitor directly rather than embedding
// BaseVisitor: a printer that silently no-ops on an unhandled node kind
// would produce a misleading dump, so every node kind is handled here.
type Printer struct {
	sb     strings.Builder
	indent int
}

// Print renders n and everything it owns.
func Print(n Node) string {
	p := &Printer{}
	n.Accept(p)
	return p.sb.String()
}

func (p *Printer) line(format string, args ...interface{}) {
	p.sb.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.sb, format, args...)
	p.sb.WriteByte('\n')
}

func (p *Printer) child(n Node) {
	p.indent++
	n.Accept(p)
	p.indent--
}

func (p *Printer) VisitRoot(n *Root) {
	p.line("Root")
	p.indent++
	for _, ext := range n.Extensions {
		p.child(ext)
	}
	for _, fn := range n.Funcs {
		p.child(fn)
	}
	for _, stmt := range n.Main {
		p.child(stmt)
	}
	p.indent--
}

func (p *Printer) VisitIntLit(n *IntLit)   { p.line("%s", n.Lexeme) }
func (p *Printer) VisitFltLit(n *FltLit)   { p.line("%s", n.Lexeme) }
func (p *Printer) VisitBoolLit(n *BoolLit) { p.line("%t", n.Value) }
func (p *Printer) VisitCharLit(n *CharLit) { p.line("'%s'", n.Lexeme) }
func (p *Printer) VisitStrLit(n *StrLit)   { p.line("%q", n.Lexeme) }

func (p *Printer) VisitArray(n *Array) {
	p.line("Array")
	for _, e := range n.Elems {
		p.child(e)
	}
}

func (p *Printer) VisitTuple(n *Tuple) {
	p.line("Tuple")
	for _, e := range n.Elems {
		p.child(e)
	}
}

func (p *Printer) VisitUnOp(n *UnOp) {
	p.line("UnOp %s", n.Op)
	p.child(n.Rhs)
}

func (p *Printer) VisitBinOp(n *BinOp) {
	p.line("BinOp %s", n.Op)
	p.child(n.Lhs)
	p.child(n.Rhs)
}

func (p *Printer) VisitSeq(n *Seq) {
	for _, s := range n.Stmts {
		s.Accept(p)
	}
}

func (p *Printer) VisitBlock(n *Block) {
	p.line("Block")
	p.indent++
	n.Body.Accept(p)
	p.indent--
}

func (p *Printer) VisitMod(n *Mod) {
	p.line("Mod %s", n.Modifier)
	p.child(n.Target)
}

func (p *Printer) VisitTypeExpr(n *TypeExpr) { p.line("Type %s", n.Name) }

func (p *Printer) VisitTypeCast(n *TypeCast) {
	p.line("TypeCast -> %s", n.Type.Name)
	p.child(n.Expr)
}

func (p *Printer) VisitRet(n *Ret) {
	p.line("Ret")
	if n.Expr != nil {
		p.child(n.Expr)
	}
}

func (p *Printer) VisitNamedVal(n *NamedVal) {
	if n.Type != nil {
		p.line("%s %s", n.Type.Name, n.Name)
	} else {
		p.line("%s", n.Name)
	}
}

func (p *Printer) VisitVar(n *Var) { p.line("Var %s", n.Name) }

func (p *Printer) VisitGlobal(n *Global) {
	p.line("Global")
	for _, v := range n.Vars {
		p.child(v)
	}
}

func (p *Printer) VisitVarAssign(n *VarAssign) {
	if len(n.Modifiers) > 0 {
		p.line("let")
	} else {
		p.line("assign")
	}
	p.indent++
	n.Ref.Accept(p)
	n.Expr.Accept(p)
	p.indent--
}

func (p *Printer) VisitExt(n *Ext) {
	p.line("ext %s", n.TypeName)
	for _, m := range n.Methods {
		p.child(m)
	}
}

func (p *Printer) VisitImport(n *Import) {
	p.line("import")
	p.child(n.Expr)
}

func (p *Printer) VisitJump(n *Jump) {
	p.line("%s", n.Kind)
	if n.Expr != nil {
		p.child(n.Expr)
	}
}

func (p *Printer) VisitWhile(n *While) {
	p.line("while")
	p.indent++
	n.Cond.Accept(p)
	n.Body.Accept(p)
	p.indent--
}

func (p *Printer) VisitFor(n *For) {
	p.line("for %s in", n.VarName)
	p.indent++
	n.Range.Accept(p)
	n.Body.Accept(p)
	p.indent--
}

func (p *Printer) VisitMatchBranch(n *MatchBranch) {
	p.line("branch")
	p.indent++
	n.Pattern.Accept(p)
	n.Branch.Accept(p)
	p.indent--
}

func (p *Printer) VisitMatch(n *Match) {
	p.line("match")
	p.indent++
	n.Expr.Accept(p)
	for _, b := range n.Branches {
		b.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitIf(n *If) {
	p.line("if")
	p.indent++
	n.Cond.Accept(p)
	n.Then.Accept(p)
	if n.Else != nil {
		n.Else.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitFuncDecl(n *FuncDecl) {
	p.line("fun %s", n.Name)
	p.indent++
	for _, param := range n.Params {
		param.Accept(p)
	}
	if n.Body != nil {
		n.Body.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitDataDecl(n *DataDecl) {
	p.line("data %s", n.Name)
	p.indent++
	for _, f := range n.Fields {
		f.Accept(p)
	}
	for _, v := range n.Variants {
		v.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitUnionVariant(n *UnionVariant) {
	p.line("| %s", n.Tag)
	for _, f := range n.Fields {
		p.child(f)
	}
}

func (p *Printer) VisitTrait(n *Trait) {
	p.line("trait %s", n.Name)
	for _, m := range n.Methods {
		p.child(m)
	}
}
