package ast

import "github.com/antec-lang/antec/internal/lexer"

// IntLit is an integer literal; TypeTag carries the numeric suffix (or
// EndOfInput when unsuffixed), copied straight from the lexer token.
type IntLit struct {
	Span    lexer.Span
	Lexeme  string
	TypeTag lexer.Kind
}

func (n *IntLit) Location() lexer.Span { return n.Span }
func (n *IntLit) Accept(v Visitor)     { v.VisitIntLit(n) }

type FltLit struct {
	Span    lexer.Span
	Lexeme  string
	TypeTag lexer.Kind
}

func (n *FltLit) Location() lexer.Span { return n.Span }
func (n *FltLit) Accept(v Visitor)     { v.VisitFltLit(n) }

type BoolLit struct {
	Span  lexer.Span
	Value bool
}

func (n *BoolLit) Location() lexer.Span { return n.Span }
func (n *BoolLit) Accept(v Visitor)     { v.VisitBoolLit(n) }

type CharLit struct {
	Span   lexer.Span
	Lexeme string
}

func (n *CharLit) Location() lexer.Span { return n.Span }
func (n *CharLit) Accept(v Visitor)     { v.VisitCharLit(n) }

type StrLit struct {
	Span   lexer.Span
	Lexeme string
}

func (n *StrLit) Location() lexer.Span { return n.Span }
func (n *StrLit) Accept(v Visitor)     { v.VisitStrLit(n) }

// Array is an array literal: an ordered element list.
type Array struct {
	Span  lexer.Span
	Elems []Node
}

func (n *Array) Location() lexer.Span { return n.Span }
func (n *Array) Accept(v Visitor)     { v.VisitArray(n) }

// Tuple is a tuple literal: an ordered element list.
type Tuple struct {
	Span  lexer.Span
	Elems []Node
}

func (n *Tuple) Location() lexer.Span { return n.Span }
func (n *Tuple) Accept(v Visitor)     { v.VisitTuple(n) }

type UnOp struct {
	Span lexer.Span
	Op   lexer.Kind
	Rhs  Node
}

func (n *UnOp) Location() lexer.Span { return n.Span }
func (n *UnOp) Accept(v Visitor)     { v.VisitUnOp(n) }

type BinOp struct {
	Span lexer.Span
	Op   lexer.Kind
	Lhs  Node
	Rhs  Node
}

func (n *BinOp) Location() lexer.Span { return n.Span }
func (n *BinOp) Accept(v Visitor)     { v.VisitBinOp(n) }

// Seq is an ordered list of statements that share one enclosing scope —
// it does not open a new scope itself (§4.E rule 4).
type Seq struct {
	Span  lexer.Span
	Stmts []Node
}

func (n *Seq) Location() lexer.Span { return n.Span }
func (n *Seq) Accept(v Visitor)     { v.VisitSeq(n) }

// Block is a Seq wrapped in its own scope.
type Block struct {
	Span lexer.Span
	Body *Seq
}

func (n *Block) Location() lexer.Span { return n.Span }
func (n *Block) Accept(v Visitor)     { v.VisitBlock(n) }

// Mod attaches a modifier token (mut, ante, ...) to a declaration.
type Mod struct {
	Span     lexer.Span
	Modifier lexer.Kind
	Target   Node
}

func (n *Mod) Location() lexer.Span { return n.Span }
func (n *Mod) Accept(v Visitor)     { v.VisitMod(n) }

// TypeExpr is a type expression as written in source: a name plus
// optional generic arguments and modifier tokens. It is resolved to a
// canonical types.Type by the type universe, not by the AST itself.
type TypeExpr struct {
	Span      lexer.Span
	Name      string
	Generics  []*TypeExpr
	Modifiers []lexer.Kind
	ArrayLen  int // 0 means unsized/not-an-array
	IsArray   bool
	IsPtr     bool
}

func (n *TypeExpr) Location() lexer.Span { return n.Span }
func (n *TypeExpr) Accept(v Visitor)     { v.VisitTypeExpr(n) }

type TypeCast struct {
	Span lexer.Span
	Expr Node
	Type *TypeExpr
}

func (n *TypeCast) Location() lexer.Span { return n.Span }
func (n *TypeCast) Accept(v Visitor)     { v.VisitTypeCast(n) }

type Ret struct {
	Span lexer.Span
	Expr Node
}

func (n *Ret) Location() lexer.Span { return n.Span }
func (n *Ret) Accept(v Visitor)     { v.VisitRet(n) }

// NamedVal is a name with a type annotation — a function parameter or a
// field in a tuple-of-names declaration chain before expansion (§4.B).
type NamedVal struct {
	Span lexer.Span
	Name string
	Type *TypeExpr
}

func (n *NamedVal) Location() lexer.Span { return n.Span }
func (n *NamedVal) Accept(v Visitor)     { v.VisitNamedVal(n) }

// Var is a use (or, under implicit_declare, a binding occurrence) of an
// identifier. Decl is nil before name resolution and non-nil after, for
// every name with a visible binding (§3 invariant).
type Var struct {
	Span lexer.Span
	Name string
	Decl Decl
}

func (n *Var) Location() lexer.Span { return n.Span }
func (n *Var) Accept(v Visitor)     { v.VisitVar(n) }

// Global declares one or more module-level variables.
type Global struct {
	Span lexer.Span
	Vars []*VarAssign
}

func (n *Global) Location() lexer.Span { return n.Span }
func (n *Global) Accept(v Visitor)     { v.VisitGlobal(n) }

// VarAssign is dual-purpose: a non-empty Modifiers list introduces a new
// binding (a let); an empty Modifiers list mutates an existing binding
// (§3 invariant, §4.E rules 2-3).
type VarAssign struct {
	Span      lexer.Span
	Ref       Node // *Var, or *Tuple for a destructuring let
	Modifiers []lexer.Kind
	Expr      Node
}

func (n *VarAssign) Location() lexer.Span { return n.Span }
func (n *VarAssign) Accept(v Visitor)     { v.VisitVarAssign(n) }

// Ext is an extension block: methods added to an existing named type.
type Ext struct {
	Span     lexer.Span
	TypeName string
	Methods  []*FuncDecl
}

func (n *Ext) Location() lexer.Span { return n.Span }
func (n *Ext) Accept(v Visitor)     { v.VisitExt(n) }

type Import struct {
	Span lexer.Span
	Expr Node
}

func (n *Import) Location() lexer.Span { return n.Span }
func (n *Import) Accept(v Visitor)     { v.VisitImport(n) }

// Jump is a continue or break, optionally carrying a value.
type Jump struct {
	Span lexer.Span
	Kind lexer.Kind // lexer.Continue or lexer.Break
	Expr Node
}

func (n *Jump) Location() lexer.Span { return n.Span }
func (n *Jump) Accept(v Visitor)     { v.VisitJump(n) }

type While struct {
	Span lexer.Span
	Cond Node
	Body *Block
}

func (n *While) Location() lexer.Span { return n.Span }
func (n *While) Accept(v Visitor)     { v.VisitWhile(n) }

// For binds VarName over Range, covering the loop body and — per §4.E
// rule 5 — the tail of the range expression itself.
type For struct {
	Span    lexer.Span
	VarName string
	VarDecl Decl
	Range   Node
	Body    *Block
}

func (n *For) Location() lexer.Span { return n.Span }
func (n *For) Accept(v Visitor)     { v.VisitFor(n) }

type MatchBranch struct {
	Span    lexer.Span
	Pattern Node
	Branch  Node
}

func (n *MatchBranch) Location() lexer.Span { return n.Span }
func (n *MatchBranch) Accept(v Visitor)     { v.VisitMatchBranch(n) }

type Match struct {
	Span     lexer.Span
	Expr     Node
	Branches []*MatchBranch
}

func (n *Match) Location() lexer.Span { return n.Span }
func (n *Match) Accept(v Visitor)     { v.VisitMatch(n) }

type If struct {
	Span lexer.Span
	Cond Node
	Then Node
	Else Node // nil, or another *If for elif chains
}

func (n *If) Location() lexer.Span { return n.Span }
func (n *If) Accept(v Visitor)     { v.VisitIf(n) }
