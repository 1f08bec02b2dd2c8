// Package ast defines the closed set of AST node variants the builder
// produces, and the Visitor dispatch discipline the tree-walking passes
// (name resolver, ante visitor, printer) ride on.
package ast

import "github.com/antec-lang/antec/internal/lexer"

// Node is implemented by every AST variant. All ownership is tree-shaped:
// a node owns its children outright; the only back-edge in the tree is
// Var.Decl, which is non-owning.
type Node interface {
	Location() lexer.Span
	Accept(v Visitor)
}

// Decl is the minimal view of a declaration a Var's back-link needs,
// satisfied by internal/symtab.Declaration. Defining it here (rather than
// importing symtab) keeps ast a leaf package: symtab depends on ast for
// Node, not the other way around.
type Decl interface {
	DeclName() string
}

// Visitor is implemented by every pass that walks the tree: the name
// resolver, the ante-dependency visitor, and the debug printer. The
// pattern compiler dispatches on node type with a type switch instead.
type Visitor interface {
	VisitRoot(*Root)
	VisitIntLit(*IntLit)
	VisitFltLit(*FltLit)
	VisitBoolLit(*BoolLit)
	VisitCharLit(*CharLit)
	VisitStrLit(*StrLit)
	VisitArray(*Array)
	VisitTuple(*Tuple)
	VisitUnOp(*UnOp)
	VisitBinOp(*BinOp)
	VisitSeq(*Seq)
	VisitBlock(*Block)
	VisitMod(*Mod)
	VisitTypeExpr(*TypeExpr)
	VisitTypeCast(*TypeCast)
	VisitRet(*Ret)
	VisitNamedVal(*NamedVal)
	VisitVar(*Var)
	VisitGlobal(*Global)
	VisitVarAssign(*VarAssign)
	VisitExt(*Ext)
	VisitImport(*Import)
	VisitJump(*Jump)
	VisitWhile(*While)
	VisitFor(*For)
	VisitMatchBranch(*MatchBranch)
	VisitMatch(*Match)
	VisitIf(*If)
	VisitFuncDecl(*FuncDecl)
	VisitDataDecl(*DataDecl)
	VisitUnionVariant(*UnionVariant)
	VisitTrait(*Trait)
}

// Root is the AST builder's single output node: three owned lists —
// top-level extensions, top-level functions, and the top-level main
// statement sequence.
type Root struct {
	Span       lexer.Span
	Extensions []*Ext
	Funcs      []*FuncDecl
	Main       []Node
}

func (n *Root) Location() lexer.Span { return n.Span }
func (n *Root) Accept(v Visitor)     { v.VisitRoot(n) }

// BaseVisitor implements Visitor with every method a no-op, so a pass
// that only cares about a handful of node kinds can embed it and override
// just those methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitRoot(*Root)                 {}
func (BaseVisitor) VisitIntLit(*IntLit)              {}
func (BaseVisitor) VisitFltLit(*FltLit)              {}
func (BaseVisitor) VisitBoolLit(*BoolLit)            {}
func (BaseVisitor) VisitCharLit(*CharLit)            {}
func (BaseVisitor) VisitStrLit(*StrLit)              {}
func (BaseVisitor) VisitArray(*Array)                {}
func (BaseVisitor) VisitTuple(*Tuple)                {}
func (BaseVisitor) VisitUnOp(*UnOp)                  {}
func (BaseVisitor) VisitBinOp(*BinOp)                {}
func (BaseVisitor) VisitSeq(*Seq)                    {}
func (BaseVisitor) VisitBlock(*Block)                {}
func (BaseVisitor) VisitMod(*Mod)                    {}
func (BaseVisitor) VisitTypeExpr(*TypeExpr)          {}
func (BaseVisitor) VisitTypeCast(*TypeCast)          {}
func (BaseVisitor) VisitRet(*Ret)                    {}
func (BaseVisitor) VisitNamedVal(*NamedVal)          {}
func (BaseVisitor) VisitVar(*Var)                    {}
func (BaseVisitor) VisitGlobal(*Global)              {}
func (BaseVisitor) VisitVarAssign(*VarAssign)        {}
func (BaseVisitor) VisitExt(*Ext)                    {}
func (BaseVisitor) VisitImport(*Import)              {}
func (BaseVisitor) VisitJump(*Jump)                  {}
func (BaseVisitor) VisitWhile(*While)                {}
func (BaseVisitor) VisitFor(*For)                    {}
func (BaseVisitor) VisitMatchBranch(*MatchBranch)    {}
func (BaseVisitor) VisitMatch(*Match)                {}
func (BaseVisitor) VisitIf(*If)                      {}
func (BaseVisitor) VisitFuncDecl(*FuncDecl)          {}
func (BaseVisitor) VisitDataDecl(*DataDecl)          {}
func (BaseVisitor) VisitUnionVariant(*UnionVariant)  {}
func (BaseVisitor) VisitTrait(*Trait)                {}
