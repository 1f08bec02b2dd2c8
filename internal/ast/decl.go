package ast

import "github.com/antec-lang/antec/internal/lexer"

// FuncDecl is a top-level or extension-method function. TypeVars holds the
// parametric type variables introduced by the declaration, in source order.
type FuncDecl struct {
	Span      lexer.Span
	Name      string
	Params    []*NamedVal
	RetType   *TypeExpr
	TypeVars  []string
	Modifiers []lexer.Kind
	Body      Node // nil for an extern/declared-only signature
}

func (n *FuncDecl) Location() lexer.Span { return n.Span }
func (n *FuncDecl) Accept(v Visitor)     { v.VisitFuncDecl(n) }
func (n *FuncDecl) DeclName() string     { return n.Name }

// UnionVariant is one constructor of a DataDecl's sum type: a tag name plus
// the ordered list of field types it carries (empty for a nullary tag).
type UnionVariant struct {
	Span   lexer.Span
	Tag    string
	Fields []*TypeExpr
}

func (n *UnionVariant) Location() lexer.Span { return n.Span }
func (n *UnionVariant) Accept(v Visitor)     { v.VisitUnionVariant(n) }

// DataDecl introduces a named type: either a struct (Fields set, Variants
// nil) or a sum type (Variants set, Fields nil). IsAlias marks a `type`
// alias, which carries exactly one entry in Variants[0].Fields and no tag.
type DataDecl struct {
	Span     lexer.Span
	Name     string
	TypeVars []string
	Fields   []*NamedVal
	Variants []*UnionVariant
	IsAlias  bool
}

func (n *DataDecl) Location() lexer.Span { return n.Span }
func (n *DataDecl) Accept(v Visitor)     { v.VisitDataDecl(n) }
func (n *DataDecl) DeclName() string     { return n.Name }

// Trait declares a named set of required method signatures.
type Trait struct {
	Span    lexer.Span
	Name    string
	Methods []*FuncDecl
}

func (n *Trait) Location() lexer.Span { return n.Span }
func (n *Trait) Accept(v Visitor)     { v.VisitTrait(n) }
func (n *Trait) DeclName() string     { return n.Name }
