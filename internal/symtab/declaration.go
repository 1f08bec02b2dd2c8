// Package symtab implements declarations and lexical scopes for the name
// resolver: every binding a Var can resolve to is a *Declaration, and
// every nested region of the program that can introduce bindings is a
// *Scope.
package symtab

import (
	"fmt"

	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/lexer"
)

// AssignmentKind categorizes why a Declaration received one of its
// assignments, mirroring the purpose tags the ante visitor differentiates
// diagnostics by.
type AssignmentKind int

const (
	Normal AssignmentKind = iota
	ForLoop
	Parameter
	TypeVarAssignment
)

func (k AssignmentKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case ForLoop:
		return "for-loop"
	case Parameter:
		return "parameter"
	case TypeVarAssignment:
		return "type-variable"
	default:
		return "unknown"
	}
}

// Assignment records one point at which a Declaration's value was set.
type Assignment struct {
	Kind AssignmentKind
	Node ast.Node
	Span lexer.Span
}

// Declaration is a name bound in some Scope: a let, a function parameter,
// a for-loop variable, a top-level function or data type, or a type
// variable. It implements ast.Decl so a Var can hold one without ast
// importing symtab.
type Declaration struct {
	Name       string
	Definition ast.Node // the node this name was originally declared in
	Mutable    bool
	History    []Assignment

	// Type is the syntactic type annotation the declaration carries, if
	// any was written (e.g. a function parameter's NamedVal.Type). This
	// front-end has no type-inference pass, so it is the only type
	// information a Declaration can carry; it is nil wherever the
	// binding has no written annotation (most `let`s, for-loop binders).
	Type *ast.TypeExpr
}

func (d *Declaration) DeclName() string { return d.Name }

// Record appends a new assignment to the declaration's history.
func (d *Declaration) Record(kind AssignmentKind, node ast.Node, span lexer.Span) {
	d.History = append(d.History, Assignment{Kind: kind, Node: node, Span: span})
}

// LatestAssignment returns the most recent assignment, or the zero value
// and false if the declaration has never been assigned (no Record call
// yet; the resolver records one whenever it declares a name).
func (d *Declaration) LatestAssignment() (Assignment, bool) {
	if len(d.History) == 0 {
		return Assignment{}, false
	}
	return d.History[len(d.History)-1], true
}

// HasAnteModifier reports whether the declaration's written type carries
// the `ante` modifier, making it visible to compile-time evaluation
// without being reported as a dependency.
func (d *Declaration) HasAnteModifier() bool {
	if d.Type == nil {
		return false
	}
	for _, m := range d.Type.Modifiers {
		if m == lexer.Ante {
			return true
		}
	}
	return false
}

func (d *Declaration) String() string {
	return fmt.Sprintf("%s (%d assignment(s))", d.Name, len(d.History))
}
