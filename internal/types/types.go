// Package types implements the canonical type universe: every distinct
// type value used across a compilation is hash-consed through a single
// Universe, so structurally-equal types are handle-identical and can be
// compared with ==.
package types

import (
	"fmt"
	"strings"

	"github.com/antec-lang/antec/internal/lexer"
)

// Tag identifies a type's structural category.
type Tag int

const (
	TagI8 Tag = iota
	TagI16
	TagI32
	TagI64
	TagU8
	TagU16
	TagU32
	TagU64
	TagF16
	TagF32
	TagF64
	TagBool
	TagChar
	TagUnit
	TagPtr
	TagArray
	TagTuple
	TagFunction
	TagTypeVar
	TagData
	TagTaggedUnion
	TagModifier
)

// Type is implemented by every canonical type value. Values are only ever
// minted by a Universe's get/create methods, which is what guarantees
// pointer identity doubles as structural identity.
type Type interface {
	Tag() Tag
	IsGeneric() bool
	key() string
	String() string
}

// Primitive covers every fixed-size scalar: signed/unsigned integers,
// floats, bool, char, and unit.
type Primitive struct{ tag Tag }

func (p *Primitive) Tag() Tag         { return p.tag }
func (p *Primitive) IsGeneric() bool  { return false }
func (p *Primitive) key() string      { return primitiveNames[p.tag] }
func (p *Primitive) String() string   { return primitiveNames[p.tag] }

var primitiveNames = map[Tag]string{
	TagI8: "i8", TagI16: "i16", TagI32: "i32", TagI64: "i64",
	TagU8: "u8", TagU16: "u16", TagU32: "u32", TagU64: "u64",
	TagF16: "f16", TagF32: "f32", TagF64: "f64",
	TagBool: "bool", TagChar: "char", TagUnit: "unit",
}

// Ptr is a pointer to Elem.
type Ptr struct{ Elem Type }

func (p *Ptr) Tag() Tag        { return TagPtr }
func (p *Ptr) IsGeneric() bool { return p.Elem.IsGeneric() }
func (p *Ptr) key() string     { return "*" + p.Elem.key() }
func (p *Ptr) String() string  { return "*" + p.Elem.String() }

// Array is Elem[Len]; Len of 0 means an unsized array type.
type Array struct {
	Elem Type
	Len  int
}

func (a *Array) Tag() Tag        { return TagArray }
func (a *Array) IsGeneric() bool { return a.Elem.IsGeneric() }
func (a *Array) key() string     { return fmt.Sprintf("[%d]%s", a.Len, a.Elem.key()) }
func (a *Array) String() string {
	if a.Len == 0 {
		return "[]" + a.Elem.String()
	}
	return fmt.Sprintf("[%d]%s", a.Len, a.Elem.String())
}

// Tuple is an ordered, unnamed aggregate of element types.
type Tuple struct{ Elems []Type }

func (t *Tuple) Tag() Tag        { return TagTuple }
func (t *Tuple) IsGeneric() bool { return anyGeneric(t.Elems) }
func (t *Tuple) key() string     { return "(" + joinKeys(t.Elems) + ")" }
func (t *Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Function is structurally typed: two function types are the same type
// iff their parameter lists and return type match.
type Function struct {
	Ret    Type
	Params []Type
}

func (f *Function) Tag() Tag        { return TagFunction }
func (f *Function) IsGeneric() bool { return f.Ret.IsGeneric() || anyGeneric(f.Params) }
func (f *Function) key() string     { return joinKeys(f.Params) + "->" + f.Ret.key() }
func (f *Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), f.Ret.String())
}

// TypeVar is a parametric type variable, always generic by construction.
type TypeVar struct{ Name string }

func (t *TypeVar) Tag() Tag        { return TagTypeVar }
func (t *TypeVar) IsGeneric() bool { return true }
func (t *TypeVar) key() string     { return "'" + t.Name }
func (t *TypeVar) String() string  { return "'" + t.Name }

// UnionTag is one constructor of a tagged union: a name and the ordinal
// value GetTagVal resolves it to.
type UnionTag struct {
	Name string
	Val  uint16
}

// Data is a nominal user type: a struct, or a tagged union when Tags is
// non-empty. It is minted in two steps (see Universe.GetNamed/CreateNamed)
// to support mutually- and self-referential named types: GetNamed returns
// a stub with Elems == nil, and CreateNamed fills the stub's fields in
// place once the declaration's body has been resolved.
type Data struct {
	Name     string
	Fields   []string // field name per Elems entry; empty for a tuple-like data type
	Elems    []Type
	Tags     []UnionTag
	Generics []*TypeVar
	Unbound  *Data // the generic template this type was instantiated from, if any
}

func (d *Data) Tag() Tag {
	if len(d.Tags) > 0 {
		return TagTaggedUnion
	}
	return TagData
}
func (d *Data) IsGeneric() bool { return len(d.Generics) > 0 && d.Unbound == nil }
func (d *Data) key() string     { return "data:" + d.Name }
func (d *Data) String() string  { return d.Name }

// IsStub reports whether d has been minted by name but not yet defined.
func (d *Data) IsStub() bool { return d.Elems == nil && len(d.Tags) == 0 }

// GetTagVal returns the ordinal of the named constructor and true, or
// (0, false) if d has no such tag.
func (d *Data) GetTagVal(name string) (uint16, bool) {
	for _, t := range d.Tags {
		if t.Name == name {
			return t.Val, true
		}
	}
	return 0, false
}

// Modifier wraps Elem with one or more source-level modifier tokens
// (mut, ante, ...). Modifiers never change Elem's size or layout.
type Modifier struct {
	Elem      Type
	Modifiers []lexer.Kind
}

func (m *Modifier) Tag() Tag        { return TagModifier }
func (m *Modifier) IsGeneric() bool { return m.Elem.IsGeneric() }
func (m *Modifier) key() string {
	var sb strings.Builder
	for _, mod := range m.Modifiers {
		sb.WriteString(mod.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(m.Elem.key())
	return sb.String()
}
func (m *Modifier) String() string { return m.key() }

// HasModifier reports whether m carries tok among its modifiers.
func (m *Modifier) HasModifier(tok lexer.Kind) bool {
	for _, mod := range m.Modifiers {
		if mod == tok {
			return true
		}
	}
	return false
}

// Unwrap strips any Modifier wrapper, returning t itself if it is not one.
func Unwrap(t Type) Type {
	if m, ok := t.(*Modifier); ok {
		return Unwrap(m.Elem)
	}
	return t
}

func anyGeneric(ts []Type) bool {
	for _, t := range ts {
		if t.IsGeneric() {
			return true
		}
	}
	return false
}

func joinKeys(ts []Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.key()
	}
	return strings.Join(parts, ",")
}
