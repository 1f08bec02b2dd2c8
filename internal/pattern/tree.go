package pattern

import (
	"fmt"
	"strings"

	"github.com/antec-lang/antec/internal/types"
)

// Tree mirrors the shape of a scrutinee's type for exhaustiveness
// checking, independent of the control-flow lowering above. Each source
// branch is folded in via Overwrite; once every branch has been folded,
// Irrefutable reports whether the match covers every possible value.
type Tree struct {
	Tag      types.Tag
	Name     string
	Children []Tree
	Matched  bool
}

// fillerPattern stands in for a type variable: always a leaf, satisfied
// by a catch-all. Until it is matched it counts as refutable and renders
// as "_" in a missed case.
func fillerPattern() Tree {
	return Tree{Tag: types.TagTypeVar}
}

// FromSumType builds the per-constructor child list for a tagged union.
// d is marked as being unfolded for the duration of the call, so a variant
// that refers back to d (directly or through a tuple/struct field, e.g.
// `List 't = None | Cons ('t, List 't)`) does not recurse forever: the
// recursive occurrence is reduced to a filler leaf, the same way size.go's
// SizeInBits boxes a self-referential occurrence rather than unrolling it.
func FromSumType(d *types.Data) Tree {
	return fromSumType(d, map[*types.Data]bool{d: true})
}

// FromTuple builds one child per tuple element.
func FromTuple(elems []types.Type) Tree {
	return fromTuple(elems, map[*types.Data]bool{})
}

// FromType builds the exhaustiveness tree shape for a scrutinee's type:
// a tagged union fans out per-constructor, a struct/tuple fans out
// per-field, a type variable is a filler leaf, and anything else is a
// plain leaf identified by its tag.
func FromType(t types.Type) Tree {
	return fromType(t, map[*types.Data]bool{})
}

func fromType(t types.Type, visiting map[*types.Data]bool) Tree {
	switch v := types.Unwrap(t).(type) {
	case *types.Data:
		if visiting[v] {
			return fillerPattern()
		}
		visiting[v] = true
		defer delete(visiting, v)
		if len(v.Tags) > 0 {
			return fromSumType(v, visiting)
		}
		tree := fromTuple(v.Elems, visiting)
		tree.Tag = types.TagData
		tree.Name = v.Name
		return tree
	case *types.Tuple:
		return fromTuple(v.Elems, visiting)
	case *types.TypeVar:
		return fillerPattern()
	default:
		return Tree{Tag: v.Tag()}
	}
}

func fromSumType(d *types.Data, visiting map[*types.Data]bool) Tree {
	t := Tree{Tag: types.TagTaggedUnion, Name: d.Name}
	for i, tag := range d.Tags {
		var child Tree
		if i < len(d.Elems) {
			child = fromType(d.Elems[i], visiting)
		} else {
			child = fillerPattern()
		}
		child.Name = tag.Name
		t.Children = append(t.Children, child)
	}
	return t
}

func fromTuple(elems []types.Type, visiting map[*types.Data]bool) Tree {
	t := Tree{Tag: types.TagTuple}
	for _, e := range elems {
		t.Children = append(t.Children, fromType(e, visiting))
	}
	return t
}

// Overwrite folds one source branch's shape into the tree in place. It
// compares other against this node only: when the tags agree and the
// names agree (or other is unnamed), the node is marked matched as a
// whole, and a type-variable node adopts other's shape and is marked
// matched. It does not descend: other's children are not compared with
// this node's children. Any other combination is a shape conflict — the
// branch's pattern names a type different from what was inferred here —
// and is reported rather than silently accepted, since it signals the
// branch can never actually match the scrutinee's real type.
func (t *Tree) Overwrite(other Tree) error {
	if t.Tag == other.Tag && (t.Name == other.Name || other.Name == "") {
		t.Matched = true
		return nil
	}

	if t.Tag == types.TagTypeVar {
		t.Tag = other.Tag
		t.Name = other.Name
		t.Children = other.Children
		t.Matched = true
		return nil
	}

	return fmt.Errorf("conflicting types in pattern: inferred %s, but found %s", t.describeSelf(), other.describeSelf())
}

func (t *Tree) describeSelf() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("tag(%d)", t.Tag)
}

// SetMatched marks t (and only t, not its children) as satisfied by a
// catch-all or variable pattern.
func (t *Tree) SetMatched() { t.Matched = true }

// Irrefutable reports whether every possible value of the scrutinee's
// type is covered by the branches folded in so far.
func (t *Tree) Irrefutable() bool {
	if t.Matched {
		return true
	}
	if len(t.Children) == 0 {
		return false
	}
	for i := range t.Children {
		if !t.Children[i].Irrefutable() {
			return false
		}
	}
	return true
}

// ConstructMissedCase walks the first unmatched child at each level to
// build a concrete counter-example, e.g. "Cons(_, None)".
func (t *Tree) ConstructMissedCase() string {
	if t.Irrefutable() {
		panic("pattern: ConstructMissedCase called on an irrefutable tree")
	}

	switch t.Tag {
	case types.TagTaggedUnion, types.TagData:
		for i := range t.Children {
			if !t.Children[i].Irrefutable() {
				return t.Children[i].ConstructMissedCase()
			}
		}
		panic("pattern: tree reports refutable but every child is irrefutable")
	case types.TagTuple:
		parts := make([]string, len(t.Children))
		for i := range t.Children {
			if !t.Children[i].Irrefutable() {
				parts[i] = t.Children[i].ConstructMissedCase()
			} else {
				parts[i] = "_"
			}
		}
		args := "(" + strings.Join(parts, ", ") + ")"
		if t.Name == "" {
			return args
		}
		if len(t.Children) == 0 {
			return t.Name
		}
		return t.Name + args
	case types.TagTypeVar:
		return "_"
	default:
		if t.Name != "" {
			return t.Name
		}
		return "_"
	}
}
