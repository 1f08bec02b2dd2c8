package types

import "fmt"

var primitiveBits = map[Tag]int{
	TagI8: 8, TagI16: 16, TagI32: 32, TagI64: 64,
	TagU8: 8, TagU16: 16, TagU32: 32, TagU64: 64,
	TagF16: 16, TagF32: 32, TagF64: 64,
	TagBool: 8, TagChar: 32, TagUnit: 0,
}

const pointerBits = 64

// SizeError reports that a type's size could not be computed, naming the
// type that blocked it: a named type that is still an open stub, a named
// type met again inside itself without force, or a type variable without
// force.
type SizeError struct {
	Incomplete string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("cannot size incomplete type %q", e.Incomplete)
}

// SizeInBits computes t's bit width. A Ptr is always pointerBits wide, so
// a named type that refers to itself only through a Ptr sizes normally.
// A named type that contains itself directly (not behind a Ptr) cannot be
// sized without force=true, in which case the recursive occurrence is counted
// as a single pointerBits-wide slot, matching how a self-referential data
// type is actually laid out (boxed behind a pointer at the backend).
func SizeInBits(t Type, force bool) (int, error) {
	return sizeInBits(t, force, map[*Data]bool{})
}

func sizeInBits(t Type, force bool, visiting map[*Data]bool) (int, error) {
	switch v := t.(type) {
	case *Primitive:
		return primitiveBits[v.tag], nil
	case *Ptr:
		return pointerBits, nil
	case *Array:
		if v.Len == 0 {
			return 0, nil
		}
		elemBits, err := sizeInBits(v.Elem, force, visiting)
		if err != nil {
			return 0, err
		}
		return elemBits * v.Len, nil
	case *Tuple:
		return sizeOfFields(v.Elems, force, visiting)
	case *Function:
		return pointerBits, nil
	case *TypeVar:
		if !force {
			return 0, &SizeError{Incomplete: "'" + v.Name}
		}
		return pointerBits, nil
	case *Modifier:
		return sizeInBits(v.Elem, force, visiting)
	case *Data:
		if v.IsStub() {
			return 0, &SizeError{Incomplete: v.Name}
		}
		if visiting[v] {
			if !force {
				return 0, &SizeError{Incomplete: v.Name}
			}
			return pointerBits, nil
		}
		visiting[v] = true
		defer delete(visiting, v)

		if len(v.Tags) > 0 {
			return sizeOfUnion(v, force, visiting)
		}
		return sizeOfFields(v.Elems, force, visiting)
	default:
		return 0, fmt.Errorf("types: SizeInBits: unhandled type %T", t)
	}
}

func sizeOfFields(elems []Type, force bool, visiting map[*Data]bool) (int, error) {
	total := 0
	for _, e := range elems {
		bits, err := sizeInBits(e, force, visiting)
		if err != nil {
			return 0, err
		}
		total += bits
	}
	return total, nil
}

// sizeOfUnion sizes a tagged union as a discriminant tag plus the widest
// variant payload, matching a C-style tagged union layout.
func sizeOfUnion(d *Data, force bool, visiting map[*Data]bool) (int, error) {
	const tagBits = 16
	widest := 0
	for _, variant := range d.Elems {
		bits, err := sizeInBits(variant, force, visiting)
		if err != nil {
			return 0, err
		}
		if bits > widest {
			widest = bits
		}
	}
	return tagBits + widest, nil
}
