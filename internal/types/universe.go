package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antec-lang/antec/internal/lexer"
)

// Universe is the canonicalization table set: one map per structural
// category, mirroring the original compiler's AnTypeContainer. A
// Universe is not safe for concurrent use; §5 scopes one Universe to one
// single-threaded compilation.
type Universe struct {
	primitives map[Tag]*Primitive
	ptrs       map[string]*Ptr
	arrays     map[string]*Array
	tuples     map[string]*Tuple
	functions  map[string]*Function
	typeVars   map[string]*TypeVar
	modifiers  map[string]*Modifier
	named      map[string]*Data
}

// NewUniverse returns an empty, ready-to-use type universe.
func NewUniverse() *Universe {
	return &Universe{
		primitives: make(map[Tag]*Primitive),
		ptrs:       make(map[string]*Ptr),
		arrays:     make(map[string]*Array),
		tuples:     make(map[string]*Tuple),
		functions:  make(map[string]*Function),
		typeVars:   make(map[string]*TypeVar),
		modifiers:  make(map[string]*Modifier),
		named:      make(map[string]*Data),
	}
}

func (u *Universe) GetPrimitive(tag Tag) *Primitive {
	if p, ok := u.primitives[tag]; ok {
		return p
	}
	p := &Primitive{tag: tag}
	u.primitives[tag] = p
	return p
}

func (u *Universe) GetI8() *Primitive   { return u.GetPrimitive(TagI8) }
func (u *Universe) GetI16() *Primitive  { return u.GetPrimitive(TagI16) }
func (u *Universe) GetI32() *Primitive  { return u.GetPrimitive(TagI32) }
func (u *Universe) GetI64() *Primitive  { return u.GetPrimitive(TagI64) }
func (u *Universe) GetU8() *Primitive   { return u.GetPrimitive(TagU8) }
func (u *Universe) GetU16() *Primitive  { return u.GetPrimitive(TagU16) }
func (u *Universe) GetU32() *Primitive  { return u.GetPrimitive(TagU32) }
func (u *Universe) GetU64() *Primitive  { return u.GetPrimitive(TagU64) }
func (u *Universe) GetF16() *Primitive  { return u.GetPrimitive(TagF16) }
func (u *Universe) GetF32() *Primitive  { return u.GetPrimitive(TagF32) }
func (u *Universe) GetF64() *Primitive  { return u.GetPrimitive(TagF64) }
func (u *Universe) GetBool() *Primitive { return u.GetPrimitive(TagBool) }
func (u *Universe) GetChar() *Primitive { return u.GetPrimitive(TagChar) }
func (u *Universe) GetUnit() *Primitive { return u.GetPrimitive(TagUnit) }

func (u *Universe) GetPtr(elem Type) *Ptr {
	key := "*" + elem.key()
	if p, ok := u.ptrs[key]; ok {
		return p
	}
	p := &Ptr{Elem: elem}
	u.ptrs[key] = p
	return p
}

func (u *Universe) GetArray(elem Type, length int) *Array {
	key := fmt.Sprintf("[%d]%s", length, elem.key())
	if a, ok := u.arrays[key]; ok {
		return a
	}
	a := &Array{Elem: elem, Len: length}
	u.arrays[key] = a
	return a
}

func (u *Universe) GetTuple(elems []Type) *Tuple {
	key := "(" + joinKeys(elems) + ")"
	if t, ok := u.tuples[key]; ok {
		return t
	}
	t := &Tuple{Elems: elems}
	u.tuples[key] = t
	return t
}

func (u *Universe) GetFunction(ret Type, params []Type) *Function {
	key := joinKeys(params) + "->" + ret.key()
	if f, ok := u.functions[key]; ok {
		return f
	}
	f := &Function{Ret: ret, Params: params}
	u.functions[key] = f
	return f
}

func (u *Universe) GetTypeVar(name string) *TypeVar {
	if tv, ok := u.typeVars[name]; ok {
		return tv
	}
	tv := &TypeVar{Name: name}
	u.typeVars[name] = tv
	return tv
}

// GetModifier returns the canonical modifier wrapping elem with mods,
// normalizing mods to a sorted, deduplicated order first so that `mut ante`
// and `ante mut` canonicalize to the same handle.
func (u *Universe) GetModifier(elem Type, mods []lexer.Kind) *Modifier {
	norm := normalizeModifiers(mods)
	var sb strings.Builder
	for _, m := range norm {
		fmt.Fprintf(&sb, "%d ", m)
	}
	key := sb.String() + elem.key()
	if m, ok := u.modifiers[key]; ok {
		return m
	}
	m := &Modifier{Elem: elem, Modifiers: norm}
	u.modifiers[key] = m
	return m
}

func normalizeModifiers(mods []lexer.Kind) []lexer.Kind {
	seen := make(map[lexer.Kind]bool, len(mods))
	var out []lexer.Kind
	for _, m := range mods {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GetNamed returns the named type's stub, minting one on first reference.
// A stub returned here may later be completed in place by CreateNamed; any
// Type value holding a *Data pointer observes the completion without
// needing to be re-looked-up, since the fields are filled by mutating the
// same struct the stub is.
func (u *Universe) GetNamed(name string) *Data {
	if d, ok := u.named[name]; ok {
		return d
	}
	d := &Data{Name: name}
	u.named[name] = d
	return d
}

// CreateNamed completes the stub for name with its field layout, or fails
// if the stub was already completed — named types are defined exactly
// once.
func (u *Universe) CreateNamed(name string, fields []string, elems []Type, tags []UnionTag, generics []*TypeVar) (*Data, error) {
	d := u.GetNamed(name)
	if !d.IsStub() {
		return nil, fmt.Errorf("type %s already defined", name)
	}
	d.Fields = fields
	d.Elems = elems
	d.Tags = tags
	d.Generics = generics
	return d, nil
}

// Instantiate binds a generic named type's type variables to concrete
// arguments, producing (and canonicalizing) a new Data whose Unbound
// points back at the generic template.
func (u *Universe) Instantiate(generic *Data, args []Type) *Data {
	if len(args) != len(generic.Generics) {
		panic("types: Instantiate called with wrong argument count")
	}
	sub := make(map[*TypeVar]Type, len(args))
	for i, tv := range generic.Generics {
		sub[tv] = args[i]
	}

	var parts []string
	for _, a := range args {
		parts = append(parts, a.key())
	}
	name := generic.Name + "<" + strings.Join(parts, ",") + ">"
	if existing, ok := u.named[name]; ok {
		return existing
	}

	elems := make([]Type, len(generic.Elems))
	for i, e := range generic.Elems {
		elems[i] = substitute(u, e, sub)
	}
	inst := &Data{
		Name:    name,
		Fields:  generic.Fields,
		Elems:   elems,
		Tags:    generic.Tags,
		Unbound: generic,
	}
	u.named[name] = inst
	return inst
}

func substitute(u *Universe, t Type, sub map[*TypeVar]Type) Type {
	switch v := t.(type) {
	case *TypeVar:
		if repl, ok := sub[v]; ok {
			return repl
		}
		return v
	case *Ptr:
		return u.GetPtr(substitute(u, v.Elem, sub))
	case *Array:
		return u.GetArray(substitute(u, v.Elem, sub), v.Len)
	case *Tuple:
		elems := make([]Type, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = substitute(u, e, sub)
		}
		return u.GetTuple(elems)
	case *Function:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = substitute(u, p, sub)
		}
		return u.GetFunction(substitute(u, v.Ret, sub), params)
	case *Modifier:
		return u.GetModifier(substitute(u, v.Elem, sub), v.Modifiers)
	default:
		return t
	}
}
