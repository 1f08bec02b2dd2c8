// Package emitter provides Recorder, a reference implementation of
// pattern.Emitter used by pattern-compiler tests and by anything that
// wants to inspect the control flow CompileMatch produces without a
// real code generator behind it. It borrows the SSA-flavored Value and
// BasicBlock shapes of internal/ir, but it does not lower to machine
// code or LLVM IR — that stays out of scope (Non-goals: codegen, JIT,
// optimizer).
package emitter

import (
	"fmt"

	"github.com/antec-lang/antec/internal/pattern"
	"github.com/antec-lang/antec/internal/types"
)

// ValueKind distinguishes how a recorded Value came to exist.
type ValueKind int

const (
	ValueTemporary ValueKind = iota
	ValueConstant
	ValueUndef
	ValueUnit
	ValuePhi
)

// Val is the concrete handle Recorder hands back through the opaque
// pattern.Value interface.
type Val struct {
	ID    int
	Kind  ValueKind
	Type  types.Type
	Const int64
	Note  string
}

func (v *Val) String() string {
	if v.Note != "" {
		return v.Note
	}
	return fmt.Sprintf("%%%d", v.ID)
}

// Instr is one recorded operation, kept in program order inside its
// owning Blk for later inspection by tests.
type Instr struct {
	Op     string
	Args   []*Val
	Result *Val
}

func (i *Instr) String() string {
	s := i.Op
	for _, a := range i.Args {
		s += " " + a.String()
	}
	if i.Result != nil {
		return fmt.Sprintf("%s = %s", i.Result, s)
	}
	return s
}

// Blk is a recorded basic block: a label and the instructions emitted
// into it while it was the insertion point.
type Blk struct {
	Label  string
	Instrs []*Instr
	Term   string // terminator description, e.g. "br end_match" or "condbr %3 match.1 end_pattern.1"
}

// Fn is the single function Recorder emits into. CompileMatch never
// creates new functions, so one is enough.
type Fn struct {
	Name   string
	Blocks []*Blk
}

// Recorder implements pattern.Emitter by appending instructions to
// whichever block is current, rather than generating real code. Tests
// construct one, drive pattern.CompileMatch against it, and then
// inspect Fn.Blocks to assert on the control flow that was produced.
type Recorder struct {
	Fn *Fn

	Universe *types.Universe

	cur     *Blk
	nextID  int
	nextBlk int
}

// New returns a Recorder with one entry block already current, backed
// by its own type universe so recorded bool/unit values stay canonical
// across calls.
func New() *Recorder {
	entry := &Blk{Label: "entry"}
	r := &Recorder{
		Fn:       &Fn{Name: "match", Blocks: []*Blk{entry}},
		Universe: types.NewUniverse(),
	}
	r.cur = entry
	return r
}

func (r *Recorder) value(kind ValueKind, t types.Type, note string) *Val {
	r.nextID++
	return &Val{ID: r.nextID, Kind: kind, Type: t, Note: note}
}

func (r *Recorder) emit(op string, result *Val, args ...*Val) *Val {
	r.cur.Instrs = append(r.cur.Instrs, &Instr{Op: op, Args: args, Result: result})
	return result
}

func asVal(v pattern.Value) *Val {
	val, ok := v.(*Val)
	if !ok {
		panic(fmt.Sprintf("emitter: expected *Val, got %T", v))
	}
	return val
}

func asBlk(b pattern.Block) *Blk {
	blk, ok := b.(*Blk)
	if !ok {
		panic(fmt.Sprintf("emitter: expected *Blk, got %T", b))
	}
	return blk
}

func (r *Recorder) ExtractField(v pattern.Value, index int) pattern.Value {
	result := r.value(ValueTemporary, nil, "")
	return r.emit(fmt.Sprintf("extractfield[%d]", index), result, asVal(v))
}

func (r *Recorder) Bitcast(v pattern.Value, target types.Type) pattern.Value {
	result := r.value(ValueTemporary, target, "")
	return r.emit("bitcast", result, asVal(v))
}

func (r *Recorder) StructGepLoad(v pattern.Value, index int) pattern.Value {
	result := r.value(ValueTemporary, nil, "")
	return r.emit(fmt.Sprintf("gepload[%d]", index), result, asVal(v))
}

func (r *Recorder) IcmpEq(a, b pattern.Value) pattern.Value {
	result := r.value(ValueTemporary, r.Universe.GetBool(), "")
	return r.emit("icmp.eq", result, asVal(a), asVal(b))
}

func (r *Recorder) FcmpOeq(a, b pattern.Value) pattern.Value {
	result := r.value(ValueTemporary, r.Universe.GetBool(), "")
	return r.emit("fcmp.oeq", result, asVal(a), asVal(b))
}

func (r *Recorder) StrEq(a, b pattern.Value) pattern.Value {
	result := r.value(ValueTemporary, r.Universe.GetBool(), "")
	return r.emit("streq", result, asVal(a), asVal(b))
}

func (r *Recorder) CondBr(cond pattern.Value, onTrue, onFalse pattern.Block) {
	r.cur.Term = fmt.Sprintf("condbr %s %s %s", asVal(cond), asBlk(onTrue).Label, asBlk(onFalse).Label)
}

func (r *Recorder) Br(target pattern.Block) {
	r.cur.Term = fmt.Sprintf("br %s", asBlk(target).Label)
}

func (r *Recorder) SetInsertPoint(b pattern.Block) {
	r.cur = asBlk(b)
}

func (r *Recorder) NewBlock(label string) pattern.Block {
	r.nextBlk++
	blk := &Blk{Label: fmt.Sprintf("%s.%d", label, r.nextBlk)}
	r.Fn.Blocks = append(r.Fn.Blocks, blk)
	return blk
}

func (r *Recorder) Phi(result types.Type, edges []pattern.PhiEdge) pattern.Value {
	v := r.value(ValuePhi, result, "")
	args := make([]*Val, len(edges))
	for i, e := range edges {
		args[i] = asVal(e.Value)
	}
	return r.emit(fmt.Sprintf("phi[%s]", blockLabels(edges)), v, args...)
}

func blockLabels(edges []pattern.PhiEdge) string {
	s := ""
	for i, e := range edges {
		if i > 0 {
			s += ","
		}
		s += asBlk(e.Block).Label
	}
	return s
}

func (r *Recorder) Undef(t types.Type) pattern.Value {
	return r.value(ValueUndef, t, "undef")
}

func (r *Recorder) AddrOf(v pattern.Value) pattern.Value {
	result := r.value(ValueTemporary, nil, "")
	return r.emit("addrof", result, asVal(v))
}

func (r *Recorder) GetUnitLiteral() pattern.Value {
	return r.value(ValueUnit, r.Universe.GetUnit(), "unit")
}

func (r *Recorder) ConstInt(value int64, t types.Type) pattern.Value {
	v := r.value(ValueConstant, t, "")
	v.Const = value
	return v
}

func (r *Recorder) CurrentFunction() pattern.Function { return r.Fn }

func (r *Recorder) CurrentBlock() pattern.Block { return r.cur }
