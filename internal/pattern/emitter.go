// Package pattern implements the pattern-matching compiler (§4.F): it
// lowers a match expression's surface patterns into control flow through
// an abstract Emitter, and separately tracks pattern exhaustiveness via a
// Tree built from the scrutinee's type.
package pattern

import "github.com/antec-lang/antec/internal/types"

// Value, Block, and Function are opaque handles owned by whatever
// Emitter implementation is in play; the pattern compiler never inspects
// them, only passes them back through the Emitter interface.
type Value interface{}
type Block interface{}
type Function interface{}

// PhiEdge is one incoming edge to a Phi node: the value produced by a
// branch, and the block it was produced in.
type PhiEdge struct {
	Block Block
	Value Value
}

// Emitter is the control-flow and value-construction surface the pattern
// compiler lowers onto (§6). A real backend implements it against actual
// IR; internal/emitter.Recorder implements it for tests.
type Emitter interface {
	ExtractField(v Value, index int) Value
	Bitcast(v Value, target types.Type) Value
	StructGepLoad(v Value, index int) Value
	IcmpEq(a, b Value) Value
	FcmpOeq(a, b Value) Value
	StrEq(a, b Value) Value
	CondBr(cond Value, onTrue, onFalse Block)
	Br(target Block)
	SetInsertPoint(b Block)
	NewBlock(label string) Block
	Phi(result types.Type, edges []PhiEdge) Value
	Undef(t types.Type) Value
	AddrOf(v Value) Value
	GetUnitLiteral() Value
	ConstInt(value int64, t types.Type) Value
	CurrentFunction() Function
	CurrentBlock() Block
}
