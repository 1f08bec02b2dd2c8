package pattern

import (
	"fmt"

	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/types"
)

// Branch is one match arm: its surface pattern and a callback that
// compiles the arm's body once the pattern's bindings are in scope,
// returning the value the arm produces.
type Branch struct {
	Pattern ast.Node
	Emit    func(Emitter) Value
}

// Bind is called once per catch-all/constructor binder a pattern
// introduces, so the caller's value environment can be updated before
// Branch.Emit runs.
type Bind func(name string, v Value)

// EarlyReturn is returned by Branch.Emit bodies that already transferred
// control (an early `return`): CompileMatch excludes them from the final
// merge, matching the original "branches that returned early do not
// reach end_match" behavior.
type EarlyReturn struct{ Value Value }

func isEarlyReturn(v Value) (EarlyReturn, bool) {
	er, ok := v.(EarlyReturn)
	return er, ok
}

// EvalLiteral evaluates a literal pattern node (IntLit/FltLit/StrLit) the
// same way the expression compiler would, producing the Value a literal
// test compares the scrutinee against. The pattern compiler never
// constructs literal constants itself — it defers to whatever expression
// lowering the caller already has, so int/float/string literal syntax
// stays defined in exactly one place.
type EvalLiteral func(ast.Node) Value

// CompileMatch lowers branches in order against scrutinee (of type
// scrutineeType), emitting through e, and returns the merged result value.
//
// A malformed pattern — wrong tuple arity, a tuple pattern against a
// non-tuple scrutinee, an unknown constructor name — is a Pattern error
// per spec §7: it aborts the containing match expression by way of a
// returned error, not a panic, so a caller (e.g. the expression compiler)
// can report a diagnostic and keep compiling the rest of the program.
func CompileMatch(e Emitter, scrutinee Value, scrutineeType types.Type, branches []Branch, bind Bind, evalLiteral EvalLiteral) (Value, error) {
	endMatch := e.NewBlock("end_match")

	type mergeEdge struct {
		block Block
		value Value
	}
	var merges []mergeEdge

	for i, branch := range branches {
		var failBlock Block
		last := i == len(branches)-1
		if last {
			failBlock = endMatch
		} else {
			failBlock = e.NewBlock("end_pattern")
		}

		if err := handlePattern(e, branch.Pattern, failBlock, scrutinee, scrutineeType, bind, evalLiteral); err != nil {
			return nil, err
		}
		result := branch.Emit(e)

		if er, ok := isEarlyReturn(result); ok {
			result = er.Value
		} else {
			merges = append(merges, mergeEdge{block: e.CurrentBlock(), value: result})
			e.Br(endMatch)
		}

		if !last {
			e.SetInsertPoint(failBlock)
		}
	}

	e.SetInsertPoint(endMatch)

	if len(merges) == 0 {
		return e.GetUnitLiteral(), nil
	}

	edges := make([]PhiEdge, len(merges))
	for i, m := range merges {
		edges[i] = PhiEdge{Block: m.block, Value: m.value}
	}
	return e.Phi(scrutineeType, edges), nil
}

// handlePattern dispatches on pattern shape and emits the test (if any)
// plus a conditional branch to failBlock on mismatch.
func handlePattern(e Emitter, pat ast.Node, failBlock Block, val Value, valType types.Type, bind Bind, evalLiteral EvalLiteral) error {
	switch p := pat.(type) {
	case *ast.Var:
		matchVar(p, val, bind)
	case *ast.IntLit:
		matchLiteral(e, failBlock, val, evalLiteral(p), false)
	case *ast.FltLit:
		matchLiteral(e, failBlock, val, evalLiteral(p), true)
	case *ast.StrLit:
		matchStrLiteral(e, failBlock, val, evalLiteral(p))
	case *ast.Tuple:
		return matchTuple(e, p, failBlock, val, valType, bind, evalLiteral)
	case *ast.TypeCast:
		name := p.Type.Name
		var binders []ast.Node
		if tup, ok := p.Expr.(*ast.Tuple); ok {
			binders = tup.Elems
		} else if p.Expr != nil {
			binders = []ast.Node{p.Expr}
		}
		return matchVariant(e, name, binders, failBlock, val, valType, bind, evalLiteral)
	case *ast.TypeExpr:
		return matchVariant(e, p.Name, nil, failBlock, val, valType, bind, evalLiteral)
	default:
		return fmt.Errorf("pattern: unsupported pattern shape %T", pat)
	}
	return nil
}

// matchVar binds the catch-all identifier to the scrutinee value. A
// pattern named "_" is never bound, by convention.
func matchVar(p *ast.Var, val Value, bind Bind) {
	if p.Name == "_" {
		return
	}
	bind(p.Name, val)
}

func matchLiteral(e Emitter, failBlock Block, val, constant Value, isFloat bool) {
	var eq Value
	if isFloat {
		eq = e.FcmpOeq(val, constant)
	} else {
		eq = e.IcmpEq(val, constant)
	}
	onSuccess := e.NewBlock("match")
	e.CondBr(eq, onSuccess, failBlock)
	e.SetInsertPoint(onSuccess)
}

func matchStrLiteral(e Emitter, failBlock Block, val, constant Value) {
	eq := e.StrEq(val, constant)
	onSuccess := e.NewBlock("match")
	e.CondBr(eq, onSuccess, failBlock)
	e.SetInsertPoint(onSuccess)
}

// matchTuple requires valType to be a tuple of matching arity, extracts
// each field, and recurses.
func matchTuple(e Emitter, p *ast.Tuple, failBlock Block, val Value, valType types.Type, bind Bind, evalLiteral EvalLiteral) error {
	tup, ok := types.Unwrap(valType).(*types.Tuple)
	if !ok {
		return fmt.Errorf("pattern: cannot match tuple pattern against a non-tuple type")
	}
	if len(p.Elems) != len(tup.Elems) {
		return fmt.Errorf("pattern: cannot match a tuple of size %d to a pattern of size %d", len(tup.Elems), len(p.Elems))
	}
	for i, elemPat := range p.Elems {
		elemVal := e.ExtractField(val, i)
		if err := handlePattern(e, elemPat, failBlock, elemVal, tup.Elems[i], bind, evalLiteral); err != nil {
			return err
		}
	}
	return nil
}

// matchVariant loads (or, for a pure enum, directly reads) the tag from
// val, compares it against the constructor's ordinal, and on success
// recurses into any sub-patterns over the variant's payload fields.
func matchVariant(e Emitter, ctorName string, binders []ast.Node, failBlock Block, val Value, valType types.Type, bind Bind, evalLiteral EvalLiteral) error {
	data, ok := types.Unwrap(valType).(*types.Data)
	if !ok {
		return fmt.Errorf("pattern: cannot match a constructor pattern against a non-union type")
	}
	tagVal, ok := data.GetTagVal(ctorName)
	if !ok {
		return fmt.Errorf("pattern: %q is not a constructor of %s", ctorName, data.Name)
	}
	tagConst := e.ConstInt(int64(tagVal), types.Unwrap(valType))

	var tag Value
	if len(data.Elems) > 0 {
		tag = e.ExtractField(val, 0)
	} else {
		tag = val
	}

	eq := e.IcmpEq(tag, tagConst)
	onSuccess := e.NewBlock("match")
	e.CondBr(eq, onSuccess, failBlock)
	e.SetInsertPoint(onSuccess)

	if len(binders) == 0 {
		return nil
	}

	variantFieldTypes := payloadTypes(data, ctorName)
	if len(variantFieldTypes) == 0 {
		bindUnit(e, binders, bind)
		return nil
	}

	addr := e.AddrOf(val)
	cast := e.Bitcast(addr, data)
	for i, binder := range binders {
		field := e.StructGepLoad(cast, i+1)
		if err := handlePattern(e, binder, failBlock, field, variantFieldTypes[i], bind, evalLiteral); err != nil {
			return err
		}
	}
	return nil
}

func bindUnit(e Emitter, binders []ast.Node, bind Bind) {
	unit := e.GetUnitLiteral()
	for _, b := range binders {
		if v, ok := b.(*ast.Var); ok {
			matchVar(v, unit, bind)
		}
	}
}

// payloadTypes returns the field types a named constructor carries. The
// original compiler stores one flattened Elems list per data type shared
// across variants; here each UnionTag's payload is looked up positionally
// by matching Tags order to Elems order, since both are built together by
// internal/types.Universe.CreateNamed.
func payloadTypes(data *types.Data, ctorName string) []types.Type {
	for i, t := range data.Tags {
		if t.Name == ctorName && i < len(data.Elems) {
			if tup, ok := data.Elems[i].(*types.Tuple); ok {
				return tup.Elems
			}
			return []types.Type{data.Elems[i]}
		}
	}
	return nil
}
