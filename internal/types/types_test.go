package types_test

import (
	"testing"

	"github.com/antec-lang/antec/internal/lexer"
	"github.com/antec-lang/antec/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitivesAreCanonical(t *testing.T) {
	u := types.NewUniverse()
	assert.Same(t, u.GetI32(), u.GetI32())
	assert.NotSame(t, types.Type(u.GetI32()), types.Type(u.GetI64()))
}

func TestStructurallyEqualCompositesAreHandleIdentical(t *testing.T) {
	u := types.NewUniverse()
	a := u.GetArray(u.GetI32(), 4)
	b := u.GetArray(u.GetI32(), 4)
	assert.Same(t, a, b)

	t1 := u.GetTuple([]types.Type{u.GetI32(), u.GetBool()})
	t2 := u.GetTuple([]types.Type{u.GetI32(), u.GetBool()})
	assert.Same(t, t1, t2)

	f1 := u.GetFunction(u.GetI32(), []types.Type{u.GetBool()})
	f2 := u.GetFunction(u.GetI32(), []types.Type{u.GetBool()})
	assert.Same(t, f1, f2)
}

func TestModifierOrderDoesNotAffectCanonicalization(t *testing.T) {
	u := types.NewUniverse()
	m1 := u.GetModifier(u.GetI32(), []lexer.Kind{lexer.Mut, lexer.Let})
	m2 := u.GetModifier(u.GetI32(), []lexer.Kind{lexer.Let, lexer.Mut})
	assert.Same(t, m1, m2)
}

func TestNamedTypeStubThenComplete(t *testing.T) {
	u := types.NewUniverse()
	stub := u.GetNamed("Point")
	assert.True(t, stub.IsStub())

	complete, err := u.CreateNamed("Point", []string{"x", "y"}, []types.Type{u.GetI32(), u.GetI32()}, nil, nil)
	require.NoError(t, err)
	assert.Same(t, stub, complete)
	assert.False(t, stub.IsStub())

	_, err = u.CreateNamed("Point", nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestUnionTagLookup(t *testing.T) {
	u := types.NewUniverse()
	option := u.GetNamed("Option")
	tags := []types.UnionTag{{Name: "Some", Val: 0}, {Name: "None", Val: 1}}
	_, err := u.CreateNamed("Option", nil, []types.Type{u.GetI32(), u.GetUnit()}, tags, nil)
	require.NoError(t, err)

	val, ok := option.GetTagVal("None")
	require.True(t, ok)
	assert.EqualValues(t, 1, val)

	_, ok = option.GetTagVal("Neither")
	assert.False(t, ok)
}

func TestSizeInBitsRecursionBehindPtrNeedsNoForce(t *testing.T) {
	u := types.NewUniverse()
	list := u.GetNamed("List")
	_, err := u.CreateNamed("List", []string{"head", "tail"}, []types.Type{u.GetI32(), u.GetPtr(list)}, nil, nil)
	require.NoError(t, err)

	_, err = types.SizeInBits(list, false)
	assert.NoError(t, err) // the recursive occurrence is behind a Ptr, always sized

	tuple := u.GetTuple([]types.Type{u.GetI32(), u.GetI64()})
	bits, err := types.SizeInBits(tuple, false)
	require.NoError(t, err)
	assert.Equal(t, 96, bits)
}

func TestSizeInBitsUnboundTypeVarFailsWithoutForce(t *testing.T) {
	tv := types.NewUniverse().GetTypeVar("t")
	_, err := types.SizeInBits(tv, false)
	require.Error(t, err)
	var sizeErr *types.SizeError
	require.ErrorAs(t, err, &sizeErr)

	bits, err := types.SizeInBits(tv, true)
	require.NoError(t, err)
	assert.Equal(t, 64, bits)
}

func TestInstantiateGeneric(t *testing.T) {
	u := types.NewUniverse()
	tv := u.GetTypeVar("t")
	box := u.GetNamed("Box")
	_, err := u.CreateNamed("Box", []string{"value"}, []types.Type{tv}, nil, []*types.TypeVar{tv})
	require.NoError(t, err)

	boxI32 := u.Instantiate(box, []types.Type{u.GetI32()})
	assert.Same(t, box, boxI32.Unbound)
	assert.Same(t, u.GetI32(), boxI32.Elems[0])

	again := u.Instantiate(box, []types.Type{u.GetI32()})
	assert.Same(t, boxI32, again)
}
