package module_test

import (
	"testing"

	"github.com/antec-lang/antec/internal/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChildIdempotent(t *testing.T) {
	root := module.NewRoot()
	a := root.AddChild("Foo")
	b := root.AddChild("Foo")
	assert.Same(t, a, b)
}

func TestAddPathCreatesIntermediates(t *testing.T) {
	root := module.NewRoot()
	leaf := root.AddPath([]string{"Std", "Io", "File"})
	require.Equal(t, "File", leaf.Name())

	found, ok := root.FindPath([]string{"Std", "Io", "File"})
	require.True(t, ok)
	assert.Same(t, leaf, found)

	_, ok = root.FindPath([]string{"Std", "Net"})
	assert.False(t, ok)
}

func TestFindChildMissing(t *testing.T) {
	root := module.NewRoot()
	_, ok := root.FindChild("Nope")
	assert.False(t, ok)
}

func TestNormalizePathStripsDotsAndExtension(t *testing.T) {
	assert.Equal(t, []string{"Std", "Io", "File"}, module.NormalizePath("./std/io/file.an"))
	assert.Equal(t, []string{"Util"}, module.NormalizePath("util.an"))
	assert.Equal(t, []string{"A", "B"}, module.NormalizePath(`a\b`))
	assert.Empty(t, module.NormalizePath("."))
}

func TestSetModuleOverrides(t *testing.T) {
	root := module.NewRoot()
	node := root.AddChild("Main")
	assert.Nil(t, node.Module())

	node.SetModule(&module.Source{Path: "main.an"})
	require.NotNil(t, node.Module())
	assert.Equal(t, "main.an", node.Module().Path)
}
