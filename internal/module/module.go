// Package module implements the virtual, multi-root module tree: the
// working directory, every -I include path, and the standard library
// root are all grafted into one namespace so that an import statement
// never needs to know which physical root a module actually lives under.
package module

import "strings"

// Tree is one node in the virtual module tree. A node's Module is nil
// until a source file is attached to it (Discover attaches one for every
// .an file it finds), which lets the tree record "this name exists" (a
// directory, or a forward-declared import) with no file behind it.
type Tree struct {
	name     string
	mod      *Source
	children map[string]*Tree
}

// Source is the content backing a tree node. Discover sets Path when it
// attaches a Source; no code in this repository sets Root.
type Source struct {
	Path string
	Root interface{} // *ast.Root, kept as interface{} to avoid an import cycle
}

// NewRoot returns a fresh, empty root node. Unlike the original compiler's
// single process-wide root, Tree is not a package global: each
// compilation owns its own root so tests (and, eventually, concurrent
// compilations) don't share mutable state.
func NewRoot() *Tree {
	return &Tree{children: make(map[string]*Tree)}
}

func (t *Tree) Name() string    { return t.name }
func (t *Tree) Module() *Source { return t.mod }
func (t *Tree) SetModule(s *Source) { t.mod = s }

// FindChild looks up a single direct child by name.
func (t *Tree) FindChild(name string) (*Tree, bool) {
	c, ok := t.children[name]
	return c, ok
}

// FindPath walks path component by component from t, failing as soon as
// any component is missing.
func (t *Tree) FindPath(path []string) (*Tree, bool) {
	node := t
	for _, name := range path {
		child, ok := node.FindChild(name)
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// AddChild returns the direct child named childName, creating it first if
// it does not already exist. Idempotent: calling it twice with the same
// name returns the same node both times.
func (t *Tree) AddChild(childName string) *Tree {
	if c, ok := t.children[childName]; ok {
		return c
	}
	c := &Tree{name: childName, children: make(map[string]*Tree)}
	t.children[childName] = c
	return c
}

// AddPath walks path from t, creating any missing intermediate nodes, and
// returns the final node. Idempotent for the same path.
func (t *Tree) AddPath(path []string) *Tree {
	node := t
	for _, name := range path {
		node = node.AddChild(name)
	}
	return node
}

// NormalizePath turns a source-relative import path (using '/' or '\' as
// separators, possibly with a trailing ".an" extension and leading "./"
// segments) into the tree path components used for lookups: empty and
// "." segments are dropped, a trailing ".an" is stripped from the final
// component, and every component is titlecased to match the module name
// a DataDecl/FuncDecl would see (module names are capitalized by
// convention).
func NormalizePath(raw string) []string {
	raw = strings.ReplaceAll(raw, "\\", "/")
	parts := strings.Split(raw, "/")

	var out []string
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return out
	}

	out[len(out)-1] = strings.TrimSuffix(out[len(out)-1], ".an")
	for i, p := range out {
		out[i] = titlecase(p)
	}
	return out
}

func titlecase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
