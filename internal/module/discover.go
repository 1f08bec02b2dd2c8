package module

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover walks every root in roots (the working directory, each -I
// include path, and the standard library root, in that order) looking
// for "*.an" source files, and grafts each one into tree at its
// normalized path. Later roots never override a module a prior root
// already claimed, matching the "merge directories into one root"
// semantics moduletree describes.
func Discover(tree *Tree, roots []string) error {
	for _, root := range roots {
		fsys := os.DirFS(root)
		matches, err := doublestar.Glob(fsys, "**/*.an")
		if err != nil {
			return err
		}
		for _, m := range matches {
			components := NormalizePath(m)
			if len(components) == 0 {
				continue
			}
			node := tree.AddPath(components)
			if node.Module() == nil {
				node.SetModule(&Source{Path: filepath.Join(root, filepath.FromSlash(m))})
			}
		}
	}
	return nil
}

// IsSourceFile reports whether path names an antec source file by
// extension, ignoring case.
func IsSourceFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".an")
}
