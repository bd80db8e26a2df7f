// Package fs provides file system adapters for resolving and fingerprinting schema files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
)

// SchemaExtensions lists the file extensions treated as SDL documents when a
// directory is given as input.
var SchemaExtensions = []string{".graphql", ".graphqls", ".gql"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkSchemaFiles yields every SDL file below root in lexical order,
// skipping VCS directories, node_modules and any directory or file whose
// name matches an ignore pattern.
func (w *Walker) WalkSchemaFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			if d.IsDir() || !slices.Contains(SchemaExtensions, filepath.Ext(path)) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// shouldSkip reports whether an entry is excluded. For directories the
// returned action is filepath.SkipDir; for files it is nil.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj" || name == "node_modules") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
