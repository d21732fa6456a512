// Package fs provides file system adapters: tree walking, content
// fingerprinting, notebook path resolution and cache mirroring.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/meownoid/nb/internal/core/ports"
)

var _ ports.TreeWalker = (*Walker)(nil)

// Walker provides file walking functionality over the notebooks tree.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all regular files under root. Hidden directories (and the
// .ipynb_checkpoints trees Jupyter leaves behind) are pruned, as is every
// directory listed in skipDirs (absolute paths; used to keep the cache root
// out of its own source walk).
//
// A directory that cannot be enumerated is reported through onError and
// skipped; the rest of the tree is still walked.
func (w *Walker) WalkFiles(root string, skipDirs []string, onError func(path string, err error)) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if onError != nil {
					onError(path, err)
				}
				return nil
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(path, d.Name(), skipDirs) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(path, name string, skipDirs []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, skip := range skipDirs {
		if path == skip {
			return true
		}
	}
	return false
}
