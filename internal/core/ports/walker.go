package ports

import "iter"

// TreeWalker enumerates the regular files under a notebooks root.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type TreeWalker interface {
	// WalkFiles yields every regular file under root, pruning hidden
	// directories and the directories listed in skipDirs (absolute paths).
	// A subtree that cannot be enumerated is reported through onError and
	// skipped; the walk continues with the rest of the tree. onError may
	// be nil.
	WalkFiles(root string, skipDirs []string, onError func(path string, err error)) iter.Seq[string]
}
