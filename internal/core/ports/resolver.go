package ports

import "github.com/meownoid/nb/internal/core/domain"

// NotebookResolver maps notebook names to source paths and source paths to
// cache locations. All methods are pure and stable across runs; cache entry
// identity depends on that.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type NotebookResolver interface {
	// Resolve maps a bare notebook name to its source file under the
	// profile's notebooks root. Fails with domain.ErrNotebookNotFound when
	// no such file exists.
	Resolve(profile *domain.Profile, name string) (*domain.NotebookRef, error)

	// CachePathFor maps a source path to its mirror location under the
	// cache root. The source's full relative path is preserved, so equal
	// base names in different subdirectories never collide.
	CachePathFor(profile *domain.Profile, sourcePath string) (string, error)

	// ScriptPathFor maps a notebook source path to the location of its
	// converted script under the cache root.
	ScriptPathFor(profile *domain.Profile, sourcePath string) (string, error)

	// RunPathFor maps a cached script path to the sibling location used for
	// a narrowed section body. Keeping it next to the script preserves
	// import resolution against cached siblings.
	RunPathFor(scriptPath string) string
}
