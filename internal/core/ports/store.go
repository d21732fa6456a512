package ports

import "github.com/meownoid/nb/internal/core/domain"

// EntryStore defines the interface for persisting cache entries: the
// association between a tracked source file and its cached artifact.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EntryStore interface {
	// Get retrieves the entry for a source path and artifact kind.
	// Returns nil, nil if not found.
	Get(cacheRoot string, kind domain.EntryKind, sourcePath string) (*domain.CacheEntry, error)

	// Put writes the artifact content and the entry metadata as a unit.
	// The artifact becomes visible before the metadata does, so a reader
	// can never observe a freshness-valid entry with incomplete content.
	Put(cacheRoot string, entry domain.CacheEntry, content []byte) error
}
