package ports

import (
	"context"

	"github.com/meownoid/nb/internal/core/domain"
)

// TreeMirror keeps the cache in sync with the notebooks tree so that
// imports in an executed script resolve against cached siblings.
//
//go:generate mockgen -source=mirror.go -destination=mocks/mock_mirror.go -package=mocks
type TreeMirror interface {
	// Sync walks the profile's notebooks root and copies every notebook and
	// plain script file whose cache copy is stale. It returns the paths
	// that were updated. A failure on a single file does not abort the
	// pass; Sync only errors when the walk itself cannot proceed.
	Sync(ctx context.Context, profile *domain.Profile) ([]string, error)
}
