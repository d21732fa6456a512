package ports

import (
	"context"

	"github.com/meownoid/nb/internal/core/domain"
)

// Converter turns one notebook into one cached script by invoking the
// external conversion tool.
//
//go:generate mockgen -source=converter.go -destination=mocks/mock_converter.go -package=mocks
type Converter interface {
	// Convert regenerates the cached script for ref and returns the new
	// entry. The source modification time is captured before the tool runs,
	// so a source modified mid-conversion is detected as stale on the next
	// run. Tool failures surface as domain.ErrConversionFailed with the
	// tool's diagnostic output attached.
	Convert(ctx context.Context, profile *domain.Profile, ref *domain.NotebookRef) (*domain.CacheEntry, error)
}
