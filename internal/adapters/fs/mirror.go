package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/meownoid/nb/internal/core/domain"
	"github.com/meownoid/nb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.TreeMirror = (*Mirror)(nil)

// Mirror implements ports.TreeMirror. It copies notebook and plain script
// files into the cache so that imports in an executed script resolve against
// cached siblings. Copies for distinct files are independent, so they run
// concurrently; each entry is written atomically by the store.
type Mirror struct {
	walker   ports.TreeWalker
	hasher   ports.Hasher
	resolver ports.NotebookResolver
	store    ports.EntryStore
	logger   ports.Logger
}

// NewMirror creates a new Mirror.
func NewMirror(
	walker ports.TreeWalker,
	hasher ports.Hasher,
	resolver ports.NotebookResolver,
	store ports.EntryStore,
	logger ports.Logger,
) *Mirror {
	return &Mirror{
		walker:   walker,
		hasher:   hasher,
		resolver: resolver,
		store:    store,
		logger:   logger,
	}
}

// Sync walks the notebooks root and refreshes every stale cache copy.
// A failure on one file is reported and skipped; the main dispatch must not
// die because an unrelated auxiliary file could not be copied.
func (m *Mirror) Sync(ctx context.Context, profile *domain.Profile) ([]string, error) {
	root := profile.NotebooksPath
	if _, err := os.Stat(root); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMirrorFailed, err.Error()), "root", root)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	var updated []string

	// An unreadable subtree is reported the same way as an unreadable file:
	// warn and keep mirroring the rest.
	files := m.walker.WalkFiles(root, []string{profile.CachePath}, func(path string, err error) {
		m.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
	})

	for path := range files {
		if !trackedFile(path) {
			continue
		}

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			changed, err := m.syncFile(profile, path)
			if err != nil {
				m.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
				return nil
			}
			if changed {
				mu.Lock()
				updated = append(updated, path)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(domain.ErrMirrorFailed, err.Error())
	}

	sort.Strings(updated)
	return updated, nil
}

// syncFile refreshes the cache copy of a single source file. It reports
// whether the copy was (re)written.
func (m *Mirror) syncFile(profile *domain.Profile, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, zerr.Wrap(err, "failed to stat source")
	}

	entry, err := m.store.Get(profile.CachePath, domain.EntryMirror, path)
	if err != nil {
		return false, err
	}
	if fresh(entry, info.ModTime()) {
		return false, nil
	}

	artifact, err := m.resolver.CachePathFor(profile, path)
	if err != nil {
		return false, err
	}

	// Capture the timestamp before reading: a write racing the copy makes
	// the entry stale on the next pass instead of masking the new content.
	modTime := info.ModTime()

	content, err := os.ReadFile(path) //nolint:gosec // Path comes from the walked tree
	if err != nil {
		return false, zerr.Wrap(err, "failed to read source")
	}

	newEntry := domain.CacheEntry{
		Kind:          domain.EntryMirror,
		SourcePath:    path,
		ArtifactPath:  artifact,
		SourceModTime: modTime.UnixNano(),
		SourceHash:    m.hasher.HashBytes(content),
		CreatedAt:     time.Now(),
	}

	if err := m.store.Put(profile.CachePath, newEntry, content); err != nil {
		return false, err
	}

	return true, nil
}

// fresh reports whether a cache entry is valid for the current source state:
// the recorded timestamp matches exactly and the artifact is still on disk.
func fresh(entry *domain.CacheEntry, modTime time.Time) bool {
	if !entry.FreshFor(modTime) {
		return false
	}
	_, err := os.Stat(entry.ArtifactPath)
	return err == nil
}

// trackedFile reports whether a walked file belongs in the cache: plain
// scripts and notebooks, minus the .nbconvert.ipynb leftovers the conversion
// tool can produce.
func trackedFile(path string) bool {
	switch {
	case strings.HasSuffix(path, ".nbconvert"+domain.NotebookExt):
		return false
	case strings.HasSuffix(path, domain.NotebookExt), strings.HasSuffix(path, domain.ScriptExt):
		return filepath.Base(path)[0] != '.'
	default:
		return false
	}
}
