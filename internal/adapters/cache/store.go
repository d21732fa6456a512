// Package cache implements on-disk storage for cache artifacts and their
// entry metadata.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/meownoid/nb/internal/core/domain"
	"github.com/meownoid/nb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EntryStore = (*Store)(nil)

// Store implements ports.EntryStore using one JSON metadata file per entry
// under <cacheRoot>/.index. The metadata filename is derived from the entry
// kind and the canonical source path, so each (source, kind) pair has exactly
// one slot and overwrites replace it as a unit.
type Store struct{}

// NewStore creates a new EntryStore.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the entry for a source path and artifact kind.
func (s *Store) Get(cacheRoot string, kind domain.EntryKind, sourcePath string) (*domain.CacheEntry, error) {
	filename := s.entryFilename(cacheRoot, kind, sourcePath)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(domain.ErrStoreReadFailed, err.Error())
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error())
	}

	return &entry, nil
}

// Put writes the artifact content and the entry metadata. The artifact is
// renamed into place before the metadata, and both writes go through a
// temporary file, so a concurrent reader either sees the previous entry or
// the complete new one, never a valid timestamp over incomplete content.
func (s *Store) Put(cacheRoot string, entry domain.CacheEntry, content []byte) error {
	if err := atomicWrite(entry.ArtifactPath, content); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", entry.ArtifactPath)
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	filename := s.entryFilename(cacheRoot, entry.Kind, entry.SourcePath)
	if err := atomicWrite(filename, data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", filename)
	}

	return nil
}

func (s *Store) entryFilename(cacheRoot string, kind domain.EntryKind, sourcePath string) string {
	hash := sha256.Sum256([]byte(string(kind) + "\x00" + sourcePath))
	hexHash := hex.EncodeToString(hash[:])
	return filepath.Join(cacheRoot, domain.IndexDirName, hexHash+".json")
}

// atomicWrite writes data to path via a temporary sibling file and rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}
