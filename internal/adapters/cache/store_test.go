package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/meownoid/nb/internal/adapters/cache"
	"github.com/meownoid/nb/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.NewStore()
	require.NoError(t, err)
	return store
}

func testEntry(cacheRoot string) domain.CacheEntry {
	return domain.CacheEntry{
		Kind:          domain.EntryScript,
		SourcePath:    "/notebooks/analysis.ipynb",
		ArtifactPath:  filepath.Join(cacheRoot, "analysis.py"),
		SourceModTime: time.Now().UnixNano(),
		SourceHash:    "0011223344556677",
		CreatedAt:     time.Now().UTC(),
	}
}

func TestStore_PutGet(t *testing.T) {
	store := newStore(t)
	cacheRoot := t.TempDir()
	entry := testEntry(cacheRoot)

	require.NoError(t, store.Put(cacheRoot, entry, []byte("print(1)\n")))

	got, err := store.Get(cacheRoot, domain.EntryScript, entry.SourcePath)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, entry.Kind, got.Kind)
	assert.Equal(t, entry.SourcePath, got.SourcePath)
	assert.Equal(t, entry.ArtifactPath, got.ArtifactPath)
	assert.Equal(t, entry.SourceModTime, got.SourceModTime)
	assert.Equal(t, entry.SourceHash, got.SourceHash)

	content, err := os.ReadFile(entry.ArtifactPath)
	require.NoError(t, err)
	assert.Equal(t, "print(1)\n", string(content))
}

func TestStore_Get_Missing(t *testing.T) {
	store := newStore(t)
	cacheRoot := t.TempDir()

	got, err := store.Get(cacheRoot, domain.EntryScript, "/notebooks/never-stored.ipynb")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_KindsAreIndependent(t *testing.T) {
	// The same source file has one mirror copy and, if it is a notebook, one
	// converted script. The two entries must not clobber each other.
	store := newStore(t)
	cacheRoot := t.TempDir()

	scriptEntry := testEntry(cacheRoot)
	mirrorEntry := scriptEntry
	mirrorEntry.Kind = domain.EntryMirror
	mirrorEntry.ArtifactPath = filepath.Join(cacheRoot, "analysis.ipynb")

	require.NoError(t, store.Put(cacheRoot, scriptEntry, []byte("script")))
	require.NoError(t, store.Put(cacheRoot, mirrorEntry, []byte("mirror")))

	gotScript, err := store.Get(cacheRoot, domain.EntryScript, scriptEntry.SourcePath)
	require.NoError(t, err)
	require.NotNil(t, gotScript)
	assert.Equal(t, domain.EntryScript, gotScript.Kind)

	gotMirror, err := store.Get(cacheRoot, domain.EntryMirror, mirrorEntry.SourcePath)
	require.NoError(t, err)
	require.NotNil(t, gotMirror)
	assert.Equal(t, domain.EntryMirror, gotMirror.Kind)
}

func TestStore_Put_Overwrites(t *testing.T) {
	store := newStore(t)
	cacheRoot := t.TempDir()

	entry := testEntry(cacheRoot)
	require.NoError(t, store.Put(cacheRoot, entry, []byte("old")))

	entry.SourceModTime = time.Now().Add(time.Second).UnixNano()
	require.NoError(t, store.Put(cacheRoot, entry, []byte("new")))

	got, err := store.Get(cacheRoot, domain.EntryScript, entry.SourcePath)
	require.NoError(t, err)
	assert.Equal(t, entry.SourceModTime, got.SourceModTime)

	content, err := os.ReadFile(entry.ArtifactPath)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestStore_Get_CorruptMetadata(t *testing.T) {
	store := newStore(t)
	cacheRoot := t.TempDir()

	entry := testEntry(cacheRoot)
	require.NoError(t, store.Put(cacheRoot, entry, []byte("print(1)\n")))

	// Corrupt every metadata file under the index.
	indexDir := filepath.Join(cacheRoot, domain.IndexDirName)
	files, err := os.ReadDir(indexDir)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(indexDir, f.Name()), []byte("{not json"), domain.FilePerm))
	}

	_, err = store.Get(cacheRoot, domain.EntryScript, entry.SourcePath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStoreUnmarshalFailed))
}
