package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/meownoid/nb/internal/adapters/fs"
	"github.com/meownoid/nb/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(t *testing.T) *domain.Profile {
	t.Helper()
	return &domain.Profile{
		Name:          "default",
		NotebooksPath: t.TempDir(),
		CachePath:     t.TempDir(),
		JupyterPath:   "/usr/bin/jupyter",
		IPythonPath:   "/usr/bin/ipython",
	}
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestResolver_Resolve(t *testing.T) {
	resolver := fs.NewResolver()
	profile := testProfile(t)

	want := createFile(t, profile.NotebooksPath, "analysis.ipynb", "{}")

	ref, err := resolver.Resolve(profile, "analysis")
	require.NoError(t, err)

	assert.Equal(t, "analysis", ref.Name)
	assert.Equal(t, want, ref.Path)
}

func TestResolver_Resolve_Subdirectory(t *testing.T) {
	resolver := fs.NewResolver()
	profile := testProfile(t)

	want := createFile(t, profile.NotebooksPath, "experiments/tuning.ipynb", "{}")

	ref, err := resolver.Resolve(profile, "experiments/tuning")
	require.NoError(t, err)
	assert.Equal(t, want, ref.Path)
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	resolver := fs.NewResolver()
	profile := testProfile(t)

	_, err := resolver.Resolve(profile, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotebookNotFound))
	assert.Equal(t, domain.ExitNotebookNotFound, domain.ExitCodeFor(err))
}

func TestResolver_Resolve_NotAFile(t *testing.T) {
	resolver := fs.NewResolver()
	profile := testProfile(t)

	require.NoError(t, os.MkdirAll(filepath.Join(profile.NotebooksPath, "weird.ipynb"), domain.DirPerm))

	_, err := resolver.Resolve(profile, "weird")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotANotebook))
}

func TestResolver_CachePathFor(t *testing.T) {
	resolver := fs.NewResolver()
	profile := testProfile(t)

	source := filepath.Join(profile.NotebooksPath, "sub", "util.py")

	cached, err := resolver.CachePathFor(profile, source)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(profile.CachePath, "sub", "util.py"), cached)
}

func TestResolver_CachePathFor_NoCollisions(t *testing.T) {
	// Same base name in different subdirectories must map to distinct
	// cache locations.
	resolver := fs.NewResolver()
	profile := testProfile(t)

	a, err := resolver.CachePathFor(profile, filepath.Join(profile.NotebooksPath, "a", "report.ipynb"))
	require.NoError(t, err)
	b, err := resolver.CachePathFor(profile, filepath.Join(profile.NotebooksPath, "b", "report.ipynb"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestResolver_CachePathFor_OutsideRoot(t *testing.T) {
	resolver := fs.NewResolver()
	profile := testProfile(t)

	_, err := resolver.CachePathFor(profile, "/etc/passwd")
	require.Error(t, err)
}

func TestResolver_ScriptPathFor(t *testing.T) {
	resolver := fs.NewResolver()
	profile := testProfile(t)

	source := filepath.Join(profile.NotebooksPath, "analysis.ipynb")

	script, err := resolver.ScriptPathFor(profile, source)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(profile.CachePath, "analysis.py"), script)
}

func TestResolver_RunPathFor(t *testing.T) {
	resolver := fs.NewResolver()

	assert.Equal(t, "/cache/analysis.nbrun.py", resolver.RunPathFor("/cache/analysis.py"))
}
