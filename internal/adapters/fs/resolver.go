package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/meownoid/nb/internal/core/domain"
	"github.com/meownoid/nb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.NotebookResolver = (*Resolver)(nil)

// Resolver implements ports.NotebookResolver. Path mapping embeds the
// source's relative path under the cache root, so the mapping is stable
// across runs and collision-free between same-named files in different
// subdirectories.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve maps a bare notebook name to its source file under the notebooks
// root. The name may contain subdirectories ("experiments/tuning").
func (r *Resolver) Resolve(profile *domain.Profile, name string) (*domain.NotebookRef, error) {
	path := filepath.Join(profile.NotebooksPath, name+domain.NotebookExt)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrNotebookNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat notebook"), "path", path)
	}

	if !info.Mode().IsRegular() {
		return nil, zerr.With(domain.ErrNotANotebook, "path", path)
	}

	return &domain.NotebookRef{Name: name, Path: path}, nil
}

// CachePathFor maps a source path to its mirror location under the cache root.
func (r *Resolver) CachePathFor(profile *domain.Profile, sourcePath string) (string, error) {
	rel, err := filepath.Rel(profile.NotebooksPath, sourcePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", zerr.With(zerr.New("source path is outside the notebooks root"), "path", sourcePath)
	}
	return filepath.Join(profile.CachePath, rel), nil
}

// ScriptPathFor maps a notebook source path to the location of its converted
// script: the mirror location with the notebook extension swapped for .py.
func (r *Resolver) ScriptPathFor(profile *domain.Profile, sourcePath string) (string, error) {
	cached, err := r.CachePathFor(profile, sourcePath)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(cached, domain.NotebookExt) + domain.ScriptExt, nil
}

// RunPathFor maps a cached script path to the sibling file holding a
// narrowed section body.
func (r *Resolver) RunPathFor(scriptPath string) string {
	return strings.TrimSuffix(scriptPath, domain.ScriptExt) + domain.RunScriptSuffix
}
