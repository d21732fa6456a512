// Package convert implements notebook-to-script conversion through the
// external conversion tool.
package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/meownoid/nb/internal/core/domain"
	"github.com/meownoid/nb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Converter = (*Converter)(nil)

// Converter implements ports.Converter by running
// "jupyter nbconvert --to script" in a temporary directory and storing the
// resulting script in the cache.
type Converter struct {
	executor ports.Executor
	store    ports.EntryStore
	hasher   ports.Hasher
	resolver ports.NotebookResolver
}

// NewConverter creates a new Converter.
func NewConverter(
	executor ports.Executor,
	store ports.EntryStore,
	hasher ports.Hasher,
	resolver ports.NotebookResolver,
) *Converter {
	return &Converter{
		executor: executor,
		store:    store,
		hasher:   hasher,
		resolver: resolver,
	}
}

// Convert regenerates the cached script for ref and returns the new entry.
func (c *Converter) Convert(
	ctx context.Context,
	profile *domain.Profile,
	ref *domain.NotebookRef,
) (*domain.CacheEntry, error) {
	info, err := os.Stat(ref.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat notebook"), "path", ref.Path)
	}

	// Capture the source's state before the tool runs. If the notebook is
	// saved mid-conversion, the recorded timestamp belongs to the content
	// the tool actually read, and the next run sees a stale entry.
	modTime := info.ModTime()
	sourceHash, err := c.hasher.ComputeFileHash(ref.Path)
	if err != nil {
		return nil, err
	}

	scriptPath, err := c.resolver.ScriptPathFor(profile, ref.Path)
	if err != nil {
		return nil, err
	}

	content, err := c.runTool(ctx, profile, ref)
	if err != nil {
		return nil, err
	}

	entry := domain.CacheEntry{
		Kind:          domain.EntryScript,
		SourcePath:    ref.Path,
		ArtifactPath:  scriptPath,
		SourceModTime: modTime.UnixNano(),
		SourceHash:    sourceHash,
		CreatedAt:     time.Now(),
	}

	if err := c.store.Put(profile.CachePath, entry, content); err != nil {
		return nil, err
	}

	return &entry, nil
}

// runTool invokes the conversion tool and returns the converted script bytes.
func (c *Converter) runTool(
	ctx context.Context,
	profile *domain.Profile,
	ref *domain.NotebookRef,
) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "nb-convert-*")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // Best effort cleanup

	// nbconvert appends the script extension to --output itself.
	target := filepath.Join(tmpDir, "converted")

	args := []string{
		"nbconvert",
		"--log-level", "ERROR",
		"--to", "script",
		ref.Path,
		"--output", target,
	}

	var out bytes.Buffer
	if err := c.executor.Execute(ctx, profile.JupyterPath, args, nil, &out, &out); err != nil {
		return nil, toolError(err, ref.Path, out.String())
	}

	content, err := os.ReadFile(target + domain.ScriptExt) //nolint:gosec // Temp path is ours
	if err != nil {
		return nil, toolError(zerr.New("conversion tool produced no output file"), ref.Path, out.String())
	}

	return content, nil
}

// toolError wraps a tool failure into ErrConversionFailed, carrying the
// tool's own diagnostic output verbatim. The tool's error is authoritative;
// nothing is retried.
func toolError(cause error, notebookPath, output string) error {
	err := zerr.Wrap(domain.ErrConversionFailed, cause.Error())
	err = zerr.With(err, "notebook", notebookPath)
	if diag := strings.TrimSpace(output); diag != "" {
		err = zerr.With(err, "output", diag)
	}
	return err
}
