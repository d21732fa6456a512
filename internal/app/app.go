// Package app implements the application layer for nb: the dispatch pipeline
// that turns a notebook name into a running interpreter process.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/meownoid/nb/internal/adapters/watcher"
	"github.com/meownoid/nb/internal/core/domain"
	"github.com/meownoid/nb/internal/core/ports"
	"go.trai.ch/zerr"
)

// debounceWindow is how long watch mode waits for the file system to settle
// before re-syncing the cache.
const debounceWindow = 250 * time.Millisecond

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.NotebookResolver
	mirror       ports.TreeMirror
	converter    ports.Converter
	store        ports.EntryStore
	executor     ports.Executor
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.NotebookResolver,
	mirror ports.TreeMirror,
	converter ports.Converter,
	store ports.EntryStore,
	executor ports.Executor,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		mirror:       mirror,
		converter:    converter,
		store:        store,
		executor:     executor,
		logger:       log,
	}
}

// Options select the configuration used by a command invocation.
type Options struct {
	ConfigPath string
	Profile    string
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Options
	NoCache bool
}

// Run dispatches one notebook: resolve, sync the cache tree, reconvert if
// stale, extract the optional section, and hand the result to the
// interpreter. The child's exit status is propagated as the returned error.
func (a *App) Run(ctx context.Context, name string, args []string, opts RunOptions) error {
	profile, err := a.loadProfile(opts.Options)
	if err != nil {
		return err
	}

	ref, err := a.resolver.Resolve(profile, name)
	if err != nil {
		return err
	}

	// Mirror the tree so imports of sibling notebooks and scripts resolve
	// against current cache copies. A mirror failure must not kill the run
	// as long as the main notebook itself can be converted.
	if _, err := a.mirror.Sync(ctx, profile); err != nil {
		a.logger.Warn(fmt.Sprintf("cache sync failed: %v", err))
	}

	entry, err := a.freshScriptEntry(ctx, profile, ref, opts.NoCache)
	if err != nil {
		return err
	}

	plan, err := a.buildPlan(profile, entry, args)
	if err != nil {
		return err
	}

	return a.executor.Execute(ctx, plan.Interpreter, append([]string{plan.Script}, plan.Args...), os.Stdin, os.Stdout, os.Stderr)
}

// freshScriptEntry returns a script cache entry certified fresh for the
// current run, reconverting the notebook when needed.
func (a *App) freshScriptEntry(
	ctx context.Context,
	profile *domain.Profile,
	ref *domain.NotebookRef,
	noCache bool,
) (*domain.CacheEntry, error) {
	if !noCache {
		entry, err := a.store.Get(profile.CachePath, domain.EntryScript, ref.Path)
		if err != nil {
			// Corrupt metadata counts as stale: reconvert instead of
			// failing every run until the cache is cleaned.
			a.logger.Warn(fmt.Sprintf("discarding unreadable cache entry: %v", err))
		}
		if entry != nil {
			info, statErr := os.Stat(ref.Path)
			if statErr == nil && entry.FreshFor(info.ModTime()) {
				if _, artErr := os.Stat(entry.ArtifactPath); artErr == nil {
					return entry, nil
				}
			}
		}
	}

	return a.converter.Convert(ctx, profile, ref)
}

// buildPlan narrows the cached script to its marked section, applies
// overrides and selects the interpreter.
func (a *App) buildPlan(profile *domain.Profile, entry *domain.CacheEntry, args []string) (*domain.ExecutionPlan, error) {
	content, err := os.ReadFile(entry.ArtifactPath) //nolint:gosec // Artifact path comes from our own store
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read cached script"), "path", entry.ArtifactPath)
	}

	section, err := domain.ExtractSection(string(content))
	if err != nil {
		return nil, zerr.With(err, "notebook", entry.SourcePath)
	}

	script := entry.ArtifactPath
	if section.Narrowed {
		// The run file sits next to the cached script so relative imports
		// keep resolving against cached siblings.
		script = a.resolver.RunPathFor(entry.ArtifactPath)
		if err := os.WriteFile(script, []byte(section.Body+"\n"), domain.FilePerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to write run script"), "path", script)
		}
	}

	interpreter := profile.IPythonPath
	if section.Overrides.IPythonPath != "" {
		interpreter = domain.ExpandUser(section.Overrides.IPythonPath)
	}

	return &domain.ExecutionPlan{
		Interpreter: interpreter,
		Script:      script,
		Args:        args,
	}, nil
}

// Sync refreshes the cache copies of every notebook and script under the
// notebooks root.
func (a *App) Sync(ctx context.Context, opts Options) error {
	profile, err := a.loadProfile(opts)
	if err != nil {
		return err
	}

	updated, err := a.mirror.Sync(ctx, profile)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("synced %d file(s)", len(updated)))
	return nil
}

// Watch keeps the cache in sync while notebooks are being edited. It blocks
// until the context is canceled.
func (a *App) Watch(ctx context.Context, opts Options) error {
	profile, err := a.loadProfile(opts)
	if err != nil {
		return err
	}

	if _, err := a.mirror.Sync(ctx, profile); err != nil {
		return err
	}

	w, err := watcher.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer w.Stop() //nolint:errcheck // Best effort close on shutdown

	debouncer := watcher.NewDebouncer(debounceWindow, func(paths []string) {
		if _, err := a.mirror.Sync(ctx, profile); err != nil {
			a.logger.Warn(fmt.Sprintf("cache sync failed: %v", err))
			return
		}
		a.logger.Info(fmt.Sprintf("resynced after %d change(s)", len(paths)))
	})

	if err := w.Start(ctx, profile.NotebooksPath); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}

	a.logger.Info("watching " + profile.NotebooksPath)

	for event := range w.Events() {
		if event.Operation == ports.OpWrite || event.Operation == ports.OpCreate {
			debouncer.Add(event.Path)
		}
	}

	debouncer.Flush()
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Options
}

// Clean removes the cache directory. Deleted sources are never pruned
// implicitly; this is the explicit maintenance operation.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	profile, err := a.loadProfile(opts.Options)
	if err != nil {
		return err
	}

	a.logger.Info("removing cache at " + profile.CachePath)
	if err := os.RemoveAll(profile.CachePath); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove cache"), "path", profile.CachePath)
	}

	return nil
}

func (a *App) loadProfile(opts Options) (*domain.Profile, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigPath()
	}
	return a.configLoader.Load(path, opts.Profile)
}
