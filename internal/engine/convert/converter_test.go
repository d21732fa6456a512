package convert_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/meownoid/nb/internal/core/domain"
	"github.com/meownoid/nb/internal/core/ports/mocks"
	"github.com/meownoid/nb/internal/engine/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupSource(t *testing.T) (*domain.Profile, *domain.NotebookRef) {
	t.Helper()

	profile := &domain.Profile{
		Name:          "default",
		NotebooksPath: t.TempDir(),
		CachePath:     t.TempDir(),
		JupyterPath:   "/usr/bin/jupyter",
		IPythonPath:   "/usr/bin/ipython",
	}

	path := filepath.Join(profile.NotebooksPath, "analysis.ipynb")
	require.NoError(t, os.WriteFile(path, []byte("{}"), domain.FilePerm))

	return profile, &domain.NotebookRef{Name: "analysis", Path: path}
}

func TestConverter_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockStore := mocks.NewMockEntryStore(ctrl)
	mockHasher := mocks.NewMockHasher(ctrl)
	mockResolver := mocks.NewMockNotebookResolver(ctrl)

	profile, ref := setupSource(t)
	scriptPath := filepath.Join(profile.CachePath, "analysis.py")

	info, err := os.Stat(ref.Path)
	require.NoError(t, err)

	mockHasher.EXPECT().ComputeFileHash(ref.Path).Return("aabbccddeeff0011", nil)
	mockResolver.EXPECT().ScriptPathFor(profile, ref.Path).Return(scriptPath, nil)

	// The tool writes its output next to the --output target, with the
	// script extension appended.
	mockExecutor.EXPECT().
		Execute(gomock.Any(), profile.JupyterPath, gomock.Any(), nil, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args []string, _ io.Reader, _, _ io.Writer) error {
			require.Equal(t, "nbconvert", args[0])
			target := args[len(args)-1]
			return os.WriteFile(target+domain.ScriptExt, []byte("print(1)\n"), domain.FilePerm)
		})

	var stored domain.CacheEntry
	mockStore.EXPECT().
		Put(profile.CachePath, gomock.Any(), []byte("print(1)\n")).
		DoAndReturn(func(_ string, entry domain.CacheEntry, _ []byte) error {
			stored = entry
			return nil
		})

	converter := convert.NewConverter(mockExecutor, mockStore, mockHasher, mockResolver)

	entry, err := converter.Convert(context.Background(), profile, ref)
	require.NoError(t, err)

	assert.Equal(t, domain.EntryScript, entry.Kind)
	assert.Equal(t, ref.Path, entry.SourcePath)
	assert.Equal(t, scriptPath, entry.ArtifactPath)
	assert.Equal(t, info.ModTime().UnixNano(), entry.SourceModTime)
	assert.Equal(t, "aabbccddeeff0011", entry.SourceHash)
	assert.Equal(t, *entry, stored)
}

func TestConverter_Convert_TimestampCapturedBeforeTool(t *testing.T) {
	// A source saved while the tool is running must leave a stale entry
	// behind, so the next run reconverts.
	ctrl := gomock.NewController(t)

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockStore := mocks.NewMockEntryStore(ctrl)
	mockHasher := mocks.NewMockHasher(ctrl)
	mockResolver := mocks.NewMockNotebookResolver(ctrl)

	profile, ref := setupSource(t)
	scriptPath := filepath.Join(profile.CachePath, "analysis.py")

	originalInfo, err := os.Stat(ref.Path)
	require.NoError(t, err)

	mockHasher.EXPECT().ComputeFileHash(ref.Path).Return("aabbccddeeff0011", nil)
	mockResolver.EXPECT().ScriptPathFor(profile, ref.Path).Return(scriptPath, nil)

	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args []string, _ io.Reader, _, _ io.Writer) error {
			// Simulate a save racing the conversion.
			newTime := time.Now().Add(5 * time.Second)
			require.NoError(t, os.Chtimes(ref.Path, newTime, newTime))

			target := args[len(args)-1]
			return os.WriteFile(target+domain.ScriptExt, []byte("print(1)\n"), domain.FilePerm)
		})
	mockStore.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	converter := convert.NewConverter(mockExecutor, mockStore, mockHasher, mockResolver)

	entry, err := converter.Convert(context.Background(), profile, ref)
	require.NoError(t, err)

	assert.Equal(t, originalInfo.ModTime().UnixNano(), entry.SourceModTime)

	currentInfo, err := os.Stat(ref.Path)
	require.NoError(t, err)
	assert.False(t, entry.FreshFor(currentInfo.ModTime()))
}

func TestConverter_Convert_ToolFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockStore := mocks.NewMockEntryStore(ctrl)
	mockHasher := mocks.NewMockHasher(ctrl)
	mockResolver := mocks.NewMockNotebookResolver(ctrl)

	profile, ref := setupSource(t)

	mockHasher.EXPECT().ComputeFileHash(ref.Path).Return("aabbccddeeff0011", nil)
	mockResolver.EXPECT().ScriptPathFor(profile, ref.Path).Return("/cache/analysis.py", nil)

	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []string, _ io.Reader, stdout, _ io.Writer) error {
			_, _ = stdout.Write([]byte("this notebook is broken\n"))
			return &domain.ExitStatusError{Code: 1}
		})

	converter := convert.NewConverter(mockExecutor, mockStore, mockHasher, mockResolver)

	_, err := converter.Convert(context.Background(), profile, ref)
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrConversionFailed))
	// The tool's own exit code must not leak into nb's exit code contract.
	assert.Equal(t, domain.ExitConversionFailed, domain.ExitCodeFor(err))
}

func TestConverter_Convert_NoOutputFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockStore := mocks.NewMockEntryStore(ctrl)
	mockHasher := mocks.NewMockHasher(ctrl)
	mockResolver := mocks.NewMockNotebookResolver(ctrl)

	profile, ref := setupSource(t)

	mockHasher.EXPECT().ComputeFileHash(ref.Path).Return("aabbccddeeff0011", nil)
	mockResolver.EXPECT().ScriptPathFor(profile, ref.Path).Return("/cache/analysis.py", nil)

	// The tool exits zero but writes nothing.
	mockExecutor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), nil, gomock.Any(), gomock.Any()).
		Return(nil)

	converter := convert.NewConverter(mockExecutor, mockStore, mockHasher, mockResolver)

	_, err := converter.Convert(context.Background(), profile, ref)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConversionFailed))
}

func TestConverter_Convert_MissingSource(t *testing.T) {
	ctrl := gomock.NewController(t)

	converter := convert.NewConverter(
		mocks.NewMockExecutor(ctrl),
		mocks.NewMockEntryStore(ctrl),
		mocks.NewMockHasher(ctrl),
		mocks.NewMockNotebookResolver(ctrl),
	)

	profile, ref := setupSource(t)
	require.NoError(t, os.Remove(ref.Path))

	_, err := converter.Convert(context.Background(), profile, ref)
	require.Error(t, err)
}
