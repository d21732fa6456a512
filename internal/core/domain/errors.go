package domain

import (
	"errors"
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrNotebookNotFound is returned when the named notebook does not exist under the notebooks root.
	ErrNotebookNotFound = zerr.New("notebook not found")

	// ErrNotANotebook is returned when the resolved path exists but is not a regular file.
	ErrNotANotebook = zerr.New("path is not a regular notebook file")

	// ErrConversionFailed is returned when the external conversion tool fails or produces no output.
	ErrConversionFailed = zerr.New("notebook conversion failed")

	// ErrMultipleSections is returned when a script contains malformed or duplicate section markers.
	ErrMultipleSections = zerr.New("multiple sections are not supported")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrProfileNotFound is returned when the requested profile is missing from the config file.
	ErrProfileNotFound = zerr.New("profile not found in config file")

	// ErrMissingConfigKey is returned when a required profile key is absent.
	ErrMissingConfigKey = zerr.New("required config key not found")

	// ErrStoreReadFailed is returned when cache metadata cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreUnmarshalFailed is returned when cache metadata cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrStoreMarshalFailed is returned when cache metadata cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrStoreWriteFailed is returned when a cache artifact or its metadata cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrMirrorFailed is returned when the tree mirror pass fails as a whole.
	ErrMirrorFailed = zerr.New("failed to mirror notebooks tree")
)

// ExitStatusError reports a subprocess that exited with a non-zero status.
// The code is propagated as nb's own exit code.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return "process exited with status " + strconv.Itoa(e.Code)
}

// Exit codes form a documented contract with callers: scripts distinguish
// "notebook not found" from "conversion failed" from "bad markers" by code.
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitNotebookNotFound = 2
	ExitConversionFailed = 3
	ExitMultipleSections = 4
)

// IsExitStatus reports whether err carries a subprocess exit status.
func IsExitStatus(err error) bool {
	var exitErr *ExitStatusError
	return errors.As(err, &exitErr)
}

// ExitCodeFor maps an error to the nb exit code contract. A subprocess
// failure propagates the child's own exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitStatusError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrNotebookNotFound), errors.Is(err, ErrNotANotebook):
		return ExitNotebookNotFound
	case errors.Is(err, ErrConversionFailed):
		return ExitConversionFailed
	case errors.Is(err, ErrMultipleSections):
		return ExitMultipleSections
	default:
		return ExitFailure
	}
}
