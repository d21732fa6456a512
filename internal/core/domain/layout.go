package domain

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// NbDirName is the name of the per-user nb directory.
	NbDirName = ".nb"

	// CacheDirName is the name of the cache directory under the nb directory.
	CacheDirName = "cache"

	// IndexDirName is the name of the cache metadata directory under the cache root.
	IndexDirName = ".index"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.toml"

	// NotebookExt is the extension of notebook files.
	NotebookExt = ".ipynb"

	// ScriptExt is the extension of converted and plain script files.
	ScriptExt = ".py"

	// RunScriptSuffix is the suffix of the run file written for a narrowed section.
	RunScriptSuffix = ".nbrun.py"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultConfigPath returns the default path of the nb configuration file.
func DefaultConfigPath() string {
	return filepath.Join(homeDir(), NbDirName, ConfigFileName)
}

// DefaultCachePath returns the default cache root.
func DefaultCachePath() string {
	return filepath.Join(homeDir(), NbDirName, CacheDirName)
}

// ExpandUser replaces a leading ~ with the current user's home directory.
func ExpandUser(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
