// Package domain contains the core types of the notebook runner: resolved
// notebook references, cache entries, section extraction and the error and
// exit code taxonomy.
package domain

// Profile is one named configuration profile, fully resolved (paths expanded).
// It is threaded explicitly through resolution, mirroring and conversion;
// there is no ambient global configuration.
type Profile struct {
	Name          string
	NotebooksPath string
	CachePath     string
	JupyterPath   string
	IPythonPath   string
}

// NotebookRef is a logical notebook name together with its resolved source
// path. Identity is the resolved path; the value is immutable once created.
type NotebookRef struct {
	Name string
	Path string
}

// ExecutionPlan is the final outcome of a dispatch: the interpreter to invoke
// and the script to hand to it. The script is always an artifact that has
// been certified fresh during the current run.
type ExecutionPlan struct {
	Interpreter string
	Script      string
	Args        []string
}
