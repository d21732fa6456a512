package domain

import "time"

// EntryKind distinguishes the two artifacts a tracked source can have in the
// cache: a byte-for-byte mirror copy and, for notebooks, a converted script.
type EntryKind string

const (
	// EntryMirror is a raw copy of the source file in the cache tree.
	EntryMirror EntryKind = "mirror"

	// EntryScript is a converted script produced from a notebook.
	EntryScript EntryKind = "script"
)

// CacheEntry associates a source file with a cached artifact. The source
// modification time is recorded at the moment the artifact was produced;
// freshness is an exact comparison against it. SourceHash is a content
// fingerprint recorded alongside for diagnostics, it never overrides the
// timestamp verdict.
type CacheEntry struct {
	Kind          EntryKind `json:"kind"`
	SourcePath    string    `json:"source_path"`
	ArtifactPath  string    `json:"artifact_path"`
	SourceModTime int64     `json:"source_mod_time"` // UnixNano
	SourceHash    string    `json:"source_hash,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// FreshFor reports whether the entry is up to date for a source with the
// given modification time. Only an exact match counts: any change, including
// a touch with unchanged content, invalidates the artifact.
func (e *CacheEntry) FreshFor(modTime time.Time) bool {
	if e == nil {
		return false
	}
	return e.SourceModTime == modTime.UnixNano()
}
