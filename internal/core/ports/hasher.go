package ports

// Hasher computes content fingerprints recorded in cache entries.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the fingerprint of a file's content.
	ComputeFileHash(path string) (string, error)

	// HashBytes computes the fingerprint of content already held in memory.
	HashBytes(content []byte) string
}
