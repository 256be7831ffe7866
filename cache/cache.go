// Package cache provides content-addressed caching for archive payloads.
//
// Archive entries are usually RefPack-compressed, and decompressing the same
// entry again on every run is wasted work for large packages. A Cache maps a
// SHA-256 of the stored (compressed) entry bytes to the decompressed payload,
// so identical entries in different archives share one cache slot and a key
// can never describe different content.
package cache

// Cache provides content-addressed storage for decompressed payloads.
//
// Keys are SHA-256 hashes of the stored entry bytes. Values are the
// decompressed payloads.
//
// Implementations should handle their own size limits and eviction policies.
type Cache interface {
	// Get retrieves a payload by key.
	// Returns nil, false if the payload is not cached.
	Get(key []byte) ([]byte, bool)

	// Put stores a payload under key.
	Put(key []byte, content []byte) error

	// Implementations must be safe for concurrent use.
}

// Loader extends Cache with a fill-on-miss operation.
//
// Implementations deduplicate concurrent fills of the same key, so fill runs
// at most once per key at a time.
type Loader interface {
	Cache

	// Load returns the cached payload for key, or calls fill, caches its
	// result and returns it. Failing to cache a filled payload is not an
	// error.
	Load(key []byte, fill func() ([]byte, error)) ([]byte, error)
}

// Sized is implemented by caches with a size limit.
type Sized interface {
	// MaxBytes returns the configured cache size limit (0 = unlimited).
	MaxBytes() int64

	// SizeBytes returns the current cache size in bytes.
	SizeBytes() int64

	// Prune removes cached entries until the cache is at or below targetBytes.
	// Returns the number of bytes freed.
	Prune(targetBytes int64) (int64, error)
}

// Load reads key through c. It uses c's own Load when c is a Loader and
// falls back to Get, fill and Put otherwise.
func Load(c Cache, key []byte, fill func() ([]byte, error)) ([]byte, error) {
	if l, ok := c.(Loader); ok {
		return l.Load(key, fill)
	}
	if content, ok := c.Get(key); ok {
		return content, nil
	}
	content, err := fill()
	if err != nil {
		return nil, err
	}
	_ = c.Put(key, content) //nolint:errcheck // caching is opportunistic
	return content, nil
}
