// Package testutil holds fixture builders shared by package tests.
package testutil

import (
	"io"
	"sync"
	"sync/atomic"
)

// ByteSource implements io.ReaderAt over an in-memory slice.
type ByteSource struct {
	data []byte
}

// NewByteSource returns a byte source backed by the provided data.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

// ReadAt implements io.ReaderAt semantics over the backing slice.
func (m *ByteSource) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Size returns the total size of the backing data.
func (m *ByteSource) Size() int64 {
	return int64(len(m.data))
}

// MemoryCache implements a basic concurrency-safe cache for tests.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string][]byte
	hits atomic.Int64
	puts atomic.Int64
}

// NewMemoryCache constructs an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string][]byte)}
}

// Get retrieves data by key.
func (c *MemoryCache) Get(key []byte) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.data[string(key)]
	if ok {
		c.hits.Add(1)
	}
	return data, ok
}

// Put stores data by key.
func (c *MemoryCache) Put(key, content []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts.Add(1)
	c.data[string(key)] = content
	return nil
}

// Hits returns how many Gets found an entry.
func (c *MemoryCache) Hits() int64 { return c.hits.Load() }

// Puts returns how many Puts were made.
func (c *MemoryCache) Puts() int64 { return c.puts.Load() }
