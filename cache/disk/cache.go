// Package disk provides a disk-backed cache implementation.
package disk

import (
	"encoding/hex"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/singleflight"

	"github.com/meigma/recap/cache"
)

const (
	defaultShardPrefixLen = 2
	defaultDirPerm        = 0o700
)

// Interface compliance.
var (
	_ cache.Loader = (*Cache)(nil)
	_ cache.Sized  = (*Cache)(nil)
)

// Cache implements cache.Loader using the local filesystem.
//
// Payloads are stored zstd-compressed, one file per key, sharded by the
// leading hex characters of the key. When a size limit is set, the oldest
// files by modification time are pruned after each Put.
type Cache struct {
	dir            string
	shardPrefixLen int
	dirPerm        os.FileMode
	maxBytes       int64
	logger         *slog.Logger

	size      atomic.Int64
	pruneMu   sync.Mutex
	fillGroup singleflight.Group

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// Option configures a disk cache.
type Option func(*Cache)

// WithShardPrefixLen sets the number of hex characters used for sharding.
// Use 0 to disable sharding. Defaults to 2.
func WithShardPrefixLen(n int) Option {
	return func(c *Cache) {
		c.shardPrefixLen = n
	}
}

// WithDirPerm sets the directory permissions used for cache directories.
func WithDirPerm(mode os.FileMode) Option {
	return func(c *Cache) {
		c.dirPerm = mode
	}
}

// WithMaxBytes limits the cache size on disk. Zero means unlimited.
func WithMaxBytes(n int64) Option {
	return func(c *Cache) {
		c.maxBytes = n
	}
}

// WithLogger sets the logger for cache diagnostics.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New creates a disk-backed cache rooted at dir.
func New(dir string, opts ...Option) (*Cache, error) {
	if dir == "" {
		return nil, errors.New("cache dir is empty")
	}
	c := &Cache{
		dir:            dir,
		shardPrefixLen: defaultShardPrefixLen,
		dirPerm:        defaultDirPerm,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.shardPrefixLen < 0 {
		return nil, errors.New("shard prefix length must be >= 0")
	}
	if c.maxBytes < 0 {
		return nil, errors.New("max bytes must be >= 0")
	}
	if err := os.MkdirAll(dir, c.dirPerm); err != nil {
		return nil, err
	}
	size, err := dirSize(dir)
	if err != nil {
		return nil, err
	}
	c.size.Store(size)

	c.encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	c.decoder, err = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// Get retrieves a payload by key.
func (c *Cache) Get(key []byte) ([]byte, bool) {
	path, err := c.path(key)
	if err != nil {
		return nil, false
	}
	stored, err := os.ReadFile(path) //nolint:gosec // path is derived from key, not user input
	if err != nil {
		return nil, false
	}
	content, err := c.decoder.DecodeAll(stored, nil)
	if err != nil {
		c.log().Warn("dropping corrupt cache file", slog.String("path", path), slog.Any("error", err))
		_ = os.Remove(path)
		return nil, false
	}
	return content, true
}

// Put stores a payload under key.
func (c *Cache) Put(key, content []byte) error {
	path, err := c.path(key)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, c.dirPerm); err != nil {
		return err
	}

	stored := c.encoder.EncodeAll(content, nil)
	tmp, err := os.CreateTemp(dir, "cache-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(stored); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			_ = os.Remove(tmpPath)
			return nil
		}
		_ = os.Remove(tmpPath)
		return err
	}

	if total := c.size.Add(int64(len(stored))); c.maxBytes > 0 && total > c.maxBytes {
		if _, err := c.Prune(c.maxBytes); err != nil {
			c.log().Warn("cache prune failed", slog.Any("error", err))
		}
	}
	return nil
}

// Load returns the payload for key, filling it on a miss. Concurrent
// loads of one key share a single fill.
func (c *Cache) Load(key []byte, fill func() ([]byte, error)) ([]byte, error) {
	if content, ok := c.Get(key); ok {
		return content, nil
	}

	result, err, _ := c.fillGroup.Do(string(key), func() (any, error) {
		// Another caller may have stored the payload since the first Get.
		if content, ok := c.Get(key); ok {
			return content, nil
		}
		content, err := fill()
		if err != nil {
			return nil, err
		}
		if err := c.Put(key, content); err != nil {
			c.log().Debug("cache put failed", slog.Any("error", err))
		}
		return content, nil
	})
	if err != nil {
		return nil, err
	}

	content, _ := result.([]byte) //nolint:errcheck // type assertion always succeeds when err is nil
	return content, nil
}

// MaxBytes returns the configured cache size limit (0 = unlimited).
func (c *Cache) MaxBytes() int64 { return c.maxBytes }

// SizeBytes returns the current cache size in bytes.
func (c *Cache) SizeBytes() int64 { return c.size.Load() }

// Prune removes the oldest cached files until the cache is at or below
// targetBytes. Returns the number of bytes freed.
func (c *Cache) Prune(targetBytes int64) (int64, error) {
	c.pruneMu.Lock()
	defer c.pruneMu.Unlock()

	freed, remaining, err := pruneDir(c.dir, targetBytes)
	if err != nil {
		c.size.Add(-freed)
		return freed, err
	}
	c.size.Store(remaining)
	if freed > 0 {
		c.log().Debug("pruned cache",
			slog.Int64("freed", freed),
			slog.Int64("remaining", remaining))
	}
	return freed, nil
}

func (c *Cache) path(key []byte) (string, error) {
	if len(key) == 0 {
		return "", errors.New("key is empty")
	}
	hexKey := hex.EncodeToString(key)
	if c.shardPrefixLen <= 0 {
		return filepath.Join(c.dir, hexKey), nil
	}
	prefixLen := min(c.shardPrefixLen, len(hexKey))
	return filepath.Join(c.dir, hexKey[:prefixLen], hexKey), nil
}
