package disk

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func key(stored string) []byte {
	sum := sha256.Sum256([]byte(stored))
	return sum[:]
}

func TestCachePutGet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	content := bytes.Repeat([]byte("payload "), 64)
	k := key("stored entry")

	if err := c.Put(k, content); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok := c.Get(k)
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("Get() content = %q, want %q", got, content)
	}

	hexKey := hex.EncodeToString(k)
	path := filepath.Join(dir, hexKey[:defaultShardPrefixLen], hexKey)
	stored, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected cache file at %s: %v", path, err)
	}
	if len(stored) >= len(content) {
		t.Fatalf("stored %d bytes, want fewer than %d (zstd)", len(stored), len(content))
	}
}

func TestCacheGetMissing(t *testing.T) {
	t.Parallel()

	c, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := c.Get(key("absent")); ok {
		t.Fatal("Get() ok = true, want false")
	}
	if _, ok := c.Get(nil); ok {
		t.Fatal("Get(nil) ok = true, want false")
	}
}

func TestCacheCorruptFileIsDropped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c, err := New(dir, WithShardPrefixLen(0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	k := key("corrupt")
	path := filepath.Join(dir, hex.EncodeToString(k))
	if err := os.WriteFile(path, []byte("not zstd"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, ok := c.Get(k); ok {
		t.Fatal("Get() ok = true, want false")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("corrupt file still present: %v", err)
	}
}

func TestCacheShardDisable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c, err := New(dir, WithShardPrefixLen(0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	k := key("flat")
	if err := c.Put(k, []byte("flat")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	path := filepath.Join(dir, hex.EncodeToString(k))
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected cache file at %s: %v", path, err)
	}
}

func TestCacheLoadDeduplicatesFills(t *testing.T) {
	t.Parallel()

	c, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	k := key("shared")
	var fills atomic.Int64
	release := make(chan struct{})
	fill := func() ([]byte, error) {
		fills.Add(1)
		<-release
		return []byte("decompressed"), nil
	}

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = c.Load(k, fill)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range results {
		if errs[i] != nil {
			t.Fatalf("Load() error = %v", errs[i])
		}
		if string(results[i]) != "decompressed" {
			t.Fatalf("Load() = %q, want %q", results[i], "decompressed")
		}
	}
	// A late goroutine may miss the shared fill but then hits the cache.
	if n := fills.Load(); n > 2 {
		t.Fatalf("fill ran %d times, want at most 2", n)
	}

	if _, err := c.Load(k, func() ([]byte, error) {
		t.Fatal("fill called on a cache hit")
		return nil, nil
	}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestCacheLoadFillError(t *testing.T) {
	t.Parallel()

	c, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	boom := errors.New("boom")
	if _, err := c.Load(key("err"), func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("Load() error = %v, want %v", err, boom)
	}
	if _, ok := c.Get(key("err")); ok {
		t.Fatal("failed fill was cached")
	}
}

func TestCachePruneOldestFirst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c, err := New(dir, WithShardPrefixLen(0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	old, fresh := key("old"), key("fresh")
	if err := c.Put(old, []byte("old payload")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := c.Put(fresh, []byte("fresh payload")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(filepath.Join(dir, hex.EncodeToString(old)), past, past); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, hex.EncodeToString(fresh)))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	freed, err := c.Prune(info.Size())
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if freed == 0 {
		t.Fatal("Prune() freed = 0, want > 0")
	}
	if _, ok := c.Get(old); ok {
		t.Fatal("oldest entry survived prune")
	}
	if _, ok := c.Get(fresh); !ok {
		t.Fatal("newest entry was pruned")
	}
	if got := c.SizeBytes(); got != info.Size() {
		t.Fatalf("SizeBytes() = %d, want %d", got, info.Size())
	}
}

func TestCacheMaxBytesPrunesOnPut(t *testing.T) {
	t.Parallel()

	c, err := New(t.TempDir(), WithMaxBytes(1))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.MaxBytes() != 1 {
		t.Fatalf("MaxBytes() = %d, want 1", c.MaxBytes())
	}

	if err := c.Put(key("a"), []byte("more than one byte")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if got := c.SizeBytes(); got > 1 {
		t.Fatalf("SizeBytes() = %d, want <= 1", got)
	}
}

func TestNewInvalidOptions(t *testing.T) {
	t.Parallel()

	if _, err := New(""); err == nil {
		t.Fatal("New(\"\") error = nil, want error")
	}
	if _, err := New(t.TempDir(), WithShardPrefixLen(-1)); err == nil {
		t.Fatal("New() with negative shard length error = nil, want error")
	}
	if _, err := New(t.TempDir(), WithMaxBytes(-1)); err == nil {
		t.Fatal("New() with negative max bytes error = nil, want error")
	}
}
