package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSink captures written items for testing.
type mockSink struct {
	mu            sync.Mutex
	shouldProcess func(string) bool
	written       map[string][]byte
	errors        map[string]error
}

func newMockSink() *mockSink {
	return &mockSink{
		shouldProcess: func(string) bool { return true },
		written:       make(map[string][]byte),
		errors:        make(map[string]error),
	}
}

func (s *mockSink) ShouldProcess(path string) bool {
	return s.shouldProcess(path)
}

func (s *mockSink) Writer(path string) (Committer, error) {
	if err := s.errors[path]; err != nil {
		return nil, err
	}
	return &mockCommitter{sink: s, path: path}, nil
}

type mockCommitter struct {
	sink *mockSink
	path string
	buf  bytes.Buffer
}

func (c *mockCommitter) Write(p []byte) (int, error) { return c.buf.Write(p) }

func (c *mockCommitter) Commit() error {
	c.sink.mu.Lock()
	defer c.sink.mu.Unlock()
	c.sink.written[c.path] = c.buf.Bytes()
	return nil
}

func (c *mockCommitter) Discard() error { return nil }

func itemsOf(items ...Item) iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		for _, it := range items {
			if !yield(it, nil) {
				return
			}
		}
	}
}

func TestWriterWritesAll(t *testing.T) {
	t.Parallel()

	var items []Item
	for i := range 20 {
		items = append(items, Item{Path: fmt.Sprintf("g/%02d.bin", i), Data: []byte{byte(i)}})
	}

	sink := newMockSink()
	stats, err := NewWriter(sink, WithWorkers(4)).Write(context.Background(), itemsOf(items...))
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Written)
	assert.Equal(t, uint64(20), stats.TotalBytes)
	assert.Len(t, sink.written, 20)
	assert.Equal(t, []byte{7}, sink.written["g/07.bin"])
}

func TestWriterSkips(t *testing.T) {
	t.Parallel()

	sink := newMockSink()
	sink.shouldProcess = func(path string) bool { return path != "skip" }

	stats, err := NewWriter(sink).Write(context.Background(),
		itemsOf(Item{Path: "keep", Data: []byte("k")}, Item{Path: "skip", Data: []byte("s")}))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Written)
	assert.Equal(t, 1, stats.Skipped)
	assert.NotContains(t, sink.written, "skip")
}

func TestWriterStopsOnSinkError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	sink := newMockSink()
	sink.errors["bad"] = boom

	_, err := NewWriter(sink, WithWorkers(1)).Write(context.Background(),
		itemsOf(Item{Path: "bad"}, Item{Path: "after"}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
}

func TestWriterProducerError(t *testing.T) {
	t.Parallel()

	boom := errors.New("read failed")
	items := func(yield func(Item, error) bool) {
		if !yield(Item{Path: "first", Data: []byte("1")}, nil) {
			return
		}
		yield(Item{}, boom)
	}

	sink := newMockSink()
	stats, err := NewWriter(sink).Write(context.Background(), items)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, stats.Written)
}

func TestWriterCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWriter(newMockSink()).Write(ctx, itemsOf(Item{Path: "a"}))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFileSink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	_, err = NewWriter(sink).Write(context.Background(),
		itemsOf(Item{Path: "grp/ZelemBoss.phase", Data: []byte("payload")}))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "grp", "ZelemBoss.phase"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	leftovers, err := filepath.Glob(filepath.Join(dir, "grp", ".recap-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temp files are renamed away")

	assert.False(t, sink.ShouldProcess("grp/ZelemBoss.phase"), "existing files are skipped")
	assert.True(t, sink.ShouldProcess("grp/other.phase"))
	assert.False(t, sink.ShouldProcess("../escape"), "paths must stay inside the root")
}

func TestFileSinkOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), []byte("old"), 0o600))

	sink, err := NewFileSink(dir, WithOverwrite(true))
	require.NoError(t, err)
	require.True(t, sink.ShouldProcess("a.bin"))

	_, err = NewWriter(sink).Write(context.Background(), itemsOf(Item{Path: "a.bin", Data: []byte("new")}))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "a.bin"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestFileSinkZstd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink, err := NewFileSink(dir, WithZstd(true))
	require.NoError(t, err)

	payload := bytes.Repeat([]byte("phase "), 100)
	_, err = NewWriter(sink).Write(context.Background(), itemsOf(Item{Path: "g/a.phase", Data: payload}))
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(dir, "g", "a.phase"+ZstdExt))
	require.NoError(t, err)

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	got, err := dec.DecodeAll(stored, nil)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFileSinkDiscard(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	c, err := sink.Writer("x/discarded.bin")
	require.NoError(t, err)
	_, err = c.Write([]byte("partial"))
	require.NoError(t, err)
	require.NoError(t, c.Discard())

	entries, err := os.ReadDir(filepath.Join(dir, "x"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileSinkInvalidPath(t *testing.T) {
	t.Parallel()

	sink, err := NewFileSink(t.TempDir())
	require.NoError(t, err)
	_, err = sink.Writer("/abs")
	require.Error(t, err)
}
