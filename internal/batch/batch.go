// Package batch writes many payloads to a Sink concurrently.
package batch

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Writer fans payloads produced by a single reader out to a pool of sink
// writers.
//
// The producer iterator runs on the calling goroutine, so a source that is
// not safe for concurrent use (such as an open archive) is only ever read
// serially. Only the writes run in parallel.
type Writer struct {
	sink    Sink
	workers int
	logger  *slog.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithWorkers sets the number of concurrent sink writes.
// Values <= 0 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(w *Writer) {
		w.workers = n
	}
}

// WithLogger sets the logger for per-item diagnostics.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// NewWriter creates a batch writer over sink.
func NewWriter(sink Sink, opts ...Option) *Writer {
	w := &Writer{sink: sink}
	for _, opt := range opts {
		opt(w)
	}
	if w.workers <= 0 {
		w.workers = runtime.GOMAXPROCS(0)
	}
	return w
}

func (w *Writer) log() *slog.Logger {
	if w.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return w.logger
}

// Write drains items and commits each to the sink.
//
// Writing stops at the first producer or sink error, or when ctx is
// canceled. Items already handed to a worker finish first. The returned
// stats count what was committed before the stop.
func (w *Writer) Write(ctx context.Context, items iter.Seq2[Item, error]) (Stats, error) {
	var (
		mu    sync.Mutex
		stats Stats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)

	var produceErr error
	for item, err := range items {
		if err != nil {
			produceErr = err
			break
		}
		if gctx.Err() != nil {
			break
		}
		if !w.sink.ShouldProcess(item.Path) {
			w.log().Debug("skipping existing file", slog.String("path", item.Path))
			stats.Skipped++
			continue
		}
		g.Go(func() error {
			if err := w.writeItem(item); err != nil {
				return err
			}
			mu.Lock()
			stats.Written++
			stats.TotalBytes += uint64(len(item.Data))
			mu.Unlock()
			return nil
		})
	}

	waitErr := g.Wait()
	if err := errors.Join(produceErr, waitErr); err != nil {
		return stats, err
	}
	return stats, ctx.Err()
}

func (w *Writer) writeItem(item Item) error {
	c, err := w.sink.Writer(item.Path)
	if err != nil {
		return fmt.Errorf("batch: %s: %w", item.Path, err)
	}
	if _, err := c.Write(item.Data); err != nil {
		_ = c.Discard() //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("batch: %s: %w", item.Path, err)
	}
	if err := c.Commit(); err != nil {
		return fmt.Errorf("batch: %s: commit: %w", item.Path, err)
	}
	w.log().Debug("wrote file", slog.String("path", item.Path), slog.Int("bytes", len(item.Data)))
	return nil
}
