package dbpf

import (
	"context"
	"io/fs"
	"log/slog"
	"path"

	"github.com/meigma/recap/hashid"
	"github.com/meigma/recap/internal/batch"
)

// ExtractStats reports the outcome of Extract.
type ExtractStats struct {
	// Written is the number of entries written.
	Written int

	// Skipped is the number of entries whose file already existed.
	Skipped int

	// TotalBytes is the sum of written payload sizes.
	TotalBytes uint64
}

type extractConfig struct {
	overwrite bool
	workers   int
	typ       string
	zstd      bool
}

// ExtractOption configures Extract.
type ExtractOption func(*extractConfig)

// ExtractOverwrite replaces existing files. By default they are skipped.
func ExtractOverwrite(overwrite bool) ExtractOption {
	return func(c *extractConfig) {
		c.overwrite = overwrite
	}
}

// ExtractWorkers sets the number of concurrent file writes.
// Values <= 0 use GOMAXPROCS.
func ExtractWorkers(n int) ExtractOption {
	return func(c *extractConfig) {
		c.workers = n
	}
}

// ExtractType limits extraction to entries of one type, given as a name
// such as "phase".
func ExtractType(typ string) ExtractOption {
	return func(c *extractConfig) {
		c.typ = typ
	}
}

// ExtractZstd writes each file zstd-compressed with a ".zst" suffix.
func ExtractZstd(enabled bool) ExtractOption {
	return func(c *extractConfig) {
		c.zstd = enabled
	}
}

// Extract writes entries to destDir as <group>/<instance>.<type>, using
// registry names where known and hex ids otherwise.
//
// Entries are read one at a time on the calling goroutine; only the file
// writes run concurrently. Extraction stops at the first error or when ctx
// is canceled.
func (r *Reader) Extract(ctx context.Context, destDir string, opts ...ExtractOption) (ExtractStats, error) {
	var cfg extractConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sink, err := batch.NewFileSink(destDir,
		batch.WithOverwrite(cfg.overwrite),
		batch.WithZstd(cfg.zstd))
	if err != nil {
		return ExtractStats{}, err
	}
	w := batch.NewWriter(sink,
		batch.WithWorkers(cfg.workers),
		batch.WithLogger(r.logger))

	entries := r.List()
	if cfg.typ != "" {
		entries = r.ListByType(cfg.typ)
	}

	items := func(yield func(batch.Item, error) bool) {
		for name, e := range entries {
			if err := ctx.Err(); err != nil {
				yield(batch.Item{}, err)
				return
			}
			p := r.entryPath(name, e)
			if !sink.ShouldProcess(p) {
				// Existing file: let the writer count the skip without
				// reading the payload.
				if !yield(batch.Item{Path: p}, nil) {
					return
				}
				continue
			}
			data, err := r.ReadEntry(e)
			if err != nil {
				yield(batch.Item{}, err)
				return
			}
			if !yield(batch.Item{Path: p, Data: data}, nil) {
				return
			}
		}
	}

	stats, err := w.Write(ctx, items)
	r.log().Info("extracted archive",
		slog.String("dest", destDir),
		slog.Int("written", stats.Written),
		slog.Int("skipped", stats.Skipped))
	return ExtractStats{
		Written:    stats.Written,
		Skipped:    stats.Skipped,
		TotalBytes: stats.TotalBytes,
	}, err
}

// entryPath builds the relative output path for e. Names that are not
// valid path elements fall back to hex ids.
func (r *Reader) entryPath(name string, e Entry) string {
	group := r.instanceName(e.Key.Group)
	if !validElem(group) {
		group = hashid.Format(e.Key.Group)
	}
	if !validElem(name) {
		name = hashid.Format(e.Key.Instance) + "." + hashid.Format(e.Key.Type)
	}
	return path.Join(group, name)
}

func validElem(s string) bool {
	return fs.ValidPath(s) && path.Base(s) == s
}
