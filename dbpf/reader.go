// Package dbpf reads DBPF and DBBF package archives.
//
// An archive is a fixed header, the stored entry payloads and an index of
// (type, group, instance) keys. Payloads are usually RefPack-compressed.
// Entries can be addressed by key or by a virtual name such as
// "ZelemBoss.phase", resolved through name registries.
//
// A Reader is not safe for concurrent use. Open one reader per goroutine.
package dbpf

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/meigma/recap/cache"
	"github.com/meigma/recap/hashid"
	"github.com/meigma/recap/internal/errs"
	"github.com/meigma/recap/internal/refpack"
	"github.com/meigma/recap/internal/sizing"
	"github.com/meigma/recap/names"
)

// Reader provides access to the entries of one archive.
type Reader struct {
	src     io.ReaderAt
	closer  io.Closer
	size    int64
	header  header
	entries []Entry

	types   *names.Registry
	files   *names.Registry
	project *names.Registry

	cache  cache.Cache
	logger *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger for archive diagnostics.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// WithRegistries sets the external type and file name registries. Either
// may be nil.
func WithRegistries(types, files *names.Registry) Option {
	return func(r *Reader) {
		r.types = types
		r.files = files
	}
}

// WithCache caches decompressed payloads in c, keyed by the SHA-256 of the
// stored bytes.
func WithCache(c cache.Cache) Option {
	return func(r *Reader) {
		r.cache = c
	}
}

// Open opens the archive at path. The file is closed by Close, or before
// returning if the archive cannot be parsed.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path) //nolint:gosec // caller chooses the path
	if err != nil {
		return nil, errs.IO("open archive", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close() //nolint:errcheck // best-effort cleanup
		return nil, errs.IO("stat archive", err)
	}
	r, err := NewReader(f, info.Size(), opts...)
	if err != nil {
		_ = f.Close() //nolint:errcheck // best-effort cleanup
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.closer = f
	return r, nil
}

// NewReader parses the archive held by src, which is size bytes long.
func NewReader(src io.ReaderAt, size int64, opts ...Option) (*Reader, error) {
	r := &Reader{
		src:     src,
		size:    size,
		project: names.New(),
	}
	for _, opt := range opts {
		opt(r)
	}

	h, err := parseHeader(src, size)
	if err != nil {
		return nil, err
	}
	entries, err := parseIndex(src, size, h)
	if err != nil {
		return nil, err
	}
	r.header = h
	r.entries = entries

	r.log().Debug("opened archive",
		slog.Bool("wide", h.wide),
		slog.Uint64("major", uint64(h.major)),
		slog.Uint64("minor", uint64(h.minor)),
		slog.Int("entries", len(entries)))

	r.loadProjectNames()
	return r, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (r *Reader) log() *slog.Logger {
	if r.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.logger
}

// loadProjectNames loads the name table some archives embed under the
// "sporemaster" group. A missing table is normal.
func (r *Reader) loadProjectNames() {
	group, instance := hashid.String("sporemaster"), hashid.String("names")
	for _, e := range r.entries {
		if e.Key.Group != group || e.Key.Instance != instance {
			continue
		}
		data, err := r.ReadEntry(e)
		if err != nil {
			r.log().Warn("cannot read embedded names", slog.String("key", e.Key.String()), slog.Any("error", err))
			return
		}
		if err := r.project.Load(bytes.NewReader(data)); err != nil {
			r.log().Warn("cannot parse embedded names", slog.Any("error", err))
			return
		}
		r.log().Debug("loaded embedded names", slog.Int("names", r.project.Len()))
		return
	}
}

// Close releases the underlying file, if the reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Wide reports whether the archive uses 64-bit offsets (DBBF).
func (r *Reader) Wide() bool { return r.header.wide }

// Len returns the number of index entries.
func (r *Reader) Len() int { return len(r.entries) }

// Entries iterates over index entries in stored order.
func (r *Reader) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Lookup returns the entry with key.
func (r *Reader) Lookup(key ResourceKey) (Entry, bool) {
	for _, e := range r.entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// ReadEntry returns the payload of e, decompressing it when needed.
//
// A payload that fails to decompress is logged and returned as far as it
// could be decoded, without an error. Errors are returned only when the
// stored bytes cannot be read.
func (r *Reader) ReadEntry(e Entry) ([]byte, error) {
	stored, err := r.readStored(e)
	if err != nil {
		return nil, err
	}
	if !e.Compressed {
		return stored, nil
	}
	if r.cache == nil {
		return r.decompress(e, stored), nil
	}

	sum := sha256.Sum256(stored)
	data, err := cache.Load(r.cache, sum[:], func() ([]byte, error) {
		out, err := refpack.Decompress(stored)
		if err != nil {
			return nil, &partialError{data: out, err: err}
		}
		return out, nil
	})
	var perr *partialError
	if errors.As(err, &perr) {
		r.warnPartial(e, len(perr.data), perr.err)
		return perr.data, nil
	}
	return data, err
}

func (r *Reader) readStored(e Entry) ([]byte, error) {
	end, ok := sizing.AddUint64(e.Offset, uint64(e.CompressedSize))
	if !ok || end > uint64(r.size) { //nolint:gosec // size is non-negative
		return nil, errs.Formatf("entry %s: %d bytes at 0x%X run past end of archive", e.Key, e.CompressedSize, e.Offset)
	}
	off, err := sizing.ToInt64(e.Offset, errs.ErrSizeOverflow)
	if err != nil {
		return nil, err
	}
	stored := make([]byte, e.CompressedSize)
	if err := readAt(r.src, stored, off); err != nil {
		return nil, fmt.Errorf("entry %s: %w", e.Key, err)
	}
	return stored, nil
}

func (r *Reader) decompress(e Entry, stored []byte) []byte {
	out, err := refpack.Decompress(stored)
	if err != nil {
		r.warnPartial(e, len(out), err)
	}
	return out
}

func (r *Reader) warnPartial(e Entry, got int, err error) {
	r.log().Warn("entry decompressed partially",
		slog.String("key", e.Key.String()),
		slog.Int("bytes", got),
		slog.Uint64("expected", uint64(e.DecompressedSize)),
		slog.Any("error", err))
}

// partialError carries best-effort output through a cache fill so that it
// is returned to the caller but never cached.
type partialError struct {
	data []byte
	err  error
}

func (e *partialError) Error() string { return e.err.Error() }
func (e *partialError) Unwrap() error { return e.err }
