// Package decode turns compiled asset bytes into a node tree using the
// layouts in a schema catalog.
//
// An asset is a fixed-size header laid out by its root struct, followed by
// a blob. Strings, arrays and optional structs keep a presence indicator in
// the header and their payload in the blob, written in field declaration
// order. The decoder walks fields in that same order with a single
// forward-only cursor over the blob.
package decode

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meigma/recap/internal/cursor"
	"github.com/meigma/recap/internal/errs"
	"github.com/meigma/recap/internal/sizing"
	"github.com/meigma/recap/node"
	"github.com/meigma/recap/schema"
)

const (
	// DefaultMaxArrayCount bounds array counts read from a header.
	DefaultMaxArrayCount = 1_000_000

	// DefaultMaxInput bounds the bytes accepted by DecodeReader and DecodeFile.
	DefaultMaxInput = 256 << 20
)

// Decoder decodes assets against one catalog. It holds no per-call state
// and is safe for concurrent use.
type Decoder struct {
	catalog       *schema.Catalog
	maxArrayCount int
	maxInput      uint64
	logger        *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger for decode diagnostics.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithMaxArrayCount sets the largest array count accepted before the data
// is treated as corrupt. Values <= 0 restore the default.
func WithMaxArrayCount(n int) Option {
	return func(d *Decoder) {
		if n <= 0 {
			n = DefaultMaxArrayCount
		}
		d.maxArrayCount = n
	}
}

// WithMaxInput limits how many bytes DecodeReader and DecodeFile will read.
func WithMaxInput(n uint64) Option {
	return func(d *Decoder) {
		d.maxInput = n
	}
}

// New returns a decoder for layouts in cat.
func New(cat *schema.Catalog, opts ...Option) *Decoder {
	d := &Decoder{
		catalog:       cat,
		maxArrayCount: DefaultMaxArrayCount,
		maxInput:      DefaultMaxInput,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// log returns the logger, falling back to a discard logger if nil.
func (d *Decoder) log() *slog.Logger {
	if d.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.logger
}

// Catalog returns the catalog the decoder reads layouts from.
func (d *Decoder) Catalog() *schema.Catalog { return d.catalog }

// Decode decodes data whose header is laid out by the struct named root.
// The blob starts at headerSize. Either the whole tree is returned or an
// error; failures inside a field are reported as *errs.FieldError.
func (d *Decoder) Decode(root string, headerSize int, data []byte) (*node.Struct, error) {
	tree, _, err := d.DecodeExtent(root, headerSize, data)
	return tree, err
}

// DecodeExtent is like Decode and also returns the blob offset the cursor
// stopped at.
func (d *Decoder) DecodeExtent(root string, headerSize int, data []byte) (*node.Struct, int, error) {
	def, ok := d.catalog.Struct(root)
	if !ok {
		return nil, 0, errs.MissingStruct(root)
	}
	if !sizing.InRange(0, headerSize, len(data)) {
		return nil, 0, errs.Formatf("header size %d exceeds %d bytes of data", headerSize, len(data))
	}

	s := &state{
		d:    d,
		data: data,
		blob: cursor.New(data, headerSize),
	}
	tree := &node.Struct{
		Meta:     node.Meta{FieldName: strings.ToLower(def.Name)},
		TypeName: def.Name,
	}
	if err := s.decodeStruct(tree, def, 0); err != nil {
		return nil, 0, err
	}

	d.log().Debug("decoded asset",
		slog.String("root", def.Name),
		slog.Int("header", headerSize),
		slog.Int("blob", s.blob.Pos()-headerSize),
		slog.Int("size", len(data)))
	return tree, s.blob.Pos(), nil
}

// DecodeReader reads all of r and decodes it.
func (d *Decoder) DecodeReader(r io.Reader, root string, headerSize int) (*node.Struct, error) {
	data, err := sizing.ReadAllWithLimit(r, d.maxInput, errs.ErrSizeOverflow)
	if err != nil {
		return nil, errs.IO("read asset", err)
	}
	return d.Decode(root, headerSize, data)
}

// DecodeFile decodes the file at path, taking the root struct from its
// extension.
func (d *Decoder) DecodeFile(path string) (*node.Struct, error) {
	ext := filepath.Ext(path)
	ft, ok := d.catalog.FileType(ext)
	if !ok {
		return nil, errs.Formatf("no struct registered for extension %q", ext)
	}
	f, err := os.Open(path) //nolint:gosec // caller chooses the path
	if err != nil {
		return nil, errs.IO("open asset", err)
	}
	defer f.Close()

	tree, err := d.DecodeReader(f, ft.RootStruct, ft.HeaderSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}
