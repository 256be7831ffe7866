package testutil

import (
	"encoding/binary"
	"math"
)

// Asset builds a compiled asset: a fixed-size header followed by a blob.
// Header writes are little-endian at absolute offsets; blob writes append.
type Asset struct {
	header []byte
	blob   []byte
}

// NewAsset returns a builder with a zeroed header of headerSize bytes.
func NewAsset(headerSize int) *Asset {
	return &Asset{header: make([]byte, headerSize)}
}

// U8 writes v at off in the header.
func (a *Asset) U8(off int, v uint8) *Asset {
	a.header[off] = v
	return a
}

// U16 writes v at off in the header.
func (a *Asset) U16(off int, v uint16) *Asset {
	binary.LittleEndian.PutUint16(a.header[off:], v)
	return a
}

// U32 writes v at off in the header.
func (a *Asset) U32(off int, v uint32) *Asset {
	binary.LittleEndian.PutUint32(a.header[off:], v)
	return a
}

// I32 writes v at off in the header.
func (a *Asset) I32(off int, v int32) *Asset {
	return a.U32(off, uint32(v)) //nolint:gosec // bit pattern is intended
}

// U64 writes v at off in the header.
func (a *Asset) U64(off int, v uint64) *Asset {
	binary.LittleEndian.PutUint64(a.header[off:], v)
	return a
}

// F32 writes consecutive floats starting at off in the header.
func (a *Asset) F32(off int, vs ...float32) *Asset {
	for i, v := range vs {
		a.U32(off+4*i, math.Float32bits(v))
	}
	return a
}

// Text copies s into the header at off without a terminator.
func (a *Asset) Text(off int, s string) *Asset {
	copy(a.header[off:], s)
	return a
}

// Present sets the presence indicator at off to 1.
func (a *Asset) Present(off int) *Asset {
	return a.U32(off, 1)
}

// Array writes an array header at off: presence 1 and count at off+4.
func (a *Asset) Array(off int, count int32) *Asset {
	return a.Present(off).I32(off+4, count)
}

// Strings appends NUL-terminated strings to the blob.
func (a *Asset) Strings(ss ...string) *Asset {
	for _, s := range ss {
		a.blob = append(a.blob, s...)
		a.blob = append(a.blob, 0)
	}
	return a
}

// BlobU32 appends little-endian words to the blob.
func (a *Asset) BlobU32(vs ...uint32) *Asset {
	for _, v := range vs {
		a.blob = binary.LittleEndian.AppendUint32(a.blob, v)
	}
	return a
}

// BlobF32 appends little-endian floats to the blob.
func (a *Asset) BlobF32(vs ...float32) *Asset {
	for _, v := range vs {
		a.blob = binary.LittleEndian.AppendUint32(a.blob, math.Float32bits(v))
	}
	return a
}

// Blob appends raw bytes to the blob.
func (a *Asset) Blob(b ...byte) *Asset {
	a.blob = append(a.blob, b...)
	return a
}

// Zeros appends n zero bytes to the blob.
func (a *Asset) Zeros(n int) *Asset {
	a.blob = append(a.blob, make([]byte, n)...)
	return a
}

// HeaderSize returns the header length.
func (a *Asset) HeaderSize() int { return len(a.header) }

// Bytes returns header and blob as one buffer.
func (a *Asset) Bytes() []byte {
	out := make([]byte, 0, len(a.header)+len(a.blob))
	out = append(out, a.header...)
	return append(out, a.blob...)
}
