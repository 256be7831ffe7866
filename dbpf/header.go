package dbpf

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/meigma/recap/internal/errs"
	"github.com/meigma/recap/internal/sizing"
)

// Archive magics, little-endian.
const (
	MagicDBPF uint32 = 0x46504244 // "DBPF"
	MagicDBBF uint32 = 0x46424244 // "DBBF", 64-bit offsets
)

const (
	headerLen = 0x60

	offCount       = 0x24
	offIndexWide   = 0x30
	offIndexNarrow = 0x40

	flagSharedType  = 1 << 0
	flagSharedGroup = 1 << 1
	flagReserved    = 1 << 2
)

// header is the parsed fixed archive header.
type header struct {
	wide        bool
	major       uint32
	minor       uint32
	count       int
	indexOffset uint64
}

func readAt(src io.ReaderAt, p []byte, off int64) error {
	n, err := src.ReadAt(p, off)
	if n == len(p) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return errs.Formatf("short read: %d of %d bytes at 0x%X", n, len(p), off)
	}
	return errs.IO("read archive", err)
}

func parseHeader(src io.ReaderAt, size int64) (header, error) {
	var h header
	need := int64(offIndexNarrow + 4)
	if size < need {
		return h, errs.Formatf("archive is %d bytes, shorter than its header", size)
	}
	buf := make([]byte, min(size, headerLen))
	if err := readAt(src, buf, 0); err != nil {
		return h, err
	}

	le := binary.LittleEndian
	switch magic := le.Uint32(buf); magic {
	case MagicDBPF:
	case MagicDBBF:
		h.wide = true
	default:
		return h, errs.Formatf("bad archive magic 0x%08X", magic)
	}
	h.major = le.Uint32(buf[4:])
	h.minor = le.Uint32(buf[8:])

	count := int32(le.Uint32(buf[offCount:])) //nolint:gosec // the count is a signed word on disk
	if count < 0 {
		return h, errs.Formatf("negative entry count %d", count)
	}
	h.count = int(count)
	if h.wide {
		h.indexOffset = le.Uint64(buf[offIndexWide:])
	} else {
		h.indexOffset = uint64(le.Uint32(buf[offIndexNarrow:]))
	}
	return h, nil
}

// parseIndex reads the entry table described by h.
func parseIndex(src io.ReaderAt, size int64, h header) ([]Entry, error) {
	indexOff, err := sizing.ToInt64(h.indexOffset, errs.ErrSizeOverflow)
	if err != nil {
		return nil, errs.Formatf("index offset 0x%X out of range", h.indexOffset)
	}

	var word [4]byte
	if indexOff > size-4 {
		return nil, errs.Formatf("index offset 0x%X past end of %d byte archive", indexOff, size)
	}
	if err := readAt(src, word[:], indexOff); err != nil {
		return nil, err
	}
	flags := binary.LittleEndian.Uint32(word[:])

	extra := 0
	recLen := 4 + 4 + 4 + 2 + 1 + 1 // instance, sizes, flag, two bytes
	if h.wide {
		recLen += 8
	} else {
		recLen += 4
	}
	if flags&flagSharedType != 0 {
		extra += 4
	} else {
		recLen += 4
	}
	if flags&flagSharedGroup != 0 {
		extra += 4
	} else {
		recLen += 4
	}
	if flags&flagReserved != 0 {
		extra += 4
	}

	tableLen, ok := sizing.MulInt(recLen, h.count)
	if !ok {
		return nil, errs.Formatf("index of %d entries overflows", h.count)
	}
	total := int64(extra) + int64(tableLen)
	if total > size-indexOff-4 {
		return nil, errs.Formatf("index of %d entries runs past end of archive", h.count)
	}
	buf := make([]byte, total)
	if err := readAt(src, buf, indexOff+4); err != nil {
		return nil, err
	}

	le := binary.LittleEndian
	p := 0
	next32 := func() uint32 {
		v := le.Uint32(buf[p:])
		p += 4
		return v
	}

	var sharedType, sharedGroup uint32
	if flags&flagSharedType != 0 {
		sharedType = next32()
	}
	if flags&flagSharedGroup != 0 {
		sharedGroup = next32()
	}
	if flags&flagReserved != 0 {
		p += 4
	}

	entries := make([]Entry, 0, h.count)
	for range h.count {
		var e Entry
		e.Key.Type = sharedType
		if flags&flagSharedType == 0 {
			e.Key.Type = next32()
		}
		e.Key.Group = sharedGroup
		if flags&flagSharedGroup == 0 {
			e.Key.Group = next32()
		}
		e.Key.Instance = next32()
		if h.wide {
			e.Offset = le.Uint64(buf[p:])
			p += 8
		} else {
			e.Offset = uint64(next32())
		}
		e.CompressedSize = next32() & 0x7FFFFFFF
		e.DecompressedSize = next32()
		e.Compressed = le.Uint16(buf[p:]) != 0
		p += 2 + 1 + 1
		entries = append(entries, e)
	}
	return entries, nil
}
