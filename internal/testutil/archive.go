package testutil

import (
	"encoding/binary"
	"testing"
)

// Archive header constants shared with the reader under test.
const (
	MagicDBPF        = 0x46504244
	MagicDBBF        = 0x46424244
	ArchiveHeaderLen = 0x60
)

// ArchiveEntry describes one entry of a synthetic archive.
type ArchiveEntry struct {
	Type, Group, Instance uint32

	// Data is the decompressed payload.
	Data []byte

	// Compress stores Data RefPack-encoded with the compression flag set.
	Compress bool

	// Stored, when non-nil, replaces the stored bytes verbatim. MemSize
	// then defaults to len(Data).
	Stored []byte

	// Flag overrides the 16-bit compression flag when non-zero.
	Flag uint16
}

// Archive describes a synthetic DBPF (or wide DBBF) archive.
type Archive struct {
	Wide bool

	// SharedType and SharedGroup hoist the first entry's type or group into
	// the index header. Every entry must then use the same value.
	SharedType  bool
	SharedGroup bool

	// Reserved sets index flag bit 2 and writes the extra word.
	Reserved bool

	Entries []ArchiveEntry
}

// Build lays out the archive: header, payloads, then the index.
func (a Archive) Build(tb testing.TB) []byte {
	tb.Helper()

	out := make([]byte, ArchiveHeaderLen)
	le := binary.LittleEndian
	if a.Wide {
		le.PutUint32(out[0:], MagicDBBF)
	} else {
		le.PutUint32(out[0:], MagicDBPF)
	}
	le.PutUint32(out[4:], 3)
	le.PutUint32(out[8:], 1)
	le.PutUint32(out[0x24:], uint32(len(a.Entries))) //nolint:gosec // fixtures are small

	type placed struct {
		offset int
		stored []byte
	}
	payloads := make([]placed, len(a.Entries))
	for i, e := range a.Entries {
		stored := e.Stored
		if stored == nil {
			stored = e.Data
			if e.Compress {
				stored = RefPack(tb, e.Data)
			}
		}
		payloads[i] = placed{offset: len(out), stored: stored}
		out = append(out, stored...)
	}

	indexOffset := len(out)
	var flags uint32
	if a.SharedType {
		flags |= 1
	}
	if a.SharedGroup {
		flags |= 2
	}
	if a.Reserved {
		flags |= 4
	}
	out = le.AppendUint32(out, flags)
	if len(a.Entries) > 0 {
		if a.SharedType {
			out = le.AppendUint32(out, a.Entries[0].Type)
		}
		if a.SharedGroup {
			out = le.AppendUint32(out, a.Entries[0].Group)
		}
	}
	if a.Reserved {
		out = le.AppendUint32(out, 0xDEADBEEF)
	}

	for i, e := range a.Entries {
		if a.SharedType && e.Type != a.Entries[0].Type {
			tb.Fatalf("entry %d: type 0x%08X differs from shared type", i, e.Type)
		}
		if a.SharedGroup && e.Group != a.Entries[0].Group {
			tb.Fatalf("entry %d: group 0x%08X differs from shared group", i, e.Group)
		}
		if !a.SharedType {
			out = le.AppendUint32(out, e.Type)
		}
		if !a.SharedGroup {
			out = le.AppendUint32(out, e.Group)
		}
		out = le.AppendUint32(out, e.Instance)
		if a.Wide {
			out = le.AppendUint64(out, uint64(payloads[i].offset)) //nolint:gosec // offsets are non-negative
		} else {
			out = le.AppendUint32(out, uint32(payloads[i].offset)) //nolint:gosec // fixtures are small
		}
		// The top bit of the stored size is reserved and always set here.
		out = le.AppendUint32(out, uint32(len(payloads[i].stored))|0x80000000) //nolint:gosec // fixtures are small
		out = le.AppendUint32(out, uint32(len(e.Data)))                         //nolint:gosec // fixtures are small
		flag := e.Flag
		if flag == 0 && e.Compress {
			flag = 0xFFFF
		}
		out = le.AppendUint16(out, flag)
		out = append(out, 1, 0)
	}

	if a.Wide {
		le.PutUint64(out[0x30:], uint64(indexOffset)) //nolint:gosec // offsets are non-negative
	} else {
		le.PutUint32(out[0x40:], uint32(indexOffset)) //nolint:gosec // fixtures are small
	}
	return out
}
