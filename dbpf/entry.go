package dbpf

import "fmt"

// ResourceKey identifies an archive entry.
type ResourceKey struct {
	Type     uint32
	Group    uint32
	Instance uint32
}

// String renders the key as type!group!instance in hex.
func (k ResourceKey) String() string {
	return fmt.Sprintf("0x%08X!0x%08X!0x%08X", k.Type, k.Group, k.Instance)
}

// Entry is one index record.
type Entry struct {
	Key ResourceKey

	// Offset is the absolute position of the stored bytes.
	Offset uint64

	// CompressedSize is the number of stored bytes, with the reserved top
	// bit cleared.
	CompressedSize uint32

	// DecompressedSize is the payload size after decompression.
	DecompressedSize uint32

	// Compressed reports whether the stored bytes are RefPack-encoded.
	Compressed bool
}
