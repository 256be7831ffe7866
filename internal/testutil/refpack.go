package testutil

import "testing"

// RefPack encodes data as a RefPack stream of literal runs only. The
// output is larger than the input but is valid for any decoder.
func RefPack(tb testing.TB, data []byte) []byte {
	tb.Helper()
	if len(data) > 0xFFFFFF {
		tb.Fatalf("refpack: %d bytes do not fit a 24-bit size", len(data))
	}

	out := []byte{0x10, 0xFB, byte(len(data) >> 16), byte(len(data) >> 8), byte(len(data))}
	for len(data) >= 4 {
		n := min(len(data), 112) &^ 3
		out = append(out, byte(0xE0|(n-4)>>2))
		out = append(out, data[:n]...)
		data = data[n:]
	}
	out = append(out, byte(0xFC|len(data)))
	return append(out, data...)
}
