// Package hashid implements the 32-bit identifiers used throughout the
// archive format: case-insensitive FNV-1a name hashes and the literal
// notations that tools use to spell raw ids.
package hashid

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// OffsetBasis is the FNV-1a 32-bit offset basis, and the hash of "".
const OffsetBasis uint32 = 0x811C9DC5

// String returns the FNV-1a hash of the lower-cased bytes of s.
func String(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(s))) //nolint:errcheck // hash.Hash never fails
	return h.Sum32()
}

// Parse interprets s as an id literal and falls back to hashing it.
//
// Accepted literals, after trimming spaces: "0x1A2B" and "#1A2B" (hex),
// "$name" (the hash of name) and plain decimal. Anything else is hashed
// as-is, so Parse never fails.
func Parse(s string) uint32 {
	s = strings.TrimSpace(s)
	if v, ok := ParseLiteral(s); ok {
		return v
	}
	return String(s)
}

// ParseLiteral parses the literal forms accepted by Parse without the hash
// fallback. It reports false when s is not a literal.
func ParseLiteral(s string) (uint32, bool) {
	switch {
	case s == "":
		return 0, false
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return parseUint(s[2:], 16)
	case strings.HasPrefix(s, "#"):
		return parseUint(s[1:], 16)
	case strings.HasPrefix(s, "$"):
		return String(s[1:]), true
	}
	return parseUint(s, 10)
}

func parseUint(s string, base int) (uint32, bool) {
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// Format renders v as an eight-digit upper-case hex literal.
func Format(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}
