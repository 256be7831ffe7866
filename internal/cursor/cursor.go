// Package cursor implements the forward-only reader over the blob region
// that follows an asset's fixed header.
package cursor

import (
	"bytes"
	"strings"

	"github.com/meigma/recap/internal/errs"
)

// Cursor tracks the next unread blob byte. It never moves backward.
type Cursor struct {
	data []byte
	pos  int
}

// New returns a cursor over data positioned at start, normally the size
// of the root struct's header.
func New(data []byte, start int) *Cursor {
	start = min(max(start, 0), len(data))
	return &Cursor{data: data, pos: start}
}

// Pos returns the current position as an offset into the whole buffer.
func (c *Cursor) Pos() int { return c.pos }

// ReadString consumes bytes up to the next NUL (or the end of the buffer)
// and returns them as UTF-8. The terminator is consumed when present.
func (c *Cursor) ReadString() string {
	rest := c.data[c.pos:]
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		c.pos = len(c.data)
		return strings.ToValidUTF8(string(rest), "�")
	}
	c.pos += n + 1
	return strings.ToValidUTF8(string(rest[:n]), "�")
}

// Reserve claims n bytes and returns the offset where they start. The
// cursor is left unchanged when n is negative or runs past the buffer.
func (c *Cursor) Reserve(n int) (int, error) {
	if n < 0 || n > len(c.data)-c.pos {
		return 0, errs.Formatf("reserve %d bytes at 0x%X: blob has %d bytes left", n, c.pos, len(c.data)-c.pos)
	}
	start := c.pos
	c.pos += n
	return start, nil
}
