// Package refpack decompresses RefPack, the LZ77-style codec used for
// archive entry payloads.
//
// A stream is a 5-byte header (type tag 0x10 or 0x50, one ignored byte and
// a 24-bit big-endian decompressed size) followed by control codes. Each
// control code copies a run of literal bytes from the input and then a run
// of bytes from earlier in the output.
package refpack

import (
	"github.com/meigma/recap/internal/errs"
)

const headerSize = 5

// Decompress expands src.
//
// A malformed or truncated stream returns the bytes produced before the
// problem together with an error wrapping errs.ErrFormat. Callers that
// prefer a best-effort result may use the partial output.
func Decompress(src []byte) ([]byte, error) {
	if len(src) < headerSize {
		return nil, errs.Formatf("refpack: %d byte stream is shorter than its header", len(src))
	}
	if tag := src[0]; tag != 0x10 && tag != 0x50 {
		return nil, errs.Formatf("refpack: unknown type tag 0x%02X", tag)
	}
	size := int(src[2])<<16 | int(src[3])<<8 | int(src[4])

	out := make([]byte, 0, size)
	in := src[headerSize:]
	for len(out) < size {
		if len(in) == 0 {
			return out, errs.Formatf("refpack: input ended at %d of %d bytes", len(out), size)
		}
		ctrl := int(in[0])
		in = in[1:]

		var literal, copyLen, back, extra int
		switch {
		case ctrl >= 252:
			literal = ctrl & 0x03
		case ctrl >= 224:
			literal = (ctrl&0x1F)<<2 + 4
		case ctrl >= 192:
			extra = 3
		case ctrl >= 128:
			extra = 2
		default:
			extra = 1
		}
		if len(in) < extra {
			return out, errs.Formatf("refpack: control 0x%02X needs %d bytes, %d left", ctrl, extra, len(in))
		}
		switch extra {
		case 3:
			b1, b2, b3 := int(in[0]), int(in[1]), int(in[2])
			literal = ctrl & 0x03
			copyLen = (ctrl&0x0C)<<6 + b3 + 5
			back = (ctrl&0x10)<<12 + b1<<8 + b2 + 1
		case 2:
			b2, b3 := int(in[0]), int(in[1])
			literal = (b2 >> 6) & 0x03
			copyLen = ctrl&0x3F + 4
			back = (b2&0x3F)<<8 + b3 + 1
		case 1:
			b1 := int(in[0])
			literal = ctrl & 0x03
			copyLen = (ctrl>>2)&0x07 + 3
			back = (ctrl&0x60)<<3 + b1 + 1
		}
		in = in[extra:]

		if literal > 0 {
			if literal > len(in) || len(out)+literal > size {
				return out, errs.Formatf("refpack: literal run of %d overruns the stream", literal)
			}
			out = append(out, in[:literal]...)
			in = in[literal:]
		}
		if copyLen > 0 {
			if back > len(out) || len(out)+copyLen > size {
				return out, errs.Formatf("refpack: copy of %d from %d back is out of range", copyLen, back)
			}
			// Byte at a time: the source may overlap the bytes being written.
			for range copyLen {
				out = append(out, out[len(out)-back])
			}
		}
	}
	return out, nil
}
