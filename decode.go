package scriptnum

import (
	"errors"
	"io"
)

// Deserialize returns the number encoded by data. Empty input decodes as
// zero.
//
// When data is longer than 8 bytes the sign byte is beyond the width of Num
// and the unsigned magnitude of the in-range bytes is returned with no sign
// adjustment. Callers bound the input with IsMinimallyEncoded (or use
// MakeNum) rather than rely on this truncation.
func Deserialize(data []byte) Num {
	if len(data) == 0 {
		return 0
	}

	var result uint64

	last := len(data) - 1
	for i := 0; i < last; i++ {
		result |= uint64(data[i]) << (8 * uint(i))
	}

	if len(data) > 8 {
		return Num(result)
	}

	tmp := uint64(data[last])
	if data[last]&0x80 != 0 {
		tmp &= 0x7f
		result |= tmp << (8 * uint(last))

		return -Num(result)
	}

	result |= tmp << (8 * uint(last))

	return Num(result)
}

// Decoder reads encoded numbers from a byte source.
type Decoder struct {
	r io.ByteReader
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads bytes until EOF and returns the number they encode. A source
// that is already at EOF is an error: the empty encoding of zero is expected
// to be handled by the caller before reading.
//
// Decode makes a single forward pass with one byte of lookahead, so it works
// on sources that cannot seek. Unlike Deserialize it applies no width guard:
// magnitude bits beyond the width of Num are discarded and the sign flag is
// still honored.
func (d *Decoder) Decode() (n Num, err error) {
	cur, err := d.r.ReadByte()
	if err != nil {
		return 0, Error.Wrap(err)
	}

	var result uint64
	var shift uint

	for {
		next, err := d.r.ReadByte()
		if errors.Is(err, io.EOF) {
			// cur is the final byte and carries the sign flag.
			if cur&0x80 != 0 {
				result |= uint64(cur&0x7f) << shift

				return -Num(result), nil
			}

			result |= uint64(cur) << shift

			return Num(result), nil
		}
		if err != nil {
			return 0, Error.Wrap(err)
		}

		result |= uint64(cur) << shift
		shift += 8
		cur = next
	}
}
