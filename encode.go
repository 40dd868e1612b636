package scriptnum

import "io"

// Serialize writes the minimal encoding of n to w one byte at a time. Zero
// writes nothing. The only source of errors is the sink itself.
func (n Num) Serialize(w io.ByteWriter) (err error) {
	if n == 0 {
		return nil
	}

	neg := n < 0
	magnitude := abs(int64(n))

	for magnitude != 0 {
		tmp := byte(magnitude & 0xff)
		magnitude >>= 8

		switch {
		case magnitude != 0:
			err = w.WriteByte(tmp)
		case tmp&0x80 != 0:
			// The high bit of the top magnitude byte is taken, so
			// the sign goes in an extra trailing byte.
			err = w.WriteByte(tmp)
			if err != nil {
				return Error.Wrap(err)
			}

			if neg {
				err = w.WriteByte(0x80)
			} else {
				err = w.WriteByte(0x00)
			}
		case neg:
			err = w.WriteByte(tmp | 0x80)
		default:
			err = w.WriteByte(tmp)
		}
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}

// Encoder writes encoded numbers to a byte sink.
type Encoder struct {
	w io.ByteWriter
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.ByteWriter) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes the minimal encoding of n.
func (e *Encoder) Encode(n Num) (err error) {
	return n.Serialize(e.w)
}
