package scriptnum

// IsMinimallyEncoded returns whether data is at most maxSize bytes long and
// uses the minimum possible number of bytes for the number it encodes. The
// empty sequence is the canonical encoding of zero and is always accepted.
func IsMinimallyEncoded(data []byte, maxSize int) bool {
	if len(data) > maxSize {
		return false
	}

	if len(data) == 0 {
		return true
	}

	// If the most significant byte - excluding the sign bit - is zero then
	// the encoding is not minimal. Note how this test also rejects the
	// negative zero encoding, 0x80.
	if data[len(data)-1]&0x7f == 0 {
		// One exception: if there's more than one byte and the most
		// significant bit of the second most significant byte is set
		// it would conflict with the sign bit. An example of this case
		// is +-255, which encode to 0xff 0x00 and 0xff 0x80
		// respectively. (big-endian).
		if len(data) <= 1 || data[len(data)-2]&0x80 == 0 {
			return false
		}
	}

	return true
}

// MinimallyEncode rewrites data in place to the minimal encoding of the same
// number. It returns the resliced result and whether anything changed. The
// backing array is shared with the input.
func MinimallyEncode(data []byte) ([]byte, bool) {
	if len(data) == 0 {
		return data, false
	}

	// If the last byte is not 0x00 or 0x80 the encoding is already
	// minimal.
	last := data[len(data)-1]
	if last&0x7f != 0 {
		return data, false
	}

	// A single byte with no magnitude bits is a zero, which encodes as
	// the empty sequence.
	if len(data) == 1 {
		return data[:0], true
	}

	// If the next byte has its sign bit set the trailing byte is required
	// and the encoding is already minimal.
	if data[len(data)-2]&0x80 != 0 {
		return data, false
	}

	// Find the highest non zero byte. The sign folds into it when its
	// high bit is free, otherwise it keeps a fresh sign byte after it.
	for i := len(data) - 1; i > 0; i-- {
		if data[i-1] != 0 {
			if data[i-1]&0x80 != 0 {
				data[i] = last
				i++
			} else {
				data[i-1] |= last
			}

			return data[:i], true
		}
	}

	// The whole magnitude is zero.
	return data[:0], true
}
