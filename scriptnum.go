package scriptnum

import (
	"math"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("scriptnum")

// Errors returned by MakeNum.
var (
	ErrTooBig     = Error.New("number exceeds the size limit")
	ErrNonMinimal = Error.New("number is not minimally encoded")
)

// MaxNumSize is the default limit on the encoded size of a number used as an
// arithmetic operand.
const MaxNumSize = 4

// Num is a signed integer used by the script engine. Opcodes operating on
// numbers are responsible for their own bounds checking; Num itself holds any
// int64.
type Num int64

// abs returns the magnitude of v. The negation is performed on the unsigned
// value so that the minimum int64 does not overflow.
func abs(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}

	return uint64(v)
}

// Bytes returns the minimal encoding of n. Zero returns nil.
func (n Num) Bytes() []byte {
	if n == 0 {
		return nil
	}

	neg := n < 0
	magnitude := abs(int64(n))

	// The maximum int64 takes 8 bytes plus a possible sign extension byte.
	data := make([]byte, 0, 9)
	for magnitude != 0 {
		data = append(data, byte(magnitude&0xff))
		magnitude >>= 8
	}

	// If the top magnitude byte already has its high bit set an extra byte
	// carries the sign, otherwise the sign is folded into the top byte.
	if data[len(data)-1]&0x80 != 0 {
		extra := byte(0x00)
		if neg {
			extra = 0x80
		}

		data = append(data, extra)
	} else if neg {
		data[len(data)-1] |= 0x80
	}

	return data
}

// Int32 returns the number clamped to the int32 range.
func (n Num) Int32() int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}

	if n < math.MinInt32 {
		return math.MinInt32
	}

	return int32(n)
}

// MakeNum interprets data as an encoded number at most maxSize bytes long.
// The encoding must be minimal. This is the validated path for numbers read
// off the stack: oversized and redundant encodings are rejected before any
// decoding happens.
func MakeNum(data []byte, maxSize int) (Num, error) {
	if len(data) > maxSize {
		return 0, oops.Trace(ErrTooBig)
	}

	if !IsMinimallyEncoded(data, maxSize) {
		return 0, oops.Trace(ErrNonMinimal)
	}

	return Deserialize(data), nil
}
