package scriptnum_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/scriptnum"
)

func TestDeserialize(t *testing.T) {
	type TC struct {
		Data []byte
		Num  scriptnum.Num
		Mark error
	}

	tcs := []TC{
		{
			Data: nil,
			Num:  0,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x00},
			Num:  0,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x80},
			Num:  0,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x01},
			Num:  1,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x81},
			Num:  -1,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x7f, 0x00},
			Num:  127,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x7f, 0x80},
			Num:  -127,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0xff, 0x00},
			Num:  255,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0xff, 0x80},
			Num:  -255,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x00, 0x01},
			Num:  256,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x00, 0x81},
			Num:  -256,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x01, 0x80, 0x00},
			Num:  32769,
			Mark: oops.New("unexpected"),
		},
		{
			// Redundant zero padding changes nothing about the value.
			Data: []byte{0x05, 0x00, 0x00, 0x00},
			Num:  5,
			Mark: oops.New("unexpected"),
		},
		{
			Data: []byte{0x05, 0x00, 0x00, 0x80},
			Num:  -5,
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%x", i, tc.Data), func(t *testing.T) {
			require.Equal(t, tc.Num, scriptnum.Deserialize(tc.Data), spew.Sdump(tc.Data))

			// The forward pass decoder agrees on everything it can
			// read (a source at EOF is the caller's bug).
			if len(tc.Data) == 0 {
				return
			}

			d := scriptnum.NewDecoder(bytes.NewReader(tc.Data))
			n, err := d.Decode()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Num, n, spew.Sdump(tc.Data))
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	d := scriptnum.NewDecoder(bytes.NewReader(nil))

	_, err := d.Decode()
	require.Error(t, err)
}

// TestDeserializeOversized pins the behavior of both decode paths on input
// wider than 8 bytes. Deserialize drops the out of range sign byte and
// returns the raw magnitude, while the forward pass decoder discards the out
// of range magnitude bits but still honors the sign flag. Callers are
// expected to bound input with IsMinimallyEncoded before decoding; these
// results are what they get if they don't.
func TestDeserializeOversized(t *testing.T) {
	data := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}

	require.False(t, scriptnum.IsMinimallyEncoded(data, scriptnum.MaxNumSize))

	require.Equal(t, scriptnum.Num(1), scriptnum.Deserialize(data), spew.Sdump(data))

	d := scriptnum.NewDecoder(bytes.NewReader(data))
	n, err := d.Decode()
	require.NoError(t, err)
	require.Equal(t, scriptnum.Num(-1), n, spew.Sdump(data))
}

func TestEncoderDecoder(t *testing.T) {
	nums := []scriptnum.Num{1, -1, 127, -128, 255, 32769, -524287}

	buf := &bytes.Buffer{}
	e := scriptnum.NewEncoder(buf)

	// Encodings carry no framing, so a stream of them is only split
	// correctly by an outer length prefix. One number per buffer here.
	for _, n := range nums {
		buf.Reset()

		err := e.Encode(n)
		require.NoError(t, err, "n=%d", n)

		got, err := scriptnum.NewDecoder(buf).Decode()
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, got, "n=%d", n)
	}
}

func BenchmarkDecode(b *testing.B) {
	data := scriptnum.Num(-524287).Bytes()

	for i := 0; i < b.N; i++ {
		_, err := scriptnum.NewDecoder(bytes.NewReader(data)).Decode()
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
