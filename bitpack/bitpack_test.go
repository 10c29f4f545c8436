package bitpack_test

import (
	"testing"

	"github.com/cmpr-kit/cmpr"
	"github.com/cmpr-kit/cmpr/bitpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type packTestCase struct {
	Bits     string
	Expected []byte
	Name     string
}

func TestPack__Basic(t *testing.T) {
	tests := []packTestCase{
		{"", []byte{}, "empty"},
		{"1", []byte{0x80}, "single one"},
		{"0", []byte{0x00}, "single zero"},
		{"10110100", []byte{0xb4}, "exactly one byte"},
		{"101", []byte{0xa0}, "three bits pad low"},
		{"1111111101", []byte{0xff, 0x40}, "one byte and a remainder"},
		{"0000000110000000", []byte{0x01, 0x80}, "two full bytes"},
		{"111111111111111", []byte{0xff, 0xfe}, "fifteen ones"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				assert.Equal(t, test.Expected, bitpack.Pack(test.Bits))
			},
		)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	bitStrings := []string{
		"0",
		"1",
		"01101",
		"11111111",
		"000000001",
		"1010101010101010101010101",
	}

	for _, bits := range bitStrings {
		packed := bitpack.Pack(bits)
		assert.Equal(
			t, bits, bitpack.Unpack(packed, len(bits)),
			"bit string %q didn't survive the round trip", bits)
	}
}

func TestUnpackIgnoresPadding(t *testing.T) {
	// The tail of the last byte may hold garbage; Unpack must not look at it.
	assert.Equal(t, "101", bitpack.Unpack([]byte{0xbf}, 3))
}

func TestInsertFieldLayout(t *testing.T) {
	tests := []struct {
		Name     string
		Buffer   []byte
		Offset   int
		Value    uint64
		Width    int
		Expected []byte
	}{
		{"empty buffer", []byte{}, 0, 0x0102, 2, []byte{0x01, 0x02}},
		{"prepend", []byte{0xaa, 0xbb}, 0, 0x05, 4, []byte{0, 0, 0, 0x05, 0xaa, 0xbb}},
		{"middle", []byte{0xaa, 0xbb}, 1, 0xff, 1, []byte{0xaa, 0xff, 0xbb}},
		{"append", []byte{0xaa}, 1, 0x01, 2, []byte{0xaa, 0x00, 0x01}},
		{
			"eight byte field",
			[]byte{0x77},
			0,
			0x0102030405060708,
			8,
			[]byte{1, 2, 3, 4, 5, 6, 7, 8, 0x77},
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				result := bitpack.InsertField(
					test.Buffer, test.Offset, test.Value, test.Width)
				assert.Equal(t, test.Expected, result)
			},
		)
	}
}

// Whatever InsertField writes at (offset, width), ReadField at the same
// (offset, width) must retrieve, for every width and value.
func TestFieldRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x7f, 0x80, 0xff, 0x1234, 0xffffffff, 0x0123456789abcdef}

	for width := 1; width <= 8; width++ {
		for _, value := range values {
			if width < 8 && value >= 1<<(8*width) {
				continue
			}

			buf := bitpack.InsertField([]byte{0xde, 0xad}, 1, value, width)
			readBack, err := bitpack.ReadField(buf, 1, width)
			require.NoError(t, err)
			assert.Equal(
				t, value, readBack,
				"width %d value %#x didn't round-trip", width, value)
		}
	}
}

func TestReadFieldTruncated(t *testing.T) {
	_, err := bitpack.ReadField([]byte{1, 2, 3}, 0, 4)
	assert.ErrorIs(t, err, cmpr.ErrMalformedStream)

	_, err = bitpack.ReadField([]byte{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, cmpr.ErrMalformedStream)

	_, err = bitpack.ReadField([]byte{}, 0, 1)
	assert.ErrorIs(t, err, cmpr.ErrMalformedStream)
}
