// Package testing holds helpers shared by the codec test suites: canonical
// input corpora and a round-trip checker.
package testing

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/cmpr-kit/cmpr"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// Corpus is one named input buffer for a compression test.
type Corpus struct {
	Name string
	Data []byte
}

// StandardCorpora returns the inputs every codec must round-trip: runs,
// alternations, text, every symbol value, and pseudo-random noise at several
// sizes. The random corpora are seeded so failures reproduce.
func StandardCorpora() []Corpus {
	rng := rand.New(rand.NewSource(0x1badb002))
	random := func(size int) []byte {
		data := make([]byte, size)
		rng.Read(data)
		return data
	}

	allValues := make([]byte, 256)
	for i := range allValues {
		allValues[i] = byte(i)
	}

	alternating := make([]byte, 512)
	for i := range alternating {
		alternating[i] = byte(0xa5 >> (uint(i%2) * 4))
	}

	return []Corpus{
		{"single byte", []byte{0x41}},
		{"two equal bytes", []byte{0x41, 0x41}},
		{"run straddling repeat boundary", bytes.Repeat([]byte{0x41}, 130)},
		{"all zero", make([]byte, 1024)},
		{"alternating pair", alternating},
		{"every symbol value", allValues},
		{"natural language", []byte(
			"It was the best of times, it was the worst of times, it was the" +
				" age of wisdom, it was the age of foolishness.")},
		{"random 2", random(2)},
		{"random 16", random(16)},
		{"random 1KiB", random(1024)},
		{"random 64KiB", random(65536)},
	}
}

// RoundTrip encodes data, decodes the result, and fails the test unless the
// output matches the input byte for byte.
func RoundTrip(t *testing.T, codec cmpr.Codec, data []byte) {
	t.Helper()

	encoded, err := codec.Encode(data)
	require.NoError(t, err, "unexpected error while encoding")
	t.Logf("compressed %d -> %d", len(data), len(encoded))

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err, "unexpected error while decoding")
	require.Equal(t, data, decoded, "decoded data doesn't match original data")
}

// DecodeToStream decodes a compressed buffer and exposes the result as a
// fixed-size read-write stream, the shape most consumers of decompressed
// corpora want.
func DecodeToStream(t *testing.T, codec cmpr.Codec, encoded []byte) io.ReadWriteSeeker {
	t.Helper()

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err, "corpus failed to decode")
	require.Greater(t, len(decoded), 0, "decoded corpus is empty")
	return bytesextra.NewReadWriteSeeker(decoded)
}
