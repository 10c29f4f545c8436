package fileworker_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmpr-kit/cmpr"
	"github.com/cmpr-kit/cmpr/fileworker"
	"github.com/cmpr-kit/cmpr/huffman"
	"github.com/cmpr-kit/cmpr/rle"
	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestForPostfix(t *testing.T) {
	codec, ok := fileworker.ForPostfix("notes.txt.cmprRLE")
	require.True(t, ok)
	assert.Equal(t, ".cmprRLE", codec.Postfix())

	codec, ok = fileworker.ForPostfix("notes.txt.cmprHaffman")
	require.True(t, ok)
	assert.Equal(t, ".cmprHaffman", codec.Postfix())

	_, ok = fileworker.ForPostfix("notes.txt")
	assert.False(t, ok)
}

func TestCompressDecompressFile(t *testing.T) {
	original := []byte("aaaaaaabcdefg aaaaaaabcdefg aaaaaaabcdefg")

	for _, codec := range fileworker.Codecs() {
		t.Run(
			codec.Postfix(),
			func(t *testing.T) {
				srcPath := writeTempFile(t, "notes.txt", original)

				compressedPath, err := fileworker.CompressFile(codec, srcPath)
				require.NoError(t, err)
				assert.Equal(t, srcPath+codec.Postfix(), compressedPath)

				decompressedPath, err := fileworker.DecompressFile(codec, compressedPath)
				require.NoError(t, err)
				assert.Equal(
					t,
					filepath.Join(filepath.Dir(srcPath), "_notes.txt"),
					decompressedPath)

				roundTripped, err := os.ReadFile(decompressedPath)
				require.NoError(t, err)
				assert.Equal(t, original, roundTripped)
			},
		)
	}
}

func TestCompressFile__Empty(t *testing.T) {
	srcPath := writeTempFile(t, "empty.bin", nil)

	_, err := fileworker.CompressFile(rle.Codec{}, srcPath)
	assert.ErrorIs(t, err, cmpr.ErrEmptySourceFile)
}

func TestDecompressFile__WrongPostfix(t *testing.T) {
	srcPath := writeTempFile(t, "notes.txt.cmprRLE", []byte{0x00, 0x41})

	_, err := fileworker.DecompressFile(huffman.Codec{}, srcPath)
	assert.ErrorIs(t, err, cmpr.ErrBadPostfix)
}

func TestStreamCompressDecompress(t *testing.T) {
	original := bytes.Repeat([]byte{9, 9, 9, 9, 2}, 100)

	compressed := bytes.Buffer{}
	n, err := fileworker.Compress(rle.Codec{}, bytes.NewReader(original), &compressed)
	require.NoError(t, err)
	assert.EqualValues(t, compressed.Len(), n)

	// Decompress into a fixed-size buffer; writes past it would error.
	decompressed := make([]byte, len(original))
	writer := bytewriter.New(decompressed)
	n, err = fileworker.Decompress(rle.Codec{}, &compressed, writer)
	require.NoError(t, err)
	assert.EqualValues(t, len(original), n)
	assert.Equal(t, original, decompressed)
}

func TestStreamCompress__EmptyInput(t *testing.T) {
	output := bytes.Buffer{}
	_, err := fileworker.Compress(huffman.Codec{}, bytes.NewReader(nil), &output)
	assert.ErrorIs(t, err, cmpr.ErrEmptyInput)
}
