// Package fileworker ties the codecs to the outside world: it moves whole
// files and streams through a codec and manages the postfix naming
// convention for compressed files. The codecs themselves stay pure
// data-in/data-out; everything filesystem-shaped lives here.
package fileworker

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmpr-kit/cmpr"
	"github.com/cmpr-kit/cmpr/huffman"
	"github.com/cmpr-kit/cmpr/rle"
)

// Codecs returns every codec this module ships, in a fixed order.
func Codecs() []cmpr.Codec {
	return []cmpr.Codec{rle.Codec{}, huffman.Codec{}}
}

// ForPostfix picks the codec whose postfix terminates path. It reports
// false if no codec claims the file.
func ForPostfix(path string) (cmpr.Codec, bool) {
	for _, codec := range Codecs() {
		if strings.HasSuffix(path, codec.Postfix()) {
			return codec, true
		}
	}
	return nil, false
}

// Compress reads the whole input stream, encodes it with the codec, and
// writes the compressed buffer to the output. The returned int64 is the
// number of compressed bytes written, only valid if no error occurred.
func Compress(codec cmpr.Codec, input io.Reader, output io.Writer) (int64, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, err
	}
	encoded, err := codec.Encode(data)
	if err != nil {
		return 0, err
	}
	n, err := output.Write(encoded)
	return int64(n), err
}

// Decompress reads a whole compressed stream, decodes it, and writes the
// original bytes to the output. The returned int64 is the decompressed
// size, only valid if no error occurred.
func Decompress(codec cmpr.Codec, input io.Reader, output io.Writer) (int64, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, err
	}
	decoded, err := codec.Decode(data)
	if err != nil {
		return 0, err
	}
	n, err := output.Write(decoded)
	return int64(n), err
}

// CompressFile encodes the file at srcPath and writes the result next to
// it, named srcPath plus the codec's postfix. It returns the path written.
// Compressing an empty file fails with ErrEmptySourceFile rather than
// producing an archive nothing could decode.
func CompressFile(codec cmpr.Codec, srcPath string) (string, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", cmpr.ErrEmptySourceFile.WithMessage(srcPath)
	}

	encoded, err := codec.Encode(data)
	if err != nil {
		return "", err
	}

	dstPath := srcPath + codec.Postfix()
	if err := os.WriteFile(dstPath, encoded, 0o644); err != nil {
		return "", err
	}
	return dstPath, nil
}

// DecompressFile decodes the file at srcPath, which must end with the
// codec's postfix, and writes the result beside it under the original name
// with "_" prefixed to the base name. It returns the path written.
func DecompressFile(codec cmpr.Codec, srcPath string) (string, error) {
	if !strings.HasSuffix(srcPath, codec.Postfix()) {
		return "", cmpr.ErrBadPostfix.WithMessage(srcPath)
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return "", err
	}
	decoded, err := codec.Decode(data)
	if err != nil {
		return "", err
	}

	stripped := strings.TrimSuffix(srcPath, codec.Postfix())
	dir, base := filepath.Split(stripped)
	dstPath := filepath.Join(dir, "_"+base)
	if err := os.WriteFile(dstPath, decoded, 0o644); err != nil {
		return "", err
	}
	return dstPath, nil
}
