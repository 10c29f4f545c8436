package huffman

import (
	bitmap "github.com/boljen/go-bitmap"

	"github.com/cmpr-kit/cmpr"
	"github.com/cmpr-kit/cmpr/bitpack"
)

// marshalTable serializes the code table. Entries are written in ascending
// symbol order so the layout is reproducible; each entry is the code length
// in bits, the symbol itself, then the code packed MSB-first into as few
// bytes as it fits.
func marshalTable(codes map[byte]string) []byte {
	table := make([]byte, 0, 3*len(codes))
	for sym := 0; sym < alphabetSize; sym++ {
		code, present := codes[byte(sym)]
		if !present {
			continue
		}
		table = append(table, byte(len(code)), byte(sym))
		table = append(table, bitpack.Pack(code)...)
	}
	return table
}

// parseTable walks a serialized code table and inverts it into the
// code-to-symbol mapping the decoder looks codes up in. Beyond truncation,
// it rejects tables that no encoder could have written: zero-length codes,
// a symbol listed twice, or two symbols sharing a code.
func parseTable(table []byte) (map[string]byte, error) {
	codes := make(map[string]byte)
	seen := bitmap.New(alphabetSize)

	for pos := 0; pos < len(table); {
		if pos+2 > len(table) {
			return nil, cmpr.ErrMalformedStream.WithMessage(
				"code table entry is truncated")
		}
		bitLength := int(table[pos])
		sym := table[pos+1]
		pos += 2

		if bitLength == 0 {
			return nil, cmpr.ErrMalformedStream.WithMessage(
				"code table holds a zero-length code")
		}

		byteLength := (bitLength + bitpack.BitsPerByte - 1) / bitpack.BitsPerByte
		if pos+byteLength > len(table) {
			return nil, cmpr.ErrMalformedStream.WithMessage(
				"code table entry is cut off mid-code")
		}
		code := bitpack.Unpack(table[pos:pos+byteLength], bitLength)
		pos += byteLength

		if seen.Get(int(sym)) {
			return nil, cmpr.ErrMalformedStream.WithMessage(
				"code table lists the same symbol twice")
		}
		seen.Set(int(sym), true)

		if _, duplicate := codes[code]; duplicate {
			return nil, cmpr.ErrMalformedStream.WithMessage(
				"two symbols share one code")
		}
		codes[code] = sym
	}

	return codes, nil
}
