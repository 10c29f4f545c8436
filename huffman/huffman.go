// Package huffman implements Huffman coding over byte buffers.
//
// A compressed buffer is fully self-describing:
//
//	offset  size    field
//	0       8       significant bit count B
//	8       4       code table size T
//	12      T       code table
//	12+T    ⌈B/8⌉   payload bits, packed MSB-first
//
// The code table maps each symbol present in the input to its prefix code,
// so the decoder never needs the tree that produced it. B exists because
// the payload rarely ends on a byte boundary: the decoder consumes exactly
// B bits and ignores whatever padding fills out the final byte. Without it,
// the padding would decode as spurious trailing symbols.
//
// The container adds 8 + 4 + T bytes over the raw payload, so very small
// or very high-entropy inputs come out larger than they went in.
package huffman

import (
	"strings"

	"github.com/cmpr-kit/cmpr"
	"github.com/cmpr-kit/cmpr/bitpack"
)

const (
	// alphabetSize is the number of distinct symbols; symbols are octets.
	alphabetSize = 256

	// MaxCodeLength is the longest prefix code the table format can hold;
	// the length has to fit in the entry's single length byte.
	MaxCodeLength = 255

	bitCountFieldWidth  = 8
	tableSizeFieldWidth = 4

	// tableOffset is where the code table starts in a compressed buffer.
	tableOffset = bitCountFieldWidth + tableSizeFieldWidth
)

// Codec is the Huffman codec. The zero value is ready to use; all working
// state lives and dies inside a single call.
type Codec struct{}

var _ cmpr.Codec = Codec{}

// Postfix returns the identifier external tooling uses for Huffman streams.
func (Codec) Postfix() string {
	return ".cmprHaffman"
}

// Encode compresses data into the self-describing container above.
func (Codec) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, cmpr.ErrEmptyInput
	}

	codes := make(map[byte]string)
	if err := assignCodes(buildTree(data), "", codes); err != nil {
		return nil, err
	}

	table := marshalTable(codes)
	out := bitpack.InsertField(table, 0, uint64(len(table)), tableSizeFieldWidth)

	var bits strings.Builder
	for _, sym := range data {
		bits.WriteString(codes[sym])
	}
	out = append(out, bitpack.Pack(bits.String())...)

	return bitpack.InsertField(out, 0, uint64(bits.Len()), bitCountFieldWidth), nil
}

// Decode reads the container headers, rebuilds the code mapping, and
// expands exactly the significant bits of the payload.
func (Codec) Decode(data []byte) ([]byte, error) {
	bitCount, err := bitpack.ReadField(data, 0, bitCountFieldWidth)
	if err != nil {
		return nil, err
	}
	tableSize, err := bitpack.ReadField(data, bitCountFieldWidth, tableSizeFieldWidth)
	if err != nil {
		return nil, err
	}

	if uint64(len(data)-tableOffset) < tableSize {
		return nil, cmpr.ErrMalformedStream.WithMessage(
			"declared table size runs past the end of the buffer")
	}
	payloadOffset := tableOffset + int(tableSize)

	codes, err := parseTable(data[tableOffset:payloadOffset])
	if err != nil {
		return nil, err
	}

	payload := data[payloadOffset:]
	if bitCount > uint64(len(payload))*bitpack.BitsPerByte {
		return nil, cmpr.ErrMalformedStream.WithMessage(
			"significant bit count exceeds the available payload")
	}

	out := make([]byte, 0, len(payload))
	window := make([]byte, 0, MaxCodeLength)
	consumed := uint64(0)

	for _, packed := range payload {
		for shift := bitpack.BitsPerByte - 1; shift >= 0 && consumed < bitCount; shift-- {
			if packed&(1<<uint(shift)) != 0 {
				window = append(window, '1')
			} else {
				window = append(window, '0')
			}
			consumed++

			if sym, found := codes[string(window)]; found {
				out = append(out, sym)
				window = window[:0]
			}
		}
		if consumed == bitCount {
			break
		}
	}

	if len(window) != 0 {
		return nil, cmpr.ErrMalformedStream.WithMessage(
			"stream ends in the middle of a code")
	}
	return out, nil
}
