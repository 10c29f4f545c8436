// Package rle implements run-length encoding over byte buffers.
//
// The compressed form is a bare concatenation of groups, each introduced by
// a single service byte. The top bit of the service byte selects the kind
// of group and the low seven bits carry a biased count:
//
//	service bit 7 = 1  ->  repeat: one payload byte, emitted (bits6..0)+2 times
//	service bit 7 = 0  ->  literal: (bits6..0)+1 payload bytes, copied verbatim
//
// The biases exist because a repeat run is never shorter than two symbols
// and a literal run never shorter than one, so the seven count bits cover
// runs of up to 129 repeated or 128 literal symbols. Longer runs are split
// into consecutive groups. There is no global header; the stream is decoded
// group by group until it is exhausted.
package rle

import (
	"github.com/cmpr-kit/cmpr"
)

const (
	// MaxRepeat is the longest run one repeat group can describe.
	MaxRepeat = 129
	// MaxLiteral is the most symbols one literal group can carry.
	MaxLiteral = 128

	repeatTag   = 0x80
	repeatBias  = 2
	literalBias = 1
)

// Codec is the run-length codec. The zero value is ready to use and holds
// no state between calls.
type Codec struct{}

var _ cmpr.Codec = Codec{}

// Postfix returns the identifier external tooling uses for RLE streams.
func (Codec) Postfix() string {
	return ".cmprRLE"
}

// Encode compresses data into a sequence of repeat and literal groups.
func (Codec) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, cmpr.ErrEmptyInput
	}

	// Sized for all-literal input, one service byte per MaxLiteral input
	// bytes; append grows it for inputs that cost more.
	out := make([]byte, 0, len(data)+len(data)/MaxLiteral+1)
	var literal []byte

	flushLiteral := func() {
		for len(literal) > 0 {
			count := len(literal)
			if count > MaxLiteral {
				count = MaxLiteral
			}
			out = append(out, byte(count-literalBias))
			out = append(out, literal[:count]...)
			literal = literal[count:]
		}
	}

	for i := 0; i < len(data); {
		// Measure the natural run starting at i.
		runLength := 1
		for i+runLength < len(data) && data[i+runLength] == data[i] {
			runLength++
		}

		if runLength == 1 {
			literal = append(literal, data[i])
			i++
			continue
		}

		flushLiteral()
		for runLength >= repeatBias {
			count := runLength
			if count > MaxRepeat {
				count = MaxRepeat
			}
			out = append(out, repeatTag|byte(count-repeatBias), data[i])
			runLength -= count
			i += count
		}
		if runLength == 1 {
			// A repeat group can't hold a lone leftover symbol; it joins the
			// next literal group instead.
			literal = append(literal, data[i])
			i++
		}
	}
	flushLiteral()

	return out, nil
}

// Decode expands a sequence of groups back into the original buffer.
func (Codec) Decode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)*2)

	for index := 0; index < len(data); {
		service := data[index]
		index++

		if service&repeatTag != 0 {
			if index >= len(data) {
				return nil, cmpr.ErrMalformedStream.WithMessage(
					"repeat group is missing its symbol")
			}
			count := int(service&^byte(repeatTag)) + repeatBias
			for ; count > 0; count-- {
				out = append(out, data[index])
			}
			index++
		} else {
			count := int(service) + literalBias
			if index+count > len(data) {
				return nil, cmpr.ErrMalformedStream.WithMessage(
					"literal group is cut off mid-payload")
			}
			out = append(out, data[index:index+count]...)
			index += count
		}
	}

	return out, nil
}
