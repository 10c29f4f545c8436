// Package cmpr implements two self-describing lossless byte-stream codecs:
// a run-length encoder and a Huffman coder.
//
// Both codecs turn one in-memory buffer into one compressed buffer and back.
// A compressed buffer carries everything its codec needs to reverse the
// transformation, so no side channel exists between Encode and Decode. The
// codec implementations live in the rle and huffman subpackages; this
// package defines the contract they share and the error taxonomy every
// operation reports through.
//
// Compressed files are conventionally tagged by appending the codec's
// postfix to the file name. The fileworker subpackage implements that
// convention; the codecs themselves never touch the file system.
package cmpr

// A Codec is a stateless pair of inverse transformations over byte buffers.
//
// Implementations hold no mutable state between calls, so a single value
// may be shared freely across goroutines.
type Codec interface {
	// Encode compresses data into a new self-describing buffer. Encoding an
	// empty buffer fails with ErrEmptyInput.
	Encode(data []byte) ([]byte, error)

	// Decode reverses Encode, reproducing the original buffer exactly.
	// Input that is truncated or internally inconsistent fails with
	// ErrMalformedStream.
	Decode(data []byte) ([]byte, error)

	// Postfix returns the constant identifier external tooling uses to mark
	// data produced by this codec. The same string is returned on every
	// call of every instance.
	Postfix() string
}
