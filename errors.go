package cmpr

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is the error type of this module's sentinel errors and of the
// errors derived from them.
// Derived errors keep their ancestors in the unwrap chain, so errors.Is
// still matches the sentinel a derived error was built from.
type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseCodecError string

const rootError = baseCodecError("")

var ErrEmptyInput = rootError.WithMessage("Input buffer is empty")
var ErrMalformedStream = rootError.WithMessage("Compressed stream is malformed")
var ErrCodeTooLong = rootError.WithMessage("Huffman code doesn't fit in 255 bits")
var ErrEncodeFailed = rootError.WithMessage("Encoder invariant violated")
var ErrBadPostfix = rootError.WithMessage("File name doesn't end with the codec postfix")
var ErrEmptySourceFile = rootError.WithMessage("Source file is empty")

func (e baseCodecError) Error() string {
	return string(e)
}

func (e baseCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e baseCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a
// string describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
