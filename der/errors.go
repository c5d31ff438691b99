package der

import (
	"errors"
	"strconv"

	"codello.dev/basn1"
)

var (
	// ErrIndefiniteLength indicates a data value using the indefinite-length
	// encoding. The form is valid BER but has no canonical representation,
	// so DER rejects it categorically.
	ErrIndefiniteLength = errors.New("der: indefinite length is not valid in DER")
	// ErrTruncated indicates a data value whose declared length exceeds the
	// remaining input.
	ErrTruncated = errors.New("der: truncated data value")
	// ErrNullNotEmpty indicates a NULL value with non-empty content octets.
	ErrNullNotEmpty = errors.New("der: NULL with non-empty contents")
	// ErrInvalidUTF8 indicates string contents that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("der: invalid UTF-8 string")
)

// SyntaxError is the error type returned by the decoding methods of
// [Reader]. The error value contains the location of the malformed data
// value within the input as well as the underlying cause, which can be
// matched using [errors.Is] and [errors.As].
type SyntaxError struct {
	Err error // underlying error

	// ByteOffset is the location of the error. The location is the start of
	// the TLV header of the data value containing the error.
	ByteOffset int
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	b := []byte("der: syntax error")
	if e.ByteOffset > 0 {
		b = strconv.AppendInt(append(b, " at offset "...), int64(e.ByteOffset), 10)
	}
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

// ClassError indicates a data value whose tag class differs from the one the
// caller asked to decode.
type ClassError struct {
	Expected, Actual basn1.Class
}

func (e *ClassError) Error() string {
	return "expected class " + e.Expected.String() + ", got " + e.Actual.String()
}

// ConstructedError indicates a data value using the primitive encoding where
// the constructed encoding was expected, or vice versa.
type ConstructedError struct {
	Expected, Actual bool // whether the encoding is constructed
}

func (e *ConstructedError) Error() string {
	if e.Expected {
		return "expected constructed encoding, got primitive"
	}
	return "expected primitive encoding, got constructed"
}

// TagError indicates a data value whose tag number differs from the one the
// caller asked to decode.
type TagError struct {
	Expected, Actual uint32
}

func (e *TagError) Error() string {
	return "expected tag " + strconv.FormatUint(uint64(e.Expected), 10) +
		", got " + strconv.FormatUint(uint64(e.Actual), 10)
}

// BoolLengthError indicates a BOOLEAN whose content is not exactly one
// octet.
type BoolLengthError struct {
	Length int
}

func (e *BoolLengthError) Error() string {
	return "BOOLEAN with invalid length " + strconv.Itoa(e.Length)
}

// BoolValueError indicates a BOOLEAN content octet other than 0x00 or 0xFF.
// BER permits any nonzero octet for TRUE; DER does not.
type BoolValueError struct {
	Value byte
}

func (e *BoolValueError) Error() string {
	return "BOOLEAN with invalid contents 0x" + strconv.FormatUint(uint64(e.Value), 16)
}

// NotTerminatedError is returned by [Reader.Done] when the reader has not
// consumed its entire input.
type NotTerminatedError struct {
	Offset int // current cursor position
	Len    int // total input size
}

func (e *NotTerminatedError) Error() string {
	return "der: reader not terminated: " + strconv.Itoa(e.Offset) +
		" of " + strconv.Itoa(e.Len) + " bytes consumed"
}

// BufferTooSmallError is returned by the encoding methods of [Writer] when
// the output buffer cannot hold the encoded data value. Cap is the total
// capacity of the buffer.
type BufferTooSmallError struct {
	Cap int
}

func (e *BufferTooSmallError) Error() string {
	return "der: output buffer too small (" + strconv.Itoa(e.Cap) + " bytes)"
}
