// Package vlq implements [Variable-length quantity] encoding as used in BER
// identifier octets and OBJECT IDENTIFIER components. A VLQ is essentially a
// base-128 representation of an unsigned integer with the addition of the
// eighth bit to mark continuation of bytes. VLQ is identical to [LEB128]
// except in endianness.
//
// All functions in this package operate on byte slices. Parsing locates the
// encoded quantity within a slice without interpreting it; extraction into a
// Go integer type is a separate, width-checked step.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
// [LEB128]: https://en.wikipedia.org/wiki/LEB128
package vlq

import (
	"errors"
	"io"
	"math/bits"
	"unsafe"
)

// ErrNotMinimal indicates a VLQ whose first byte is 0x80, i.e. an encoding
// with a leading all-zero group. DER requires the minimal encoding.
var ErrNotMinimal = errors.New("vlq is not minimally encoded")

// Parse returns the number of bytes that make up the VLQ at the beginning of
// b. The quantity consists of all consecutive bytes with the continuation bit
// set plus the terminating byte with the bit clear.
//
// Parse returns [ErrNotMinimal] if the first byte is a zero continuation
// byte, and [io.ErrUnexpectedEOF] if b ends before the terminating byte
// (including an empty b).
func Parse(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if b[0] == 0x80 {
		return 0, ErrNotMinimal
	}
	n := 0
	for b[n]&0x80 != 0 {
		n++
		if n == len(b) {
			return 0, io.ErrUnexpectedEOF
		}
	}
	return n + 1, nil
}

// Uint extracts the quantity encoded in b into a value of type T. The slice
// must contain exactly one VLQ, as located by [Parse]. The second return
// value reports whether the quantity fits into T. A false result is not an
// encoding error; callers may retry with a wider type.
func Uint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](b []byte) (T, bool) {
	ret := T(b[0] & 0x7f)
	numBits := bits.Len8(b[0] & 0x7f)

	for _, c := range b[1:] {
		ret <<= 7
		ret |= T(c & 0x7f)

		if numBits == 0 {
			numBits = bits.Len8(c & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			return 0, false
		}
	}
	return ret, true
}

// Size returns the number of bytes needed to encode n as a VLQ.
func Size[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](n T) int {
	if n == 0 {
		return 1
	}
	l := 0
	for i := n; i > 0; i >>= 7 {
		l++
	}
	return l
}

// Put encodes i into b using the minimal number of bytes and returns the
// number of bytes written. If b is too small, Put panics.
func Put[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](b []byte, i T) int {
	l := Size(i)
	for j := l - 1; j >= 0; j-- {
		c := byte(i>>(j*7)) & 0x7f
		if j > 0 {
			c |= 0x80
		}
		b[l-1-j] = c
	}
	return l
}
