// Package beint implements the plain big-endian byte representation of
// unsigned integers used by the content octets of the ASN.1 INTEGER and
// ENUMERATED types. Each byte is one base-256 limb, most significant limb
// first. The canonical form has no leading zero limb.
package beint

import (
	"errors"
	"unsafe"
)

// ErrNotCanonical indicates an empty encoding or one with a leading zero
// byte. Both have a shorter encoding of the same value and are rejected.
var ErrNotCanonical = errors.New("integer is not canonically encoded")

// Check validates that b is a canonical big-endian integer encoding.
func Check(b []byte) error {
	if len(b) == 0 || b[0] == 0 {
		return ErrNotCanonical
	}
	return nil
}

// Uint extracts the integer encoded in b into a value of type T. The second
// return value reports whether the value fits into T. A false result is not
// an encoding error; callers may retry with a wider type.
//
// Uint assumes that b has been validated with [Check].
func Uint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](b []byte) (T, bool) {
	size := int(unsafe.Sizeof(T(0)))
	if len(b) > size {
		return 0, false
	}
	var ret T
	for _, c := range b {
		ret = T(uint64(ret)<<8 | uint64(c))
	}
	return ret, true
}
