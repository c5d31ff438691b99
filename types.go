// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basn1

import (
	"bytes"
	"errors"
	"iter"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"codello.dev/basn1/internal/beint"
	"codello.dev/basn1/internal/vlq"
)

// Validation errors reported by the view constructors in this package. The
// der package returns these errors (wrapped with position information) when
// the content octets of a value do not satisfy the canonical form of its
// type.
var (
	ErrIntegerNotCanonical   = errors.New("basn1: integer is not canonically encoded")
	ErrBitStringEmpty        = errors.New("basn1: bit string without leading octet")
	ErrBitStringInvalidStart = errors.New("basn1: bit string with invalid unused bit count")
	ErrBitStringInvalidEnd   = errors.New("basn1: bit string with nonzero unused bits")
	ErrOIDInvalid            = errors.New("basn1: invalid object identifier")
)

//region [UNIVERSAL 2] INTEGER

// Integer is a validated view of the content octets of an ASN.1 INTEGER. The
// wrapped bytes are the big-endian limbs of the value without a leading zero
// octet.
//
// See also section 19 of Rec. ITU-T X.680.
type Integer struct {
	data []byte
}

// NewInteger returns a view of the canonical integer encoding in data. The
// returned Integer shares memory with data; data must not be modified while
// the view is in use.
func NewInteger(data []byte) (Integer, error) {
	if err := beint.Check(data); err != nil {
		return Integer{}, ErrIntegerNotCanonical
	}
	return Integer{data}, nil
}

// Bytes returns the content octets of i. The slice shares memory with the
// buffer i was constructed from.
func (i Integer) Bytes() []byte { return i.data }

// Clone returns a copy of i with its own backing storage. The copied bytes
// are not validated again.
func (i Integer) Clone() Integer {
	return Integer{bytes.Clone(i.data)}
}

// Uint8 returns the value of i if it fits into a uint8.
func (i Integer) Uint8() (uint8, bool) { return beint.Uint[uint8](i.data) }

// Uint16 returns the value of i if it fits into a uint16.
func (i Integer) Uint16() (uint16, bool) { return beint.Uint[uint16](i.data) }

// Uint32 returns the value of i if it fits into a uint32.
func (i Integer) Uint32() (uint32, bool) { return beint.Uint[uint32](i.data) }

// Uint64 returns the value of i if it fits into a uint64.
func (i Integer) Uint64() (uint64, bool) { return beint.Uint[uint64](i.data) }

//endregion

//region [UNIVERSAL 10] ENUMERATED

// Enumerated is a validated view of the content octets of an ASN.1
// ENUMERATED value. The encoding is identical to [Integer].
//
// See also section 20 of Rec. ITU-T X.680.
type Enumerated struct {
	data []byte
}

// NewEnumerated returns a view of the canonical enumerated encoding in data.
// The returned Enumerated shares memory with data.
func NewEnumerated(data []byte) (Enumerated, error) {
	if err := beint.Check(data); err != nil {
		return Enumerated{}, ErrIntegerNotCanonical
	}
	return Enumerated{data}, nil
}

// Bytes returns the content octets of e.
func (e Enumerated) Bytes() []byte { return e.data }

// Clone returns a copy of e with its own backing storage.
func (e Enumerated) Clone() Enumerated {
	return Enumerated{bytes.Clone(e.data)}
}

// Uint8 returns the value of e if it fits into a uint8.
func (e Enumerated) Uint8() (uint8, bool) { return beint.Uint[uint8](e.data) }

// Uint16 returns the value of e if it fits into a uint16.
func (e Enumerated) Uint16() (uint16, bool) { return beint.Uint[uint16](e.data) }

// Uint32 returns the value of e if it fits into a uint32.
func (e Enumerated) Uint32() (uint32, bool) { return beint.Uint[uint32](e.data) }

// Uint64 returns the value of e if it fits into a uint64.
func (e Enumerated) Uint64() (uint64, bool) { return beint.Uint[uint64](e.data) }

//endregion

//region [UNIVERSAL 3] BIT STRING

// BitString is a validated view of the content octets of an ASN.1 BIT
// STRING. The first octet holds the number of unused bits in the last data
// octet; the remaining octets hold the bits, most significant bit first.
// DER requires the unused bits to be zero, which is enforced on
// construction.
//
// See also section 22 of Rec. ITU-T X.680.
type BitString struct {
	data []byte
}

// NewBitString returns a view of the bit string content octets in data,
// including the leading unused-bit-count octet. The returned BitString
// shares memory with data.
func NewBitString(data []byte) (BitString, error) {
	if len(data) == 0 {
		return BitString{}, ErrBitStringEmpty
	}
	unused := data[0]
	if unused > 7 {
		return BitString{}, ErrBitStringInvalidStart
	}
	if unused > 0 {
		if len(data) == 1 {
			// no data octet to have unused bits in
			return BitString{}, ErrBitStringInvalidStart
		}
		mask := byte(1<<unused - 1)
		if data[len(data)-1]&mask != 0 {
			return BitString{}, ErrBitStringInvalidEnd
		}
	}
	return BitString{data}, nil
}

// Bytes returns the content octets of s, including the leading
// unused-bit-count octet.
func (s BitString) Bytes() []byte { return s.data }

// Clone returns a copy of s with its own backing storage.
func (s BitString) Clone() BitString {
	return BitString{bytes.Clone(s.data)}
}

// Bits returns the number of bits in s.
func (s BitString) Bits() int {
	return (len(s.data)-1)*8 - int(s.data[0])
}

// UnusedBits returns the number of unused bits in the last data octet of s.
func (s BitString) UnusedBits() int {
	return int(s.data[0])
}

// DataBytes returns the data octets of s without the leading
// unused-bit-count octet. Unused bits in the last octet are zero.
func (s BitString) DataBytes() []byte {
	return s.data[1:]
}

// At returns the bit at the given index. If the index is out of range At
// panics.
func (s BitString) At(i int) int {
	if i < 0 || i >= s.Bits() {
		panic("index out of range")
	}
	x := i / 8
	y := 7 - uint(i%8)
	return int(s.data[1+x]>>y) & 1
}

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// OID is a validated view of the content octets of an ASN.1 OBJECT
// IDENTIFIER. The first octet combines the first two arcs as first*40+second
// and every following arc is a base-128 quantity. The semantics of an object
// identifier are specified in [Rec. ITU-T X.660].
//
// See also section 32 of Rec. ITU-T X.680.
//
// [Rec. ITU-T X.660]: https://www.itu.int/rec/T-REC-X.660
type OID struct {
	data []byte
}

// NewOID returns a view of the object identifier content octets in data. The
// first arc must be 0, 1 or 2, and the trailing arcs must form a gapless
// packing of minimally encoded base-128 quantities. The returned OID shares
// memory with data.
func NewOID(data []byte) (OID, error) {
	if len(data) == 0 {
		return OID{}, ErrOIDInvalid
	}
	if data[0]/40 > 2 {
		return OID{}, ErrOIDInvalid
	}
	for index := 1; index < len(data); {
		n, err := vlq.Parse(data[index:])
		if err != nil {
			return OID{}, ErrOIDInvalid
		}
		index += n
	}
	return OID{data}, nil
}

// Bytes returns the content octets of oid.
func (oid OID) Bytes() []byte { return oid.data }

// Clone returns a copy of oid with its own backing storage.
func (oid OID) Clone() OID {
	return OID{bytes.Clone(oid.data)}
}

// Equal reports whether oid and other represent the same identifier.
func (oid OID) Equal(other OID) bool {
	return slices.Equal(oid.data, other.data)
}

// Arc1 returns the first arc of oid. It is always 0, 1 or 2.
func (oid OID) Arc1() uint8 {
	return oid.data[0] / 40
}

// Arc2 returns the second arc of oid.
func (oid OID) Arc2() uint8 {
	return oid.data[0] % 40
}

// Components returns an iterator over the arcs of oid following the first
// two. Each step parses one component at the current position; the sequence
// ends exactly when the content octets are exhausted.
func (oid OID) Components() iter.Seq[OIDComponent] {
	return func(yield func(OIDComponent) bool) {
		for index := 1; index < len(oid.data); {
			n, err := vlq.Parse(oid.data[index:])
			if err != nil {
				// cannot happen, oid was validated on construction
				return
			}
			if !yield(OIDComponent{oid.data[index : index+n]}) {
				return
			}
			index += n
		}
	}
}

// String returns the dot-separated notation of oid.
func (oid OID) String() string {
	var s strings.Builder
	s.Grow(32)

	buf := make([]byte, 0, 19)
	s.Write(strconv.AppendUint(buf, uint64(oid.Arc1()), 10))
	s.WriteByte('.')
	s.Write(strconv.AppendUint(buf, uint64(oid.Arc2()), 10))
	for c := range oid.Components() {
		s.WriteByte('.')
		if v, ok := c.Uint64(); ok {
			s.Write(strconv.AppendUint(buf, v, 10))
		} else {
			// arc exceeds 64 bits
			z := new(big.Int)
			for _, b := range c.Bytes() {
				z.Lsh(z, 7)
				z.Or(z, big.NewInt(int64(b&0x7f)))
			}
			s.WriteString(z.String())
		}
	}

	return s.String()
}

// OIDComponent is a validated view of a single base-128 encoded arc of an
// ASN.1 OBJECT IDENTIFIER. Values are produced by [OID.Components].
type OIDComponent struct {
	data []byte
}

// Bytes returns the encoded octets of c.
func (c OIDComponent) Bytes() []byte { return c.data }

// Clone returns a copy of c with its own backing storage.
func (c OIDComponent) Clone() OIDComponent {
	return OIDComponent{bytes.Clone(c.data)}
}

// Uint8 returns the value of c if it fits into a uint8.
func (c OIDComponent) Uint8() (uint8, bool) { return vlq.Uint[uint8](c.data) }

// Uint16 returns the value of c if it fits into a uint16.
func (c OIDComponent) Uint16() (uint16, bool) { return vlq.Uint[uint16](c.data) }

// Uint32 returns the value of c if it fits into a uint32.
func (c OIDComponent) Uint32() (uint32, bool) { return vlq.Uint[uint32](c.data) }

// Uint64 returns the value of c if it fits into a uint64.
func (c OIDComponent) Uint64() (uint64, bool) { return vlq.Uint[uint64](c.data) }

//endregion
