// Package tlv implements the identifier and length octets of the
// tag-length-value (TLV) format used by the Basic Encoding Rules (BER) and
// related encoding rules as specified in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// The [Identifier] and [Length] types represent the two header fields that
// prefix every encoded data value. This package deals with the syntactic
// layer of the encoding while [codello.dev/basn1/der] deals with the
// semantic layer of DER.
//
// All codecs in this package operate on byte slices. Parsing accepts
// everything the BER grammar allows (including padded long-form lengths and
// the indefinite length), so that a reader can produce precise errors for
// forms its encoding rules reject. Encoding always produces the single
// minimal form required by DER.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package tlv

import (
	"errors"
	"io"
	"math"

	"codello.dev/basn1"
	"codello.dev/basn1/internal/vlq"
)

var (
	// ErrTagTooLarge indicates a long-form tag number that exceeds 32 bits.
	ErrTagTooLarge = errors.New("tlv: tag number too large")
	// ErrLengthTooLarge indicates a length value that exceeds 32 bits.
	ErrLengthTooLarge = errors.New("tlv: length too large")
)

//region Identifier

// Identifier represents the identifier octets of a TLV header, consisting of
// the tag class, the primitive/constructed flag and the tag number.
type Identifier struct {
	Class       basn1.Class
	Constructed bool
	Tag         uint32
}

// ParseIdentifier decodes the identifier octets at the beginning of b. It
// returns the decoded Identifier and the number of bytes consumed.
//
// Tag numbers 0 through 30 are encoded in the first octet; larger numbers
// follow as a base-128 quantity, which must be minimally encoded and fit
// into 32 bits. Truncated input is reported as [io.ErrUnexpectedEOF].
func ParseIdentifier(b []byte) (Identifier, int, error) {
	if len(b) == 0 {
		return Identifier{}, 0, io.ErrUnexpectedEOF
	}
	id := Identifier{
		Class:       basn1.Class(b[0] >> 6),
		Constructed: b[0]&0x20 == 0x20,
	}
	n := 1

	// If the bottom five bits are set, the tag number is base-128 encoded
	// afterward.
	if t := b[0] & 0x1f; t != 0x1f {
		id.Tag = uint32(t)
	} else {
		m, err := vlq.Parse(b[1:])
		if err != nil {
			return id, n, err
		}
		tag, ok := vlq.Uint[uint32](b[1 : 1+m])
		if !ok {
			return id, n, ErrTagTooLarge
		}
		id.Tag = tag
		n += m
	}
	return id, n, nil
}

// EncodedLen returns the number of bytes that [Identifier.Put] writes for
// id.
func (id Identifier) EncodedLen() int {
	if id.Tag < 31 {
		return 1
	}
	return 1 + vlq.Size(id.Tag)
}

// Put encodes id into b using the smallest form: tag numbers below 31 share
// the first octet, larger numbers use the long form with the minimal number
// of base-128 groups. It returns the number of bytes written, which is
// always [Identifier.EncodedLen]. If b is too small, Put panics.
func (id Identifier) Put(b []byte) int {
	c := uint8(id.Class) << 6
	if id.Constructed {
		c |= 0x20
	}
	if id.Tag < 31 {
		b[0] = c | uint8(id.Tag)
		return 1
	}
	b[0] = c | 0x1f
	return 1 + vlq.Put(b[1:], id.Tag)
}

//endregion

//region Length

// LengthIndefinite is the [Length] of a data value using the constructed
// indefinite-length encoding. It is decodable per the BER grammar, but DER
// forbids it; the der package rejects it on every path.
const LengthIndefinite Length = -1

// Length represents the length octets of a TLV header: the number of
// content octets of the data value, or [LengthIndefinite]. The largest
// representable definite length is 32 bits.
type Length int

// ParseLength decodes the length octets at the beginning of b. It returns
// the decoded Length and the number of bytes consumed.
//
// A first octet of 0x80 yields [LengthIndefinite]. A first octet with the
// top bit set otherwise announces that many following value octets, which
// are accumulated big-endian; values past 32 bits are reported as
// [ErrLengthTooLarge]. Any other first octet is the length itself.
// Truncated input is reported as [io.ErrUnexpectedEOF].
func ParseLength(b []byte) (Length, int, error) {
	if len(b) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	f := b[0]
	if f&0x80 == 0 {
		// the length is encoded in the bottom 7 bits
		return Length(f), 1, nil
	}
	if f == 0x80 {
		return LengthIndefinite, 1, nil
	}

	// the bottom 7 bits give the number of length octets to follow
	numBytes := int(f & 0x7f)
	if len(b) < 1+numBytes {
		return 0, 0, io.ErrUnexpectedEOF
	}
	var v uint64
	for _, c := range b[1 : 1+numBytes] {
		v = v<<8 | uint64(c)
		if v > math.MaxUint32 {
			return 0, 0, ErrLengthTooLarge
		}
	}
	return Length(v), 1 + numBytes, nil
}

// EncodedLen returns the number of bytes that [Length.Put] writes for l.
func (l Length) EncodedLen() int {
	if l == LengthIndefinite || l < 0x80 {
		return 1
	}
	n := 2
	for v := l; v > 0xff; v >>= 8 {
		n++
	}
	return n
}

// Put encodes l into b using the minimal form and returns the number of
// bytes written, which is always [Length.EncodedLen]. Definite lengths below
// 128 use the short form, larger ones the long form with the minimal number
// of value octets.
//
// Put panics if b is too small or if l is not a valid Length (negative
// other than [LengthIndefinite], or past 32 bits).
func (l Length) Put(b []byte) int {
	if l == LengthIndefinite {
		b[0] = 0x80
		return 1
	}
	if l < 0 || l > math.MaxUint32 {
		panic("tlv: invalid length value")
	}
	if l < 0x80 {
		b[0] = byte(l)
		return 1
	}
	numBytes := l.EncodedLen() - 1
	b[0] = 0x80 | byte(numBytes)
	for i := numBytes; i > 0; i-- {
		b[numBytes-i+1] = byte(l >> uint((i-1)*8))
	}
	return 1 + numBytes
}

//endregion
