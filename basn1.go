// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package basn1 implements allocation-free types for binary ASN.1 encoded
// data as defined in [Rec. ITU-T X.680]. The general principle of this module
// is to never transform or re-allocate input data: decoding produces typed,
// validated views into the caller-owned byte buffer, and encoding writes into
// a caller-supplied buffer.
//
// This package only defines the value types shared by the encoding layers.
// The syntactic tag-length codec lives in [codello.dev/basn1/tlv] and the
// Distinguished Encoding Rules (DER) reader and writer live in
// [codello.dev/basn1/der].
//
// # Typed Views
//
// The types [Integer], [Enumerated], [BitString], [OID] and [OIDComponent]
// each wrap the content octets of an encoded value of the corresponding ASN.1
// type. A view can only be constructed through a validating constructor (or
// by the der package, which performs the same validation), so holding a view
// is proof that the wrapped bytes satisfy the canonical form of their type.
// Views borrow the bytes they were constructed from; use the Clone method of
// a view to obtain a copy with its own backing storage.
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package basn1

// Class holds the class part of an ASN.1 tag. The class acts as a namespace
// for the tag number. A Class value is an unsigned 2-bit integer. Class
// values whose value exceeds 2 bits are invalid.
//
//go:generate go tool stringer -type=Class -trimprefix=Class
type Class uint8

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// These are the ASN.1 tag numbers in the [ClassUniversal] namespace that the
// der package can process. The assignments are defined in Rec. ITU-T X.680,
// Section 8, Table 1.
const (
	TagBoolean     uint32 = 1
	TagInteger     uint32 = 2
	TagBitString   uint32 = 3
	TagOctetString uint32 = 4
	TagNull        uint32 = 5
	TagOID         uint32 = 6
	TagEnumerated  uint32 = 10
	TagUTF8String  uint32 = 12
	TagSequence    uint32 = 16
	TagSet         uint32 = 17
)
