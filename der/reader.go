package der

import (
	"iter"
	"unicode/utf8"
	"unsafe"

	"codello.dev/basn1"
	"codello.dev/basn1/tlv"
)

// Reader is a cursor over a DER-encoded byte slice. Each decoding method
// consumes exactly one TLV data value, validates it against the canonical
// encoding rules of its type and advances the cursor past it. Reader never
// copies input bytes: decoded values are views into the original slice and
// remain valid as long as the slice does.
//
// Any validation failure is terminal for that data value; the cursor is left
// where the failure was detected and the caller decides whether to abort or
// to skip the value using [Reader.Any].
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a Reader decoding from the caller-owned slice data. The
// Reader does not take ownership; data must outlive every view produced from
// it.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// next decodes the identifier and length octets at the cursor and advances
// past them.
func (r *Reader) next() (tlv.Identifier, tlv.Length, error) {
	id, n, err := tlv.ParseIdentifier(r.data[r.off:])
	if err != nil {
		return id, 0, err
	}
	r.off += n
	l, n, err := tlv.ParseLength(r.data[r.off:])
	if err != nil {
		return id, l, err
	}
	r.off += n
	return id, l, nil
}

// nextExpect decodes the next header and requires the universal class, the
// given primitive/constructed flag and the given tag number. Each mismatch
// is reported as a distinct error naming the expected and actual values.
func (r *Reader) nextExpect(constructed bool, tag uint32) (tlv.Length, error) {
	id, l, err := r.next()
	if err != nil {
		return l, err
	}
	if id.Class != basn1.ClassUniversal {
		return l, &ClassError{Expected: basn1.ClassUniversal, Actual: id.Class}
	}
	if id.Constructed != constructed {
		return l, &ConstructedError{Expected: constructed, Actual: id.Constructed}
	}
	if id.Tag != tag {
		return l, &TagError{Expected: tag, Actual: id.Tag}
	}
	return l, nil
}

// content carves out the content octets declared by l and advances the
// cursor past them.
func (r *Reader) content(l tlv.Length) ([]byte, error) {
	if l == tlv.LengthIndefinite {
		return nil, ErrIndefiniteLength
	}
	if int(l) > len(r.data)-r.off {
		return nil, ErrTruncated
	}
	sub := r.data[r.off : r.off+int(l)]
	r.off += int(l)
	return sub, nil
}

// syntaxError wraps err with the offset of the data value that start marks
// the beginning of. SyntaxError values pass through unchanged.
func syntaxError(start int, err error) error {
	if _, ok := err.(*SyntaxError); ok {
		return err
	}
	return &SyntaxError{Err: err, ByteOffset: start}
}

// Any decodes the next data value of any class, form and tag and returns its
// raw header and content octets. No type validation is performed. Any is the
// escape hatch for walking unknown or context-specific structures.
func (r *Reader) Any() (tlv.Identifier, tlv.Length, []byte, error) {
	start := r.off
	id, l, err := r.next()
	if err != nil {
		return id, l, nil, syntaxError(start, err)
	}
	sub, err := r.content(l)
	if err != nil {
		return id, l, nil, syntaxError(start, err)
	}
	return id, l, sub, nil
}

// Bool decodes a BOOLEAN. DER restricts the content to a single octet that
// is either 0x00 or 0xFF.
func (r *Reader) Bool() (bool, error) {
	start := r.off
	sub, err := r.primitive(basn1.TagBoolean)
	if err != nil {
		return false, syntaxError(start, err)
	}
	if len(sub) != 1 {
		return false, syntaxError(start, &BoolLengthError{Length: len(sub)})
	}
	switch sub[0] {
	case 0x00:
		return false, nil
	case 0xff:
		return true, nil
	default:
		return false, syntaxError(start, &BoolValueError{Value: sub[0]})
	}
}

// Integer decodes an INTEGER into a validated view of its content octets.
func (r *Reader) Integer() (basn1.Integer, error) {
	start := r.off
	sub, err := r.primitive(basn1.TagInteger)
	if err != nil {
		return basn1.Integer{}, syntaxError(start, err)
	}
	i, err := basn1.NewInteger(sub)
	if err != nil {
		return basn1.Integer{}, syntaxError(start, err)
	}
	return i, nil
}

// Enumerated decodes an ENUMERATED into a validated view of its content
// octets.
func (r *Reader) Enumerated() (basn1.Enumerated, error) {
	start := r.off
	sub, err := r.primitive(basn1.TagEnumerated)
	if err != nil {
		return basn1.Enumerated{}, syntaxError(start, err)
	}
	e, err := basn1.NewEnumerated(sub)
	if err != nil {
		return basn1.Enumerated{}, syntaxError(start, err)
	}
	return e, nil
}

// BitString decodes a BIT STRING into a validated view of its content
// octets, enforcing the DER requirement that unused bits in the last octet
// are zero.
func (r *Reader) BitString() (basn1.BitString, error) {
	start := r.off
	sub, err := r.primitive(basn1.TagBitString)
	if err != nil {
		return basn1.BitString{}, syntaxError(start, err)
	}
	bs, err := basn1.NewBitString(sub)
	if err != nil {
		return basn1.BitString{}, syntaxError(start, err)
	}
	return bs, nil
}

// OctetString decodes an OCTET STRING and returns its content octets. The
// slice shares memory with the input.
func (r *Reader) OctetString() ([]byte, error) {
	start := r.off
	sub, err := r.primitive(basn1.TagOctetString)
	if err != nil {
		return nil, syntaxError(start, err)
	}
	return sub, nil
}

// UTF8String decodes a string value and validates that its contents are
// valid UTF-8. The returned string shares memory with the input.
//
// Note that UTF8String matches data values carrying the OCTET STRING tag,
// not tag 12. This mirrors the behavior of earlier versions and is kept for
// wire compatibility; [Writer.UTF8String] emits tag 12.
func (r *Reader) UTF8String() (string, error) {
	start := r.off
	sub, err := r.primitive(basn1.TagOctetString)
	if err != nil {
		return "", syntaxError(start, err)
	}
	if !utf8.Valid(sub) {
		return "", syntaxError(start, ErrInvalidUTF8)
	}
	return unsafe.String(unsafe.SliceData(sub), len(sub)), nil
}

// Null decodes a NULL and validates that its content is empty.
func (r *Reader) Null() error {
	start := r.off
	sub, err := r.primitive(basn1.TagNull)
	if err != nil {
		return syntaxError(start, err)
	}
	if len(sub) != 0 {
		return syntaxError(start, ErrNullNotEmpty)
	}
	return nil
}

// OID decodes an OBJECT IDENTIFIER into a validated view of its content
// octets.
func (r *Reader) OID() (basn1.OID, error) {
	start := r.off
	sub, err := r.primitive(basn1.TagOID)
	if err != nil {
		return basn1.OID{}, syntaxError(start, err)
	}
	oid, err := basn1.NewOID(sub)
	if err != nil {
		return basn1.OID{}, syntaxError(start, err)
	}
	return oid, nil
}

// Sequence decodes a SEQUENCE header and returns a new Reader over its
// content octets. The sub-Reader borrows a disjoint sub-range of the input
// and starts at position 0; use [Reader.Done] on it to assert that the
// sequence was consumed completely.
func (r *Reader) Sequence() (*Reader, error) {
	start := r.off
	l, err := r.nextExpect(true, basn1.TagSequence)
	if err != nil {
		return nil, syntaxError(start, err)
	}
	sub, err := r.content(l)
	if err != nil {
		return nil, syntaxError(start, err)
	}
	return NewReader(sub), nil
}

// primitive decodes the header of a primitive universal data value with the
// given tag and returns its content octets.
func (r *Reader) primitive(tag uint32) ([]byte, error) {
	l, err := r.nextExpect(false, tag)
	if err != nil {
		return nil, err
	}
	return r.content(l)
}

// Set decodes a SET header from r and returns a lazy iterator pairing the
// content octets with the per-element function parse. Each iteration step
// invokes parse at the current position of the element sub-Reader; the
// sequence ends exactly when the sub-Reader has consumed its content octets.
// A parse error is yielded as that element's result and does not advance
// past the element, so a consumer that keeps iterating after an error must
// expect the same position again.
//
// The iterator is finite and single-use: once the content octets are
// exhausted, re-ranging yields nothing. Decode a fresh SET to reparse.
func Set[E any](r *Reader, parse func(*Reader) (E, error)) (iter.Seq2[E, error], error) {
	start := r.off
	l, err := r.nextExpect(true, basn1.TagSet)
	if err != nil {
		return nil, syntaxError(start, err)
	}
	sub, err := r.content(l)
	if err != nil {
		return nil, syntaxError(start, err)
	}
	sr := NewReader(sub)
	return func(yield func(E, error) bool) {
		for sr.off < len(sr.data) {
			if !yield(parse(sr)) {
				return
			}
		}
	}, nil
}

// Done asserts that r has consumed its entire input. This is how a
// SEQUENCE or SET boundary is enforced to match its declared length exactly:
// DER forbids trailing bytes after the expected end.
func (r *Reader) Done() error {
	if r.off == len(r.data) {
		return nil
	}
	return &NotTerminatedError{Offset: r.off, Len: len(r.data)}
}

// InputOffset returns the current cursor position of r, i.e. the number of
// input bytes consumed so far.
func (r *Reader) InputOffset() int {
	return r.off
}

// Rest returns the unconsumed remainder of the input. The slice shares
// memory with the input.
func (r *Reader) Rest() []byte {
	return r.data[r.off:]
}
