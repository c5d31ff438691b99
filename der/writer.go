package der

import (
	"codello.dev/basn1"
	"codello.dev/basn1/tlv"
)

// Writer is a cursor over a caller-supplied byte buffer. Each encoding
// method appends exactly one TLV data value in its canonical DER form. A
// write either succeeds completely or fails with [BufferTooSmallError]
// before touching the buffer; a failed write should be treated as terminal
// for the Writer.
type Writer struct {
	buf []byte
	off int
}

// NewWriter creates a Writer encoding into the caller-owned buffer buf. The
// Writer does not grow the buffer; the caller sizes it.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// primitive writes the primitive universal data value with the given tag and
// content octets.
func (w *Writer) primitive(tag uint32, data []byte) error {
	id := tlv.Identifier{Class: basn1.ClassUniversal, Tag: tag}
	l := tlv.Length(len(data))
	if id.EncodedLen()+l.EncodedLen()+len(data) > len(w.buf)-w.off {
		return &BufferTooSmallError{Cap: len(w.buf)}
	}
	w.off += id.Put(w.buf[w.off:])
	w.off += l.Put(w.buf[w.off:])
	w.off += copy(w.buf[w.off:], data)
	return nil
}

// Bool encodes a BOOLEAN. TRUE is encoded as 0xFF per DER.
func (w *Writer) Bool(v bool) error {
	if v {
		return w.primitive(basn1.TagBoolean, []byte{0xff})
	}
	return w.primitive(basn1.TagBoolean, []byte{0x00})
}

// Integer encodes an INTEGER from a validated view.
func (w *Writer) Integer(i basn1.Integer) error {
	return w.primitive(basn1.TagInteger, i.Bytes())
}

// Enumerated encodes an ENUMERATED from a validated view.
func (w *Writer) Enumerated(e basn1.Enumerated) error {
	return w.primitive(basn1.TagEnumerated, e.Bytes())
}

// BitString encodes a BIT STRING from a validated view.
func (w *Writer) BitString(bs basn1.BitString) error {
	return w.primitive(basn1.TagBitString, bs.Bytes())
}

// OctetString encodes an OCTET STRING with the given content octets.
func (w *Writer) OctetString(data []byte) error {
	return w.primitive(basn1.TagOctetString, data)
}

// Null encodes a NULL.
func (w *Writer) Null() error {
	return w.primitive(basn1.TagNull, nil)
}

// UTF8String encodes s as a UTF8String with tag 12. Note the asymmetry with
// [Reader.UTF8String], which matches the OCTET STRING tag.
func (w *Writer) UTF8String(s string) error {
	return w.primitive(basn1.TagUTF8String, []byte(s))
}

// OID encodes an OBJECT IDENTIFIER from a validated view.
func (w *Writer) OID(oid basn1.OID) error {
	return w.primitive(basn1.TagOID, oid.Bytes())
}

// Sequence encodes a SEQUENCE whose content octets are produced by f writing
// into w. The length field is written after f returns; see [Writer.Set] for
// the shared mechanics.
func (w *Writer) Sequence(f func(*Writer) error) error {
	return w.constructed(basn1.TagSequence, f)
}

// Set encodes a SET whose content octets are produced by f writing into w.
//
// The length of the content is not known up front, so a single short-form
// length octet is reserved before invoking f. If the content turns out to
// need a long-form length, the already-written content is shifted forward to
// make room for it; DER demands the minimal length encoding, so the field
// cannot be padded to a worst-case size instead.
func (w *Writer) Set(f func(*Writer) error) error {
	return w.constructed(basn1.TagSet, f)
}

// constructed writes the constructed universal data value with the given tag,
// deferring to f for the content octets and backpatching the length field.
func (w *Writer) constructed(tag uint32, f func(*Writer) error) error {
	id := tlv.Identifier{Class: basn1.ClassUniversal, Constructed: true, Tag: tag}
	if id.EncodedLen()+1 > len(w.buf)-w.off {
		return &BufferTooSmallError{Cap: len(w.buf)}
	}
	w.off += id.Put(w.buf[w.off:])
	posLength := w.off
	w.off += tlv.Length(0).Put(w.buf[w.off:])
	posData := w.off

	if err := f(w); err != nil {
		return err
	}

	l := tlv.Length(w.off - posData)
	if l < 0x80 {
		// the reserved octet can hold the short form
		l.Put(w.buf[posLength:])
		return nil
	}
	// The minimal length field is larger than the one reserved octet. Shift
	// the content forward to make room for it.
	shift := l.EncodedLen() - 1
	if shift > len(w.buf)-w.off {
		return &BufferTooSmallError{Cap: len(w.buf)}
	}
	copy(w.buf[posData+shift:w.off+shift], w.buf[posData:w.off])
	w.off += shift
	l.Put(w.buf[posLength:])
	return nil
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.off
}

// Finish returns the prefix of the buffer holding the encoded data values.
// The slice shares memory with the buffer passed to [NewWriter]. Finish does
// not reset the Writer.
func (w *Writer) Finish() []byte {
	return w.buf[:w.off]
}
