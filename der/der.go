// Package der implements a reader and writer for the Distinguished Encoding
// Rules (DER) subset of ASN.1 as specified in [Rec. ITU-T X.690]. DER
// enforces a single canonical byte representation for every abstract value;
// [Reader] rejects anything that is syntactically valid under the relaxed
// BER rules but not canonical under DER, and [Writer] only produces the
// canonical form. This is the usual format of cryptographic material such as
// keys and certificates, where byte-exact encoding matters.
//
// Both types operate on caller-owned byte slices without allocating or
// copying: every successful read yields a primitive Go value or a validated
// view (see [codello.dev/basn1]) into the original buffer. A Reader or
// Writer is exclusively owned by its caller; nested readers produced by
// [Reader.Sequence] and [Set] cover disjoint sub-ranges of the input and are
// meant to be consumed one at a time.
//
// The indefinite-length encoding is decodable but rejected on every path
// ([ErrIndefiniteLength]): BER streams relying on it are out of scope for
// this package.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package der
