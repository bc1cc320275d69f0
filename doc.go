// Package asinine implements a streaming parser for ASN.1 values encoded
// under the Distinguished/Basic Encoding Rules (DER/BER), restricted to
// the definite-length form, as specified in ITU-T X.690.
//
// The parser is a forward-only cursor over a caller-supplied byte slice.
// It never allocates and never copies content bytes: every Token returned
// by Parser.Next borrows a view into the input. Value decoders (OID,
// INTEGER, BOOLEAN, BIT STRING, the restricted character strings, and
// UTCTime) are layered on top and read only the content bytes of the
// Token passed to them.
//
// Indefinite-length encoding, BER non-canonical reconstructions,
// GeneralizedTime, REAL/ENUMERATED, arbitrary-precision integers,
// code-page-switching text, and non-"Z" UTCTime timezone offsets are out
// of scope; see the package-level notes on each decoder for the precise
// boundary.
package asinine
