// Package der is the ASN.1 adapter: INTEGER/OCTET STRING/SEQUENCE framing
// for the SM2Cipher structure, built on golang.org/x/crypto/cryptobyte the
// way dromara/dongle's sm2curve package builds its SPKI/PKCS8 codecs. It
// exposes both an emission mode (Builder-backed) and a measurement mode
// (IntegerLen) so sm2pke can size a fixed-length ciphertext's DER footprint
// before committing to an ephemeral point.
package der

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var (
	ErrMalformed        = errors.New("der: malformed SM2 ciphertext")
	ErrTrailingGarbage  = errors.New("der: trailing bytes after SEQUENCE")
	ErrLengthOutOfRange = errors.New("der: field length out of range")
)

// Cipher is the wire-level field set of an SM2 ciphertext's DER form —
// purely a parsing/encoding record, distinct from sm2pke.Ciphertext (which
// carries fixed-width coordinate and hash arrays plus a length-checked
// CipherText).
type Cipher struct {
	X, Y       *big.Int
	Hash       []byte // must be exactly 32 bytes on both encode and decode
	CipherText []byte
}

// Marshal emits the SM2Cipher SEQUENCE:
//
//	SM2Cipher ::= SEQUENCE {
//	    XCoordinate INTEGER,
//	    YCoordinate INTEGER,
//	    HASH        OCTET STRING (SIZE(32)),
//	    CipherText  OCTET STRING
//	}
func Marshal(c Cipher) ([]byte, error) {
	if len(c.Hash) != 32 {
		return nil, ErrLengthOutOfRange
	}
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(c.X)
		b.AddASN1BigInt(c.Y)
		b.AddASN1OctetString(c.Hash)
		b.AddASN1OctetString(c.CipherText)
	})
	return b.Bytes()
}

// Unmarshal parses an SM2Cipher SEQUENCE, rejecting trailing bytes after
// it, oversized coordinate INTEGERs, a HASH of any length but 32, and a
// CipherText longer than maxPlaintext. It does not validate curve
// membership of (X, Y) — that belongs to the ecgroup adapter, called by
// sm2pke after Unmarshal returns.
func Unmarshal(data []byte, maxPlaintext int) (Cipher, error) {
	input := cryptobyte.String(data)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) {
		return Cipher{}, ErrMalformed
	}
	if !input.Empty() {
		return Cipher{}, ErrTrailingGarbage
	}

	var xBytes, yBytes, hashBytes, ctBytes cryptobyte.String
	if !seq.ReadASN1(&xBytes, asn1.INTEGER) ||
		!seq.ReadASN1(&yBytes, asn1.INTEGER) ||
		!seq.ReadASN1(&hashBytes, asn1.OCTET_STRING) ||
		!seq.ReadASN1(&ctBytes, asn1.OCTET_STRING) {
		return Cipher{}, ErrMalformed
	}
	if !seq.Empty() {
		return Cipher{}, ErrTrailingGarbage
	}

	if len(xBytes) > 33 || len(yBytes) > 33 {
		// 33, not 32: a coordinate whose top bit is set is DER-encoded
		// with a leading 0x00 sign-extension byte; the magnitude itself
		// is still bounded to 32 bytes, checked below via big.Int parse.
		return Cipher{}, ErrLengthOutOfRange
	}
	x := new(big.Int).SetBytes(trimSign(xBytes))
	y := new(big.Int).SetBytes(trimSign(yBytes))
	if len(x.Bytes()) > 32 || len(y.Bytes()) > 32 {
		return Cipher{}, ErrLengthOutOfRange
	}
	if len(hashBytes) != 32 {
		return Cipher{}, ErrLengthOutOfRange
	}
	if len(ctBytes) == 0 || len(ctBytes) > maxPlaintext {
		return Cipher{}, ErrLengthOutOfRange
	}

	return Cipher{
		X:          x,
		Y:          y,
		Hash:       append([]byte(nil), hashBytes...),
		CipherText: append([]byte(nil), ctBytes...),
	}, nil
}

// trimSign drops a single leading 0x00 sign-extension byte so the
// remaining bytes decode to the same magnitude a 32-byte field holds.
func trimSign(b []byte) []byte {
	if len(b) == 33 && b[0] == 0 {
		return b[1:]
	}
	return b
}

// IntegerLen reports the DER length (tag + length octets + content) that
// Marshal would emit for x as an ASN.1 INTEGER, without emitting it. Used
// by the fixed-length encrypt variant to measure X1/Y1 before committing
// to C1.
func IntegerLen(x *big.Int) int {
	var b cryptobyte.Builder
	b.AddASN1BigInt(x)
	out, err := b.Bytes()
	if err != nil {
		// AddASN1BigInt on a well-formed *big.Int never fails; this path
		// exists only to satisfy the error return of Builder.Bytes.
		return 0
	}
	return len(out)
}
