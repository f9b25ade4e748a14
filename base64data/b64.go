// Package base64data implements a JSON-friendly byte-blob type: base64 on
// the wire, raw bytes in memory. Adapted from the SJCL JSON reader's
// Base64Data helper to back this module's known-answer-test fixtures
// (internal/kat), where private scalars, forced ephemeral scalars, and
// plaintexts all need to round-trip through a JSON file.
package base64data

import "encoding/base64"

// Base64Data extends the JSON marshal/unmarshal interface to support
// base64-encoded binary fields.
type Base64Data []byte

// MarshalText implements encoding.TextMarshaler.
func (b Base64Data) MarshalText() ([]byte, error) {
	text := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(text, b)
	return text, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base64Data) UnmarshalText(text []byte) error {
	if n := base64.StdEncoding.DecodedLen(len(text)); cap(*b) < n {
		*b = make([]byte, n)
	}
	n, err := base64.StdEncoding.Decode(*b, text)
	*b = (*b)[:n]
	return err
}

// IsEmpty reports whether b is unset or consists entirely of zero bytes.
func (b Base64Data) IsEmpty() bool {
	if len(b) == 0 {
		return true
	}
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
