// Package sm3kdf is the boundary over SM3 hashing and the SM2 key
// derivation function (counter-mode SM3 expansion). sm2pke never reaches
// for crypto/sha256-shaped primitives directly; every hash and every
// keystream byte in the scheme flows through here.
package sm3kdf

import (
	"encoding/binary"

	"github.com/emmansun/gmsm/sm3"
)

// Size is the SM3 digest size in bytes.
const Size = 32

// Sum returns SM3(parts[0] || parts[1] || ...), matching the normative
// ordering callers must supply (x2, M, y2 for C3; x2, y2 for the KDF seed).
func Sum(parts ...[]byte) [Size]byte {
	h := sm3.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out [Size]byte
	h.Sum(out[:0])
	return out
}

// KDF expands seed into outlen bytes via counter-mode SM3, per GB/T
// 32918.4 §5.4.3: the counter starts at 1 and is appended big-endian as
// the last four bytes of each round's hash input.
func KDF(seed []byte, outlen int) []byte {
	out := make([]byte, outlen)
	var ctr [4]byte
	ctr32 := uint32(1)
	h := sm3.New()
	produced := 0
	for produced < outlen {
		binary.BigEndian.PutUint32(ctr[:], ctr32)
		h.Reset()
		h.Write(seed)
		h.Write(ctr[:])
		var block [Size]byte
		h.Sum(block[:0])
		n := copy(out[produced:], block[:])
		produced += n
		ctr32++
	}
	return out
}

// AllZero reports whether b consists entirely of zero bytes. Used to
// detect the degenerate KDF output the scheme must reject.
func AllZero(b []byte) bool {
	var v byte
	for _, c := range b {
		v |= c
	}
	return v == 0
}
