package sm2pke

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/gmt32918/sm2pke/internal/der"
	"github.com/gmt32918/sm2pke/internal/ecgroup"
)

// CiphertextToDER implements spec.md §4.4's encoding direction.
func CiphertextToDER(c Ciphertext) ([]byte, error) {
	x := new(big.Int).SetBytes(c.Point[:32])
	y := new(big.Int).SetBytes(c.Point[32:])
	out, err := der.Marshal(der.Cipher{
		X:          x,
		Y:          y,
		Hash:       c.Hash[:],
		CipherText: c.CipherText[:c.CipherTextSize],
	})
	if err != nil {
		return nil, fmt.Errorf("sm2pke: der encode: %w", err)
	}
	return out, nil
}

// CiphertextFromDER implements spec.md §4.4's decoding direction: parses
// the SEQUENCE, enforces every length invariant, then validates the
// reconstructed C1 lies on the curve. The zero-length-C2 open question
// (§9) is resolved here by rejection: der.Unmarshal already treats a
// zero-length CipherText as ErrLengthOutOfRange, diverging deliberately
// from the source's commented-out check — see DESIGN.md.
func CiphertextFromDER(data []byte, p Params) (Ciphertext, error) {
	if err := p.validate(); err != nil {
		return Ciphertext{}, err
	}
	raw, err := der.Unmarshal(data, p.MaxPlaintextSize)
	if err != nil {
		return Ciphertext{}, mapDERErr(err)
	}

	point := ecgroup.ToBytes(ecgroup.Point{X: raw.X, Y: raw.Y})
	if !ecgroup.IsOnCurve(ecgroup.FromBytes(point)) {
		return Ciphertext{}, fmt.Errorf("sm2pke: der decode: %w", ErrPointNotOnCurve)
	}

	var hash [32]byte
	copy(hash[:], raw.Hash)

	return Ciphertext{
		Point:          point,
		Hash:           hash,
		CipherText:     raw.CipherText,
		CipherTextSize: len(raw.CipherText),
	}, nil
}

func mapDERErr(err error) error {
	switch {
	case errors.Is(err, der.ErrTrailingGarbage):
		return fmt.Errorf("sm2pke: der decode: %w", ErrMalformedDER)
	case errors.Is(err, der.ErrLengthOutOfRange):
		return fmt.Errorf("sm2pke: der decode: %w", ErrLengthOutOfRange)
	case errors.Is(err, der.ErrMalformed):
		return fmt.Errorf("sm2pke: der decode: %w", ErrMalformedDER)
	default:
		return fmt.Errorf("sm2pke: der decode: %w", ErrMalformedDER)
	}
}
