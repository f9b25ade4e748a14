// Package sm2pke implements the SM2 public-key encryption transform of
// GB/T 32918.4 and its GB/T 32918.4 Annex D ASN.1-DER ciphertext encoding.
// Curve arithmetic lives in internal/ecgroup, SM3/KDF in internal/sm3kdf,
// and ASN.1 framing in internal/der — this package composes them into the
// randomized encrypt/decrypt transforms and their one-shot and streaming
// entry points.
package sm2pke

import (
	"fmt"
	"math/big"

	"github.com/gmt32918/sm2pke/internal/ecgroup"
)

// PublicKey and Point re-export the ecgroup types callers construct
// public keys with, so importers never need to import internal/ecgroup
// directly. Private keys are plain *big.Int scalars.
type PublicKey = ecgroup.PublicKey
type Point = ecgroup.Point

// NewPublicKey validates an (X, Y) affine point lies on the SM2 curve and
// wraps it for use with Encrypt/EncryptFixlen/NewEncCtx.
func NewPublicKey(p Point) (*PublicKey, error) {
	pk, err := ecgroup.NewPublicKey(p)
	if err != nil {
		return nil, fmt.Errorf("sm2pke: %w", ErrPointNotOnCurve)
	}
	return pk, nil
}

// Encrypt composes doEncrypt with CiphertextToDER (spec.md §4.5).
func Encrypt(pub *PublicKey, plaintext []byte, p Params) ([]byte, error) {
	if pub == nil || plaintext == nil {
		return nil, fmt.Errorf("sm2pke: encrypt: %w", ErrInvalidArgument)
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("sm2pke: encrypt: %w", ErrInvalidArgument)
	}
	c, err := doEncrypt(pub, plaintext, p)
	if err != nil {
		return nil, err
	}
	return CiphertextToDER(c)
}

// EncryptFixlen composes doEncryptFixlen with CiphertextToDER (spec.md §4.5).
func EncryptFixlen(pub *PublicKey, plaintext []byte, ps PointSize, p Params) ([]byte, error) {
	if pub == nil || plaintext == nil {
		return nil, fmt.Errorf("sm2pke: encrypt_fixlen: %w", ErrInvalidArgument)
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("sm2pke: encrypt_fixlen: %w", ErrInvalidArgument)
	}
	c, err := doEncryptFixlen(pub, plaintext, ps, p)
	if err != nil {
		return nil, err
	}
	return CiphertextToDER(c)
}

// Decrypt composes CiphertextFromDER with doDecrypt (spec.md §4.5),
// rejecting any trailing bytes after the outer SEQUENCE (enforced inside
// CiphertextFromDER).
func Decrypt(priv *big.Int, ciphertextDER []byte, p Params) ([]byte, error) {
	if priv == nil || ciphertextDER == nil {
		return nil, fmt.Errorf("sm2pke: decrypt: %w", ErrInvalidArgument)
	}
	c, err := CiphertextFromDER(ciphertextDER, p)
	if err != nil {
		return nil, err
	}
	return doDecrypt(priv, c, p)
}

// MaxCiphertextSize returns an upper bound on the length of the DER
// ciphertext Encrypt produces for a plaintext of the given size under p
// (it is not the exact maximum) — a pure sizing helper absent
// from spec.md's distillation but present in the GmSSL source this spec
// traces to (sm2_ciphertext_size), useful for callers that must size an
// output buffer without a trial encode.
func MaxCiphertextSize(plaintextSize int, p Params) int {
	return maxCiphertextSize(Params{MinPlaintextSize: p.MinPlaintextSize, MaxPlaintextSize: plaintextSize})
}
