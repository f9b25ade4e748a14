// Package ecgroup is the boundary between sm2pke and the SM2 prime-order
// elliptic curve group. It knows nothing about ciphertext layout, KDFs, or
// DER — only scalar sampling, scalar multiplication, and the affine
// point<->64-byte wire form used by C1 and the intermediate kP/dC1 points.
//
// SM2's cofactor is 1, so the group has no subgroup-membership check beyond
// "is this point on the curve"; point-at-infinity cannot be expressed in the
// 64-byte X||Y form and must never occur in a valid Point.
package ecgroup

import (
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/emmansun/gmsm/sm2"
)

// ErrRngFailure covers any failure of the underlying CSPRNG to produce a
// scalar, including rejection-sampling exhaustion.
var ErrRngFailure = errors.New("ecgroup: random scalar generation failed")

// ErrPointNotOnCurve is returned by NewPublicKey for a point that fails
// IsOnCurve. FromBytes itself never validates or returns it.
var ErrPointNotOnCurve = errors.New("ecgroup: point is not on the sm2 curve")

// Curve returns the SM2 recommended curve (GB/T 32918.5 Annex A), exposed
// as a standard library elliptic.Curve so this adapter composes with
// crypto/elliptic-shaped code the way golang.org/x/crypto and the rest of
// the ecosystem expect.
func Curve() elliptic.Curve { return sm2.P256() }

// Point is an affine SM2 curve point. The zero value is not a valid point.
type Point struct {
	X, Y *big.Int
}

// PointBytes is the 64-byte uncompressed X||Y wire form used inside the
// ciphertext's C1 field and the intermediate kP/dC1 coordinates.
type PointBytes [64]byte

// randSource produces the raw uniform-in-[0,n) draw RandScalar rejection
// samples over. Swappable only through SetScalarSourceForTest, so
// known-answer tests can force the standard's published k without a code
// path production callers can reach.
var randSource = func(n *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, n)
}

// SetScalarSourceForTest overrides the raw scalar draw for the duration of
// a test and returns a restore func. f is consulted in place of
// crypto/rand; RandScalar still performs its own zero-rejection around it.
func SetScalarSourceForTest(f func(n *big.Int) (*big.Int, error)) (restore func()) {
	prev := randSource
	randSource = f
	return func() { randSource = prev }
}

// RandScalar draws k uniformly from [1, n-1] where n is the curve order,
// redrawing on the (negligible-probability) chance the sampler returns
// zero. Mirrors the teacher's pattern of validating constructor inputs up
// front and failing with a single sentinel on exhaustion.
func RandScalar() (*big.Int, error) {
	n := Curve().Params().N
	for attempt := 0; attempt < 8; attempt++ {
		k, err := randSource(n)
		if err != nil {
			return nil, ErrRngFailure
		}
		if k.Sign() != 0 {
			return k, nil
		}
	}
	return nil, ErrRngFailure
}

// MulGenerator computes k*G.
func MulGenerator(k *big.Int) Point {
	x, y := Curve().ScalarBaseMult(k.Bytes())
	return Point{X: x, Y: y}
}

// Mul computes k*P.
func Mul(p Point, k *big.Int) Point {
	x, y := Curve().ScalarMult(p.X, p.Y, k.Bytes())
	return Point{X: x, Y: y}
}

// IsOnCurve reports whether p lies on the SM2 curve. The cofactor-times-P
// check required by some other curves is vacuous here (h=1) and is
// deliberately not performed.
func IsOnCurve(p Point) bool {
	if p.X == nil || p.Y == nil {
		return false
	}
	return Curve().IsOnCurve(p.X, p.Y)
}

// ToBytes serializes p as 32-byte big-endian X followed by 32-byte
// big-endian Y, zero-padded on the left.
func ToBytes(p Point) PointBytes {
	var out PointBytes
	p.X.FillBytes(out[:32])
	p.Y.FillBytes(out[32:])
	return out
}

// FromBytes decodes a 64-byte X||Y form into a Point. It does not validate
// curve membership — callers that need a validated point must follow with
// IsOnCurve, per the "decode, then validate" separation spec.md requires at
// the DER-parse and decrypt boundaries.
func FromBytes(b PointBytes) Point {
	x := new(big.Int).SetBytes(b[:32])
	y := new(big.Int).SetBytes(b[32:])
	return Point{X: x, Y: y}
}

// PublicKey wraps a caller-supplied public key point, validated once at
// construction so do_encrypt never has to repeat the check spec.md says is
// vacuous for cofactor 1 curves (it still checks the point is on-curve; the
// cofactor multiplication itself is what's vacuous).
type PublicKey struct {
	P Point
}

// NewPublicKey validates p and wraps it.
func NewPublicKey(p Point) (*PublicKey, error) {
	if !IsOnCurve(p) {
		return nil, ErrPointNotOnCurve
	}
	return &PublicKey{P: p}, nil
}
