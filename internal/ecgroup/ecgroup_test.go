package ecgroup

import (
	"errors"
	"math/big"
	"testing"
)

func TestRandScalarInRange(t *testing.T) {
	n := Curve().Params().N
	for i := 0; i < 50; i++ {
		k, err := RandScalar()
		if err != nil {
			t.Fatalf("RandScalar trial %d: %s", i, err)
		}
		if k.Sign() == 0 {
			t.Errorf("RandScalar trial %d: returned zero", i)
		}
		if k.Cmp(n) >= 0 {
			t.Errorf("RandScalar trial %d: %s >= curve order", i, k)
		}
	}
}

func TestRandScalarRejectsZero(t *testing.T) {
	calls := 0
	restore := SetScalarSourceForTest(func(n *big.Int) (*big.Int, error) {
		calls++
		if calls < 3 {
			return big.NewInt(0), nil
		}
		return big.NewInt(42), nil
	})
	defer restore()

	k, err := RandScalar()
	if err != nil {
		t.Fatalf("RandScalar: %s", err)
	}
	if k.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("RandScalar: got %s, expected 42", k)
	}
	if calls != 3 {
		t.Errorf("RandScalar: consulted source %d times, expected 3", calls)
	}
}

func TestRandScalarExhaustsOnPersistentZero(t *testing.T) {
	restore := SetScalarSourceForTest(func(n *big.Int) (*big.Int, error) {
		return big.NewInt(0), nil
	})
	defer restore()

	if _, err := RandScalar(); !errors.Is(err, ErrRngFailure) {
		t.Errorf("RandScalar: expected ErrRngFailure, got %v", err)
	}
}

func TestMulGeneratorAndMulAgree(t *testing.T) {
	k := big.NewInt(12345)
	g := MulGenerator(k)

	pub, err := NewPublicKey(MulGenerator(big.NewInt(1)))
	if err != nil {
		t.Fatalf("NewPublicKey: %s", err)
	}
	viaMul := Mul(pub.P, k)

	if g.X.Cmp(viaMul.X) != 0 || g.Y.Cmp(viaMul.Y) != 0 {
		t.Errorf("MulGenerator(k) != Mul(G, k): got (%s,%s) vs (%s,%s)", g.X, g.Y, viaMul.X, viaMul.Y)
	}
}

func TestToBytesFromBytesRoundTrip(t *testing.T) {
	p := MulGenerator(big.NewInt(999))
	b := ToBytes(p)
	got := FromBytes(b)
	if got.X.Cmp(p.X) != 0 || got.Y.Cmp(p.Y) != 0 {
		t.Errorf("round trip: got (%s,%s), expected (%s,%s)", got.X, got.Y, p.X, p.Y)
	}
	if !IsOnCurve(got) {
		t.Errorf("round-tripped point should be on curve")
	}
}

func TestNewPublicKeyRejectsOffCurvePoint(t *testing.T) {
	p := Point{X: big.NewInt(1), Y: big.NewInt(2)}
	if _, err := NewPublicKey(p); !errors.Is(err, ErrPointNotOnCurve) {
		t.Errorf("NewPublicKey((1,2)): expected ErrPointNotOnCurve, got %v", err)
	}
}

/* vim: set noai ts=4 sw=4: */
