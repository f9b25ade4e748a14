package sm2pke

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/gmt32918/sm2pke/internal/ecgroup"
)

func TestCiphertextDERRoundTrip(t *testing.T) {
	_, pub := testKeyPair(t)

	c, err := doEncrypt(pub, []byte("round trip through DER"), DefaultParams)
	if err != nil {
		t.Fatalf("doEncrypt: %s", err)
	}

	der, err := CiphertextToDER(c)
	if err != nil {
		t.Fatalf("CiphertextToDER: %s", err)
	}

	got, err := CiphertextFromDER(der, DefaultParams)
	if err != nil {
		t.Fatalf("CiphertextFromDER: %s", err)
	}

	if got.Point != c.Point {
		t.Errorf("Point: got %x, expected %x", got.Point, c.Point)
	}
	if got.Hash != c.Hash {
		t.Errorf("Hash: got %x, expected %x", got.Hash, c.Hash)
	}
	if !bytes.Equal(got.CipherText, c.CipherText) {
		t.Errorf("CipherText: got %x, expected %x", got.CipherText, c.CipherText)
	}
}

func TestCiphertextFromDERRejectsTrailingGarbage(t *testing.T) {
	_, pub := testKeyPair(t)
	c, err := doEncrypt(pub, []byte("trailer test"), DefaultParams)
	if err != nil {
		t.Fatalf("doEncrypt: %s", err)
	}
	der, err := CiphertextToDER(c)
	if err != nil {
		t.Fatalf("CiphertextToDER: %s", err)
	}

	der = append(der, 0x00)
	if _, err := CiphertextFromDER(der, DefaultParams); err == nil {
		t.Errorf("CiphertextFromDER accepted trailing garbage")
	} else if !errors.Is(err, ErrMalformedDER) {
		t.Errorf("CiphertextFromDER wrong error for trailing garbage: %s", err)
	}
}

func TestCiphertextFromDERRejectsOffCurvePoint(t *testing.T) {
	_, pub := testKeyPair(t)
	c, err := doEncrypt(pub, []byte("off curve test"), DefaultParams)
	if err != nil {
		t.Fatalf("doEncrypt: %s", err)
	}
	c.Point[0] ^= 0xff // corrupt X so (X, Y) is almost certainly off-curve
	der, err := CiphertextToDER(c)
	if err != nil {
		t.Fatalf("CiphertextToDER: %s", err)
	}

	if _, err := CiphertextFromDER(der, DefaultParams); !errors.Is(err, ErrPointNotOnCurve) {
		t.Errorf("CiphertextFromDER: expected ErrPointNotOnCurve, got %v", err)
	}
}

func TestCiphertextFromDERRejectsEmptyCipherText(t *testing.T) {
	c := Ciphertext{
		Point:          ecgroup.ToBytes(ecgroup.MulGenerator(big.NewInt(7))),
		CipherTextSize: 0,
	}
	der, err := CiphertextToDER(c)
	if err != nil {
		t.Fatalf("CiphertextToDER: %s", err)
	}
	if _, err := CiphertextFromDER(der, DefaultParams); err == nil {
		t.Errorf("CiphertextFromDER accepted a zero-length CipherText")
	}
}

/* vim: set noai ts=4 sw=4: */
