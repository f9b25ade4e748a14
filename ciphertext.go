package sm2pke

import (
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/gmt32918/sm2pke/internal/der"
	"github.com/gmt32918/sm2pke/internal/ecgroup"
	"github.com/gmt32918/sm2pke/internal/sm3kdf"
	"github.com/gmt32918/sm2pke/internal/trace"
	"github.com/gmt32918/sm2pke/internal/wipe"
)

const traceCore = false

// maxEncryptRetries bounds the ordinary encrypt retry loop (degenerate k,
// all-zero keystream). Per spec.md §9 the loop terminates on the first
// iteration with overwhelming probability; this ceiling exists only to
// turn a theoretical infinite loop into ErrRngFailure.
const maxEncryptRetries = 32

// maxFixlenRetries is the fixed-length variant's DER-point-size retry
// budget, taken directly from the source's `trys = 200`.
const maxFixlenRetries = 200

// Ciphertext is the in-memory SM2 ciphertext record: C1 (the ephemeral
// point), C3 (the integrity hash), and C2 (the XOR-masked message) plus
// its length. Never constructed directly by callers — use doEncrypt,
// doEncryptFixlen, or der.Unmarshal via CiphertextFromDER.
type Ciphertext struct {
	Point          ecgroup.PointBytes // C1 = k*G
	Hash           [32]byte           // C3 = SM3(x2 || M || y2)
	CipherText     []byte             // C2 = M XOR KDF(x2||y2, len(M))
	CipherTextSize int                // len(CipherText); never narrowed on assignment
}

// doEncrypt implements spec.md §4.1 steps 1-9.
func doEncrypt(pub *ecgroup.PublicKey, m []byte, p Params) (Ciphertext, error) {
	if err := p.validate(); err != nil {
		return Ciphertext{}, err
	}
	if len(m) < p.MinPlaintextSize || len(m) > p.MaxPlaintextSize {
		return Ciphertext{}, fmt.Errorf("sm2pke: encrypt: plaintext length %d out of [%d,%d]: %w",
			len(m), p.MinPlaintextSize, p.MaxPlaintextSize, ErrInvalidArgument)
	}

	for attempt := 0; attempt < maxEncryptRetries; attempt++ {
		k, err := ecgroup.RandScalar()
		if err != nil {
			return Ciphertext{}, fmt.Errorf("sm2pke: encrypt: %w", ErrRngFailure)
		}

		c1 := ecgroup.MulGenerator(k)
		kP := ecgroup.Mul(pub.P, k)
		x2y2 := ecgroup.ToBytes(kP)
		wipe.BigInt(kP.X)
		wipe.BigInt(kP.Y)

		t := sm3kdf.KDF(x2y2[:], len(m))
		if sm3kdf.AllZero(t) {
			trace.Printf(traceCore, "doEncrypt: zero keystream on attempt %d, retrying\n", attempt)
			wipe.BigInt(k)
			wipe.Bytes(x2y2[:])
			wipe.Bytes(t)
			continue
		}

		c2 := make([]byte, len(m))
		for i := range m {
			c2[i] = m[i] ^ t[i]
		}

		hash := sm3kdf.Sum(x2y2[:32], m, x2y2[32:])

		out := Ciphertext{
			Point:          ecgroup.ToBytes(c1),
			Hash:           hash,
			CipherText:     c2,
			CipherTextSize: len(m),
		}

		wipe.BigInt(k)
		wipe.Bytes(x2y2[:])
		wipe.Bytes(t)
		return out, nil
	}
	return Ciphertext{}, fmt.Errorf("sm2pke: encrypt: %w", ErrRngFailure)
}

// doEncryptFixlen implements spec.md §4.2: identical to doEncrypt, but C1's
// DER footprint must equal the requested PointSize.
func doEncryptFixlen(pub *ecgroup.PublicKey, m []byte, ps PointSize, p Params) (Ciphertext, error) {
	if !ps.valid() {
		return Ciphertext{}, fmt.Errorf("sm2pke: encrypt_fixlen: point size %d not in {compact,typical,max}: %w", ps, ErrInvalidArgument)
	}
	if err := p.validate(); err != nil {
		return Ciphertext{}, err
	}
	if len(m) < p.MinPlaintextSize || len(m) > p.MaxPlaintextSize {
		return Ciphertext{}, fmt.Errorf("sm2pke: encrypt_fixlen: plaintext length %d out of [%d,%d]: %w",
			len(m), p.MinPlaintextSize, p.MaxPlaintextSize, ErrInvalidArgument)
	}

	tries := maxFixlenRetries
	for {
		k, err := ecgroup.RandScalar()
		if err != nil {
			return Ciphertext{}, fmt.Errorf("sm2pke: encrypt_fixlen: %w", ErrRngFailure)
		}

		c1 := ecgroup.MulGenerator(k)
		derLen := der.IntegerLen(c1.X) + der.IntegerLen(c1.Y)
		if PointSize(derLen) != ps {
			tries--
			if tries <= 0 {
				wipe.BigInt(k)
				return Ciphertext{}, fmt.Errorf("sm2pke: encrypt_fixlen: %w", ErrExhaustedRetries)
			}
			wipe.BigInt(k)
			continue
		}

		kP := ecgroup.Mul(pub.P, k)
		x2y2 := ecgroup.ToBytes(kP)
		wipe.BigInt(kP.X)
		wipe.BigInt(kP.Y)

		t := sm3kdf.KDF(x2y2[:], len(m))
		if sm3kdf.AllZero(t) {
			tries--
			if tries <= 0 {
				wipe.BigInt(k)
				wipe.Bytes(x2y2[:])
				wipe.Bytes(t)
				return Ciphertext{}, fmt.Errorf("sm2pke: encrypt_fixlen: %w", ErrExhaustedRetries)
			}
			wipe.BigInt(k)
			wipe.Bytes(x2y2[:])
			wipe.Bytes(t)
			continue
		}

		c2 := make([]byte, len(m))
		for i := range m {
			c2[i] = m[i] ^ t[i]
		}
		hash := sm3kdf.Sum(x2y2[:32], m, x2y2[32:])

		out := Ciphertext{
			Point:          ecgroup.ToBytes(c1),
			Hash:           hash,
			CipherText:     c2,
			CipherTextSize: len(m),
		}

		wipe.BigInt(k)
		wipe.Bytes(x2y2[:])
		wipe.Bytes(t)
		return out, nil
	}
}

// doDecrypt implements spec.md §4.3.
func doDecrypt(priv *big.Int, c Ciphertext, p Params) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	c1 := ecgroup.FromBytes(c.Point)
	if !ecgroup.IsOnCurve(c1) {
		return nil, fmt.Errorf("sm2pke: decrypt: %w", ErrPointNotOnCurve)
	}

	// Operate on a private copy of d so it can be wiped on every exit path
	// without scrubbing the caller's own key material out from under them.
	d := new(big.Int).Set(priv)
	defer wipe.BigInt(d)

	dC1 := ecgroup.Mul(c1, d)
	x2y2 := ecgroup.ToBytes(dC1)
	wipe.BigInt(dC1.X)
	wipe.BigInt(dC1.Y)
	defer wipe.Bytes(x2y2[:])

	t := sm3kdf.KDF(x2y2[:], c.CipherTextSize)
	defer wipe.Bytes(t)
	if sm3kdf.AllZero(t) {
		return nil, fmt.Errorf("sm2pke: decrypt: %w", ErrZeroKeystream)
	}

	m := make([]byte, c.CipherTextSize)
	for i := range m {
		m[i] = c.CipherText[i] ^ t[i]
	}

	got := sm3kdf.Sum(x2y2[:32], m, x2y2[32:])
	if subtle.ConstantTimeCompare(got[:], c.Hash[:]) != 1 {
		return nil, fmt.Errorf("sm2pke: decrypt: %w", ErrHashMismatch)
	}

	return m, nil
}
