package sm2pke

import (
	"fmt"
	"math/big"

	"github.com/gmt32918/sm2pke/internal/wipe"
)

// EncCtx is the bounded accumulator of spec.md §4.6: SM2 encryption is not
// an incremental mode, so Update only appends to an internal buffer and
// Finish performs the one-shot transform over whatever was accumulated.
type EncCtx struct {
	pub    *PublicKey
	params Params
	buf    []byte
	done   bool
}

// NewEncCtx initializes a streaming encrypt context for pub. Mirrors the
// teacher's *_init(ctx, key) — zeroed state, key copied in, no allocation
// beyond the accumulator.
func NewEncCtx(pub *PublicKey, p Params) (*EncCtx, error) {
	if pub == nil || pub.P.X == nil || pub.P.Y == nil {
		return nil, fmt.Errorf("sm2pke: enc_ctx_init: %w", ErrInvalidArgument)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	pubCopy := &PublicKey{P: Point{X: new(big.Int).Set(pub.P.X), Y: new(big.Int).Set(pub.P.Y)}}
	return &EncCtx{
		pub:    pubCopy,
		params: p,
		buf:    make([]byte, 0, p.MaxPlaintextSize),
	}, nil
}

// Update appends in to the accumulator. A nil out is the size-query mode
// of spec.md §4.6: nothing is appended and outlen is always 0 (encrypt has
// no way to predict a useful output size before Finish). A non-nil out
// triggers the append; out's contents are never written by Update itself.
func (c *EncCtx) Update(in []byte, out []byte) (outlen int, err error) {
	if c.done {
		return 0, fmt.Errorf("sm2pke: enc_ctx_update: %w", ErrInvalidArgument)
	}
	if len(c.buf) > c.params.MaxPlaintextSize {
		return 0, fmt.Errorf("sm2pke: enc_ctx_update: %w", ErrTooLarge)
	}
	if out == nil {
		return 0, nil
	}
	if in != nil {
		if len(in) > c.params.MaxPlaintextSize-len(c.buf) {
			return 0, fmt.Errorf("sm2pke: enc_ctx_update: %w", ErrTooLarge)
		}
		c.buf = append(c.buf, in...)
	}
	return 0, nil
}

// Finish appends any trailing in, then runs Encrypt over the accumulated
// buffer. A nil out is the size-query mode: reports the upper bound
// MaxCiphertextSize without consuming in. The context is single-use —
// callers must call NewEncCtx again to reuse.
func (c *EncCtx) Finish(in []byte, out []byte) (outlen int, err error) {
	if c.done {
		return 0, fmt.Errorf("sm2pke: enc_ctx_finish: %w", ErrInvalidArgument)
	}
	if len(c.buf) > c.params.MaxPlaintextSize {
		return 0, fmt.Errorf("sm2pke: enc_ctx_finish: %w", ErrTooLarge)
	}
	if out == nil {
		return MaxCiphertextSize(c.params.MaxPlaintextSize, c.params), nil
	}

	var plaintext []byte
	if len(c.buf) > 0 {
		if in != nil {
			if len(in) > c.params.MaxPlaintextSize-len(c.buf) {
				return 0, fmt.Errorf("sm2pke: enc_ctx_finish: %w", ErrTooLarge)
			}
			c.buf = append(c.buf, in...)
		}
		plaintext = c.buf
	} else {
		if len(in) == 0 || len(in) > c.params.MaxPlaintextSize {
			return 0, fmt.Errorf("sm2pke: enc_ctx_finish: %w", ErrInvalidArgument)
		}
		plaintext = in
	}

	der, err := Encrypt(c.pub, plaintext, c.params)
	c.teardown()
	if err != nil {
		return 0, err
	}
	return copy(out, der), nil
}

func (c *EncCtx) teardown() {
	wipe.Bytes(c.buf)
	c.buf = nil
	c.done = true
}

// DecCtx is the decrypt-side counterpart of EncCtx: accumulates DER
// ciphertext bytes up to maxCiphertextSize(params), then decrypts in one
// shot on Finish.
type DecCtx struct {
	priv   *big.Int
	params Params
	buf    []byte
	done   bool
}

// NewDecCtx initializes a streaming decrypt context for priv. priv is
// copied so the context owns private key material it can wipe on
// teardown without touching the caller's original scalar.
func NewDecCtx(priv *big.Int, p Params) (*DecCtx, error) {
	if priv == nil {
		return nil, fmt.Errorf("sm2pke: dec_ctx_init: %w", ErrInvalidArgument)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &DecCtx{
		priv:   new(big.Int).Set(priv),
		params: p,
		buf:    make([]byte, 0, maxCiphertextSize(p)),
	}, nil
}

// Update appends in to the accumulator, or reports the size-query mode
// (nil out, *outlen == 0) exactly as EncCtx.Update does.
func (c *DecCtx) Update(in []byte, out []byte) (outlen int, err error) {
	if c.done {
		return 0, fmt.Errorf("sm2pke: dec_ctx_update: %w", ErrInvalidArgument)
	}
	max := maxCiphertextSize(c.params)
	if len(c.buf) > max {
		return 0, fmt.Errorf("sm2pke: dec_ctx_update: %w", ErrTooLarge)
	}
	if out == nil {
		return 0, nil
	}
	if in != nil {
		if len(in) > max-len(c.buf) {
			return 0, fmt.Errorf("sm2pke: dec_ctx_update: %w", ErrTooLarge)
		}
		c.buf = append(c.buf, in...)
	}
	return 0, nil
}

// Finish appends any trailing in, then runs Decrypt over the accumulated
// DER ciphertext. A nil out reports the upper bound MaxPlaintextSize
// without consuming in.
func (c *DecCtx) Finish(in []byte, out []byte) (outlen int, err error) {
	if c.done {
		return 0, fmt.Errorf("sm2pke: dec_ctx_finish: %w", ErrInvalidArgument)
	}
	max := maxCiphertextSize(c.params)
	if len(c.buf) > max {
		return 0, fmt.Errorf("sm2pke: dec_ctx_finish: %w", ErrTooLarge)
	}
	if out == nil {
		return c.params.MaxPlaintextSize, nil
	}

	var ciphertext []byte
	if len(c.buf) > 0 {
		if in != nil {
			if len(in) > max-len(c.buf) {
				return 0, fmt.Errorf("sm2pke: dec_ctx_finish: %w", ErrTooLarge)
			}
			c.buf = append(c.buf, in...)
		}
		ciphertext = c.buf
	} else {
		if len(in) == 0 || len(in) > max {
			return 0, fmt.Errorf("sm2pke: dec_ctx_finish: %w", ErrInvalidArgument)
		}
		ciphertext = in
	}

	plaintext, err := Decrypt(c.priv, ciphertext, c.params)
	c.teardown()
	if err != nil {
		return 0, err
	}
	return copy(out, plaintext), nil
}

func (c *DecCtx) teardown() {
	wipe.Bytes(c.buf)
	c.buf = nil
	wipe.BigInt(c.priv)
	c.priv = nil
	c.done = true
}
