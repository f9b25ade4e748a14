package sm2pke

import "fmt"

// Params carries the scheme's plaintext-size bounds, supplied by the
// caller the way NewCCM takes TagSize and NonceSize rather than baking
// them in as package constants.
type Params struct {
	MinPlaintextSize int
	MaxPlaintextSize int
}

// DefaultParams matches GmSSL's SM2_MIN_PLAINTEXT_SIZE / SM2_MAX_PLAINTEXT_SIZE.
var DefaultParams = Params{MinPlaintextSize: 1, MaxPlaintextSize: 255}

// validate checks the bounds are sane; a zero-value Params is invalid.
func (p Params) validate() error {
	if p.MinPlaintextSize <= 0 || p.MaxPlaintextSize <= 0 || p.MinPlaintextSize > p.MaxPlaintextSize {
		return fmt.Errorf("sm2pke: invalid params %+v: %w", p, ErrInvalidArgument)
	}
	return nil
}

// maxCiphertextSize is the decrypt-side streaming accumulator's capacity:
// an upper bound on the DER encoding this package will accept. 66 covers
// the X/Y INTEGER contents including sign-extension bytes (2 x 33), 32
// covers C3, and the
// rest is the SEQUENCE/OCTET STRING/INTEGER tag-length overhead GmSSL's
// print buffer (uint8_t buf[512]) budgets for.
func maxCiphertextSize(p Params) int {
	return 2*33 + 32 + p.MaxPlaintextSize + 32
}

// PointSize names the DER footprint an ephemeral point's X+Y INTEGER
// encodings must sum to for EncryptFixlen. The three values correspond to
// whether either coordinate's high bit forces a leading 0x00 sign byte:
// neither (compact), exactly one (typical), or both (max).
type PointSize int

const (
	// PointSizeCompact is the DER footprint when neither X nor Y needs a
	// sign-extension byte: each INTEGER is tag(1)+length(1)+content(32).
	PointSizeCompact PointSize = pointSizeCompactBytes
	PointSizeTypical PointSize = pointSizeTypicalBytes
	PointSizeMax     PointSize = pointSizeMaxBytes
)

const (
	pointSizeCompactBytes = 68 // neither X nor Y needs a sign-extension byte
	pointSizeTypicalBytes = 69 // exactly one of X, Y needs a sign-extension byte
	pointSizeMaxBytes     = 70 // both X and Y need a sign-extension byte
)

func (ps PointSize) valid() bool {
	switch ps {
	case PointSizeCompact, PointSizeTypical, PointSizeMax:
		return true
	default:
		return false
	}
}
