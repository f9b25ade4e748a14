package sm2pke

import "errors"

// Sentinel errors for the public boundary, one per kind in spec.md §7.
// Call sites wrap these with fmt.Errorf("sm2pke: <op>: %w", ErrX) for
// context; callers compare with errors.Is.
var (
	ErrInvalidArgument  = errors.New("sm2pke: invalid argument")
	ErrMalformedDER     = errors.New("sm2pke: malformed der")
	ErrLengthOutOfRange = errors.New("sm2pke: length out of range")
	ErrPointNotOnCurve  = errors.New("sm2pke: point not on curve")
	ErrZeroKeystream    = errors.New("sm2pke: kdf produced an all-zero keystream")
	ErrHashMismatch     = errors.New("sm2pke: hash mismatch")
	ErrRngFailure       = errors.New("sm2pke: random scalar generation failed")
	ErrExhaustedRetries = errors.New("sm2pke: exhausted retries")
	ErrTooLarge         = errors.New("sm2pke: accumulator capacity exceeded")
)
