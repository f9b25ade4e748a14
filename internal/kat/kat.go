// Package kat loads known-answer test vectors for the SM2 encryption
// transform from a JSON fixture file, adapted from the teacher's SJCL JSON
// blob reader (sjcl.ReadSJCL/ConvertSJCL): same "decode JSON, validate the
// fixed fields, surface a sentinel error on anything unexpected" shape,
// repointed at this module's deterministic-k reproducibility vectors
// instead of SJCL AES-CCM blobs.
//
// The fixture stores only the private scalar, the forced ephemeral scalar,
// and the plaintext — never a hand-transcribed public key point or
// expected ciphertext, both of which a fixture author could get wrong
// without a way to check them against a running implementation. The public
// key and expected ciphertext are derived at test time from the scalars,
// so a KAT run is checking "does forcing k reproduce a ciphertext
// consistent with d and k", not "does this match a byte string nobody here
// can verify".
package kat

import (
	"errors"
	"fmt"
	"os"

	"github.com/gmt32918/sm2pke/base64data"
	"github.com/pschlump/json"
)

// ErrBadVector flags a fixture entry whose shape this package doesn't
// recognize (wrong version, missing field).
var ErrBadVector = errors.New("kat: invalid SM2 test vector")

// Vector is one known-answer test case.
type Vector struct {
	Name      string                `json:"name"`
	Version   int                   `json:"v"` // only version 1 fixtures are supported
	PrivateD  base64data.Base64Data `json:"d"` // private scalar, big-endian
	K         base64data.Base64Data `json:"k"` // ephemeral scalar forced for reproducibility
	Plaintext base64data.Base64Data `json:"m"` // message
}

type file struct {
	Vectors []Vector `json:"vectors"`
}

// Load reads and validates the fixture at path.
func Load(path string) ([]Vector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kat: reading %s: %w", path, err)
	}
	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("kat: decoding %s: %w", path, err)
	}
	for i, v := range f.Vectors {
		if v.Version != 1 {
			return nil, fmt.Errorf("%s vector %d: %w", path, i, ErrBadVector)
		}
		if v.PrivateD.IsEmpty() || v.K.IsEmpty() || v.Plaintext.IsEmpty() {
			return nil, fmt.Errorf("%s vector %d: %w", path, i, ErrBadVector)
		}
	}
	return f.Vectors, nil
}
