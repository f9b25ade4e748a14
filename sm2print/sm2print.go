// Package sm2print is the diagnostic pretty-printer of spec.md §6: it
// parses a DER SM2 ciphertext and formats each field as an indented hex
// label. Purely for human inspection — never used on the encrypt/decrypt
// path. Field labels and indentation follow GmSSL's sm2_ciphertext_print
// (XCoordinate, YCoordinate, HASH, CipherText under a 4-space-indented
// label).
package sm2print

import (
	"encoding/hex"
	"fmt"
	"io"

	sm2pke "github.com/gmt32918/sm2pke"
)

// Fprint parses ciphertextDER under p's plaintext-size bounds and writes a
// labeled hex dump of its fields to w.
func Fprint(w io.Writer, label string, ciphertextDER []byte, p sm2pke.Params) error {
	c, err := sm2pke.CiphertextFromDER(ciphertextDER, p)
	if err != nil {
		return fmt.Errorf("sm2print: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", label); err != nil {
		return err
	}
	const ind = "    "
	if _, err := fmt.Fprintf(w, "%sXCoordinate: %s\n", ind, hex.EncodeToString(c.Point[:32])); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%sYCoordinate: %s\n", ind, hex.EncodeToString(c.Point[32:])); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%sHASH: %s\n", ind, hex.EncodeToString(c.Hash[:])); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%sCipherText: %s\n", ind, hex.EncodeToString(c.CipherText[:c.CipherTextSize])); err != nil {
		return err
	}
	return nil
}
