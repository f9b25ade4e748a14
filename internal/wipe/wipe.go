// Package wipe zeroes secret-bearing buffers on every exit path.
//
// Go has no language-level guarantee that a plain loop assigning zero
// survives dead-store elimination, so this mirrors the approach taken by
// most Go crypto packages: write through a loop the compiler cannot prove
// unobservable, then pin the backing array live with runtime.KeepAlive so
// the zeroing writes aren't hoisted past the call.
package wipe

import (
	"math/big"
	"runtime"
)

// Bytes zeroes b in place. Safe to call on a nil or empty slice.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// BigInt resets n to 0. math/big gives no handle on the old magnitude's
// backing words, so this only clears the value the caller can still reach
// through n; it does not scrub whatever array SetInt64 abandons.
func BigInt(n *big.Int) {
	if n == nil {
		return
	}
	n.SetInt64(0)
}
