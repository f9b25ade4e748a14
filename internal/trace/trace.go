// Package trace wraps godebug.Printf behind a bool gate: call sites pass
// their package-level trace const (traceCore, dbTest) as the first
// argument, and only format and args are forwarded to godebug.Printf.
package trace

import (
	"github.com/pschlump/godebug"
)

// Printf prints through godebug when on is true; a no-op otherwise.
func Printf(on bool, format string, args ...interface{}) {
	if !on {
		return
	}
	godebug.Printf(format, args...)
}
