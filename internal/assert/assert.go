// Package assert implements the single OutOfRange assertion discipline
// used by the buffer engine: an out-of-range index is a caller bug, not a
// recoverable error, so it panics instead of returning one.
package assert

import "fmt"

// Indexf panics with a formatted message if cond is false. Callers pass the
// condition that must hold (e.g. `0 <= c && c <= len(line)`); the message
// should name the value and the bound that was violated.
func Indexf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("vis: index out of range: "+format, args...))
	}
}

// Never panics unconditionally; used for branches the caller's contract
// says cannot be reached.
func Never(format string, args ...any) {
	panic(fmt.Sprintf("vis: unreachable: "+format, args...))
}
