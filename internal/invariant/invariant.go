// Package invariant provides fail-fast checks for conditions that indicate
// programmer error rather than recoverable run-time failures.
//
// A failed check panics with a formatted diagnostic. Violations are never
// part of a component's contract: they signal misuse (invalid construction
// parameters, broken accounting at teardown, operations on released
// handles) and are not meant to be recovered from.
package invariant

import "fmt"

// Assertf panics with the formatted message if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
