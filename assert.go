package convexhull

import "fmt"

// assertf panics with a formatted message when cond is false. Reserved for
// conditions that indicate a bug in this package's own bookkeeping (a
// broken mesh or conflict-graph invariant) rather than anything a caller
// could trigger by passing bad input; those go through ErrInvalidInput
// instead.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("convexhull: assertion failed: "+format, args...))
	}
}
