// SPDX-License-Identifier: MIT

package planar

import "github.com/pkg/errors"

// Threading errors through every ring trace would bury the algorithm. A
// broken trace can only come from a defect, so it panics with an
// *InvariantError and the public API of the caller recovers it.

// InvariantError reports a violated graph invariant: a ring trace that never
// returns to its start, a missing next pointer, an edge claimed by two rings,
// or a mutation after ring extraction.
type InvariantError struct {
	err error
}

// Error implements error.
func (e *InvariantError) Error() string {
	return "planar: invariant violated: " + e.err.Error()
}

// Unwrap returns the underlying error, which carries a stack trace.
func (e *InvariantError) Unwrap() error { return e.err }

// fatalf panics with an *InvariantError.
func fatalf(format string, args ...interface{}) {
	panic(&InvariantError{err: errors.Errorf(format, args...)})
}

// Recover converts a recovered *InvariantError into an error. It returns nil
// for a nil r and re-panics with anything else.
//
//	defer func() {
//		if err := planar.Recover(recover()); err != nil {
//			...
//		}
//	}()
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if ie, ok := r.(*InvariantError); ok {
		return ie
	}
	panic(r)
}
