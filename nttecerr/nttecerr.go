// Package nttecerr defines the error kinds surfaced by the nttec packages.
//
// InvalidArgument and OutOfRange and NoSolution are recoverable domain
// results: callers are expected to check for them with errors.Is and react.
// AssertionFailure is reserved for precondition violations (programming
// bugs) and is normally raised with panic rather than returned.
package nttecerr

import "errors"

var (
	// ErrInvalidArgument signals a size mismatch or an out-of-domain input
	// to an operation that validates its arguments.
	ErrInvalidArgument = errors.New("nttec: invalid argument")

	// ErrOutOfRange signals an access beyond a buffer's length via a
	// checked accessor.
	ErrOutOfRange = errors.New("nttec: out of range")

	// ErrNoSolution signals that a discrete log, or a code-length search,
	// has no answer. This is a domain value, not a bug.
	ErrNoSolution = errors.New("nttec: no solution")

	// ErrAssertionFailure signals a precondition violation: a zero
	// modulus, an unchecked out-of-bounds access, or a failed
	// primitive-root search. Treated as a programming bug.
	ErrAssertionFailure = errors.New("nttec: assertion failure")
)
