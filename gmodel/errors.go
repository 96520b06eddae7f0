package gmodel

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap these with fmt.Errorf("...: %w", gmodel.ErrX)
// at the call site so callers can branch with errors.Is against the kind
// while still getting a specific message.
var (
	// ErrInvalidInput covers malformed caller input: an empty edge stream,
	// a non-graphical degree sequence, a swap naming the same edge twice,
	// an out-of-range edge id, or a node outside the 36-bit address space.
	ErrInvalidInput = errors.New("gmodel: invalid input")

	// ErrResourceExhausted is returned when a sorter or priority queue's
	// byte budget is exceeded while it is still receiving pushes.
	ErrResourceExhausted = errors.New("gmodel: resource exhausted")

	// ErrInvariant marks an internal assertion failure (e.g. a successor
	// swap id that is not strictly greater than its predecessor, or fewer
	// than two state messages reaching a swap in pass D). Fatal: the run
	// aborts and no partial output is published.
	ErrInvariant = errors.New("gmodel: invariant violated")
)

// InvalidInputf wraps ErrInvalidInput with a formatted detail message.
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidInput}, args...)...)
}

// ResourceExhaustedf wraps ErrResourceExhausted with a formatted detail.
func ResourceExhaustedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrResourceExhausted}, args...)...)
}

// Invariantf wraps ErrInvariant with a formatted detail message.
func Invariantf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvariant}, args...)...)
}
