package engine

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Each is wrapped by a richer struct error below:
// a plain sentinel for errors.Is checks plus a wrapped struct carrying
// diagnostic context.
var (
	// ErrInput covers missing/malformed input, an unparseable threshold
	// expression, or a missing required clusterer parameter. Fatal,
	// surfaced before any processing.
	ErrInput = errors.New("engine: invalid input")

	// ErrClusterer covers an external clusterer subprocess failure or
	// unreadable output. Fatal for the current run, never retried.
	ErrClusterer = errors.New("engine: clusterer failed")

	// ErrInternalInvariant covers a broken invariant inside the engine
	// itself: a mincut with a zero-size partition where one shouldn't be,
	// a compact-id map that lost bijectivity, etc. Indicates a bug.
	ErrInternalInvariant = errors.New("engine: internal invariant violated")
)

// InputError wraps ErrInput with the offending input's description.
type InputError struct {
	What string
	Err  error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("engine: invalid input (%s): %v", e.What, e.Err)
	}
	return fmt.Sprintf("engine: invalid input: %s", e.What)
}

func (e *InputError) Unwrap() error { return ErrInput }

// ClustererError wraps ErrClusterer with the job it was raised for.
type ClustererError struct {
	ClusterIndex string
	Err          error
}

func (e *ClustererError) Error() string {
	return fmt.Sprintf("engine: clusterer failed on cluster %q: %v", e.ClusterIndex, e.Err)
}

func (e *ClustererError) Unwrap() error { return ErrClusterer }

// InternalInvariantError wraps ErrInternalInvariant with the violated
// invariant's description.
type InternalInvariantError struct {
	Invariant string
	Detail    string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("engine: internal invariant violated (%s): %s", e.Invariant, e.Detail)
}

func (e *InternalInvariantError) Unwrap() error { return ErrInternalInvariant }
