package reward

import "errors"

// ErrSameSupernode indicates Evaluate was asked to merge a supernode with
// itself, which is never a valid candidate pair.
var ErrSameSupernode = errors.New("reward: cannot evaluate a supernode against itself")

// ErrInvariantViolation indicates a Patch staged a mutation against an edge
// that no longer exists in the supergraph by the time it was applied — an
// internal bug, never a malformed input.
var ErrInvariantViolation = errors.New("reward: invariant violation")
