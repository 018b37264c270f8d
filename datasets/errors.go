// Package datasets loads and persists the gob-encoded graph/feature input
// files. The fit snapshot written between CLI runs is not handled here; it
// lives in internal/cli.
package datasets

import "errors"

// ErrInputNotFound indicates a dataset file does not exist on disk.
var ErrInputNotFound = errors.New("datasets: input file not found")

// ErrInputMalformed indicates a dataset file exists but failed to decode.
var ErrInputMalformed = errors.New("datasets: input file malformed")

// ErrDimensionMismatch indicates a Features row count does not match the
// owning Graph's node count.
var ErrDimensionMismatch = errors.New("datasets: feature row count does not match node count")
