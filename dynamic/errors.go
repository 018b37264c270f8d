package dynamic

import "errors"

// ErrUpdateStreamMalformed indicates the update stream failed to parse:
// invalid JSON, a missing or unrecognized field, an unknown operation
// token, a self-loop update, or an endpoint absent from the summary's
// membership map. The whole stream is rejected; there is no
// partial application.
var ErrUpdateStreamMalformed = errors.New("dynamic: update stream malformed")

// ErrInvariantViolation indicates the promotion/demotion invariant
// broke after applying the stream: some tracked pair is simultaneously (or
// neither) a superedge-with-too-many-missing and a non-superedge-with-too-
// many-present. This is internal and indicates a bug, never a malformed
// input.
var ErrInvariantViolation = errors.New("dynamic: invariant violation")
