package edgar

import "errors"

// The error kinds a caller can get back from this package. They are
// sentinels: test them with errors.Is, the wrapped message carries the
// detail.
var (
	// ErrInvalidInput marks an empty or malformed identifier supplied by
	// the caller.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a well-formed identifier that has no entry in the
	// loaded dataset.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a value that violates a data-model invariant at
	// construction time.
	ErrValidation = errors.New("validation failed")
)
