package resumes

import "errors"

var (
	// ErrInvalidInput marks client-fault validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMetadataSave marks a metadata write that failed after the blob was
	// already stored. There is no compensating rollback.
	ErrMetadataSave = errors.New("saving resume metadata failed")
)
