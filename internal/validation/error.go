package validation

import "errors"

var (
	// ErrInvalidLocation occurs when a location does not exist or is not a
	// regular file or directory (in the respective strictness).
	ErrInvalidLocation = errors.New("location does not exist or is not a file or directory")

	// ErrEmptyLocation occurs when an empty location is given for validation.
	ErrEmptyLocation = errors.New("location is empty")
)
