package filesystem

import "errors"

var (
	// ErrReadDirectory occurs when a location, or the parent directory of a
	// file location, cannot be listed. It is fatal for the respective read.
	ErrReadDirectory = errors.New("failed to list directory")

	// ErrNoCreationTime occurs when the underlying filesystem does not
	// report a creation (birth) time for an [Entry].
	ErrNoCreationTime = errors.New("creation time not available")

	// ErrNilEntry occurs when metadata is requested from a nil [Entry].
	ErrNilEntry = errors.New("entry is nil")
)
