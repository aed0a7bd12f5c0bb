package sorters

import "errors"

var (
	// ErrSortKey occurs when the sort key of an element cannot be retrieved.
	// The buffer is left unmodified in that case.
	ErrSortKey = errors.New("failed to retrieve sort key")

	// ErrUnknownTimeKey occurs when a [TimeKey] is not known.
	ErrUnknownTimeKey = errors.New("unknown time key")
)
