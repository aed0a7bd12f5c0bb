package filters

import "errors"

var (
	// ErrBadPattern occurs when an ignore pattern is malformed.
	ErrBadPattern = errors.New("malformed ignore pattern")

	// ErrNilPredicate occurs when a [FuncFilter] is built without a predicate.
	ErrNilPredicate = errors.New("predicate is nil")
)
