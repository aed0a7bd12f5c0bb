package filters

import "fmt"

// Predicate decides if an element is to be removed from the buffer. Any
// returned error aborts the filtering.
type Predicate[T any] func(item T) (bool, error)

// FuncFilter removes all elements matching a caller-provided [Predicate].
type FuncFilter[T any] struct {
	remove Predicate[T]
}

// NewFuncFilter returns a pointer to a new [FuncFilter], returning
// [ErrNilPredicate] if no [Predicate] was given.
func NewFuncFilter[T any](remove Predicate[T]) (*FuncFilter[T], error) {
	if remove == nil {
		return nil, fmt.Errorf("(filters-func) %w", ErrNilPredicate)
	}

	return &FuncFilter[T]{remove: remove}, nil
}

// Filter removes all elements matching the [Predicate].
func (f *FuncFilter[T]) Filter(buffer []T) ([]T, error) {
	filtered, err := swapRemove(buffer, f.remove)
	if err != nil {
		return filtered, fmt.Errorf("(filters-func) %w", err)
	}

	return filtered, nil
}
