package schema

// Validator checks that a location denotes something usable before any read
// is attempted. It must not have any side effects.
type Validator interface {
	// Validate returns an error if the location is not usable.
	Validate(location string) error
}

// Reader resolves a location into a sequence of [T].
type Reader[T any] interface {
	// Read appends the entries found at location to buffer and returns the
	// extended buffer. The buffer may already hold elements, which are kept.
	Read(location string, buffer []T) ([]T, error)
}

// Filter removes elements from a buffer of [T].
type Filter[T any] interface {
	// Filter removes, in place, every element matching the filter's predicate
	// and returns the shortened buffer. The relative order of the remaining
	// elements is not guaranteed to be preserved.
	Filter(buffer []T) ([]T, error)
}

// Sorter reorders a buffer of [T].
type Sorter[T any] interface {
	// Sort reorders the buffer in place. Sorting need not be stable. If the
	// sort key of any element cannot be established, an error is returned.
	Sort(buffer []T) error
}

// Formatter renders a buffer of [T] into a string.
type Formatter[T any] interface {
	// Format renders the buffer in its given order. It must not modify the
	// buffer.
	Format(buffer []T) (string, error)
}
