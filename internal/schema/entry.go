package schema

import "time"

// Entry is the unit of data flowing through a [Pipeline]. It describes one
// object (of whatever backing store) by its display name and its full path.
//
// Entries are produced by a [Reader] and are immutable once produced. Stages
// may reorder or remove entries from a buffer, but never modify an entry.
type Entry interface {
	// GetName returns the display name of the [Entry].
	GetName() string

	// GetPath returns the full path of the [Entry].
	GetPath() string
}

// TimedEntry is an [Entry] that can be queried for its timestamps. The
// timestamps are retrieved lazily, so retrieval may fail at query time.
type TimedEntry interface {
	Entry

	// CreatedAt returns the creation (birth) time of the [Entry].
	CreatedAt() (time.Time, error)

	// ModifiedAt returns the last modification time of the [Entry].
	ModifiedAt() (time.Time, error)
}

// DetailedEntry is a [TimedEntry] that can also be queried for its [Kind]
// and its size in bytes.
type DetailedEntry interface {
	TimedEntry

	// Kind returns the [Kind] of the [Entry].
	Kind() (Kind, error)

	// Size returns the apparent size of the [Entry] in bytes.
	Size() (uint64, error)
}
