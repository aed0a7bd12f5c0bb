package sorters

import (
	"fmt"
	"time"

	"github.com/desertwitch/lst/internal/schema"
)

// TimeKey is the timestamp a [TimeSorter] sorts by.
type TimeKey int

const (
	// ByCreated sorts by creation (birth) time.
	ByCreated TimeKey = iota

	// ByModified sorts by last modification time.
	ByModified
)

func (k TimeKey) String() string {
	switch k {
	case ByCreated:
		return "ctime"
	case ByModified:
		return "mtime"
	default:
		return fmt.Sprintf("TimeKey(%d)", int(k))
	}
}

// TimeSorter sorts entries by a timestamp, newest first (or oldest first when
// reversed). Entries with equal timestamps end up in no particular order.
type TimeSorter[T schema.TimedEntry] struct {
	key     TimeKey
	reverse bool
}

// NewTimeSorter returns a pointer to a new [TimeSorter].
func NewTimeSorter[T schema.TimedEntry](key TimeKey, reverse bool) *TimeSorter[T] {
	return &TimeSorter[T]{
		key:     key,
		reverse: reverse,
	}
}

// Sort sorts the buffer by the configured timestamp. If the timestamp of any
// entry cannot be retrieved, [ErrSortKey] is returned and the buffer is left
// unmodified.
func (s *TimeSorter[T]) Sort(buffer []T) error {
	err := sortByKey(buffer, s.timeOf, func(a, b time.Time) int {
		if s.reverse {
			return a.Compare(b)
		}

		return b.Compare(a)
	})
	if err != nil {
		return fmt.Errorf("(sorters-time) %w", err)
	}

	return nil
}

func (s *TimeSorter[T]) timeOf(e T) (time.Time, error) {
	var ts time.Time
	var err error

	switch s.key {
	case ByCreated:
		ts, err = e.CreatedAt()
	case ByModified:
		ts, err = e.ModifiedAt()
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownTimeKey, s.key)
	}

	if err != nil {
		return time.Time{}, fmt.Errorf("%w (%s): %s: %w", ErrSortKey, s.key, e.GetName(), err)
	}

	return ts, nil
}
