package sorters

import (
	"strings"

	"github.com/desertwitch/lst/internal/schema"
)

// NameSorter sorts entries lexically by their display name, ascending (or
// descending when reversed).
type NameSorter[T schema.Entry] struct {
	reverse bool
}

// NewNameSorter returns a pointer to a new [NameSorter].
func NewNameSorter[T schema.Entry](reverse bool) *NameSorter[T] {
	return &NameSorter[T]{reverse: reverse}
}

// Sort sorts the buffer by display name.
func (s *NameSorter[T]) Sort(buffer []T) error {
	return sortByKey(buffer, func(e T) (string, error) {
		return e.GetName(), nil
	}, func(a, b string) int {
		if s.reverse {
			return strings.Compare(b, a)
		}

		return strings.Compare(a, b)
	})
}
