package filters

import (
	"strings"

	"github.com/desertwitch/lst/internal/schema"
)

// DotFilesFilter removes all entries with a display name beginning with ".".
type DotFilesFilter[T schema.Entry] struct{}

// NewDotFilesFilter returns a pointer to a new [DotFilesFilter].
func NewDotFilesFilter[T schema.Entry]() *DotFilesFilter[T] {
	return &DotFilesFilter[T]{}
}

// Filter removes all entries with a display name beginning with ".".
func (*DotFilesFilter[T]) Filter(buffer []T) ([]T, error) {
	return swapRemove(buffer, func(e T) (bool, error) {
		return strings.HasPrefix(e.GetName(), "."), nil
	})
}
