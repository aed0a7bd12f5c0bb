package formatters

import (
	"strings"

	"github.com/desertwitch/lst/internal/schema"
)

// NameOnlyFormatter renders one line per entry, holding just its display
// name. An empty buffer renders as an empty string.
type NameOnlyFormatter[T schema.Entry] struct{}

// NewNameOnlyFormatter returns a pointer to a new [NameOnlyFormatter].
func NewNameOnlyFormatter[T schema.Entry]() *NameOnlyFormatter[T] {
	return &NameOnlyFormatter[T]{}
}

// Format renders the display name of each entry followed by a newline.
func (*NameOnlyFormatter[T]) Format(buffer []T) (string, error) {
	var sb strings.Builder

	for _, e := range buffer {
		sb.WriteString(e.GetName())
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
