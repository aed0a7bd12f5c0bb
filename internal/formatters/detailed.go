package formatters

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertwitch/lst/internal/schema"
	"github.com/dustin/go-humanize"
)

// DetailedFormatter renders one tab-separated line per entry, holding its
// kind, its human-readable size, its human-readable modification time
// (relative to now) and its display name.
type DetailedFormatter[T schema.DetailedEntry] struct {
	now func() time.Time
}

// NewDetailedFormatter returns a pointer to a new [DetailedFormatter].
func NewDetailedFormatter[T schema.DetailedEntry]() *DetailedFormatter[T] {
	return &DetailedFormatter[T]{
		now: time.Now,
	}
}

// Format renders the detailed line of each entry. Any failure to retrieve the
// metadata of an entry is returned as [ErrFormat].
func (f *DetailedFormatter[T]) Format(buffer []T) (string, error) {
	var sb strings.Builder

	now := f.now()

	for _, e := range buffer {
		kind, err := e.Kind()
		if err != nil {
			return "", fmt.Errorf("(formatters-detailed) %w: %s: %w", ErrFormat, e.GetName(), err)
		}

		size, err := e.Size()
		if err != nil {
			return "", fmt.Errorf("(formatters-detailed) %w: %s: %w", ErrFormat, e.GetName(), err)
		}

		modified, err := e.ModifiedAt()
		if err != nil {
			return "", fmt.Errorf("(formatters-detailed) %w: %s: %w", ErrFormat, e.GetName(), err)
		}

		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\n",
			kind,
			humanize.Bytes(size),
			humanize.RelTime(modified, now, "ago", "from now"),
			e.GetName(),
		)
	}

	return sb.String(), nil
}
