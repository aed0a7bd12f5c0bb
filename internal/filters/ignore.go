package filters

import (
	"fmt"
	"path/filepath"

	"github.com/desertwitch/lst/internal/schema"
)

// IgnoreFilter removes all entries with a display name matching any of its
// shell patterns, in the syntax of [filepath.Match].
type IgnoreFilter[T schema.Entry] struct {
	patterns []string
}

// NewIgnoreFilter returns a pointer to a new [IgnoreFilter]. All patterns are
// checked for syntax errors upfront, returning [ErrBadPattern] if needed.
func NewIgnoreFilter[T schema.Entry](patterns ...string) (*IgnoreFilter[T], error) {
	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("(filters-ignore) %w: %q: %w", ErrBadPattern, pattern, err)
		}
	}

	return &IgnoreFilter[T]{
		patterns: append([]string(nil), patterns...),
	}, nil
}

// Patterns returns a copy of the patterns of the [IgnoreFilter].
func (f *IgnoreFilter[T]) Patterns() []string {
	return append([]string(nil), f.patterns...)
}

// Filter removes all entries with a display name matching any of the patterns.
func (f *IgnoreFilter[T]) Filter(buffer []T) ([]T, error) {
	return swapRemove(buffer, func(e T) (bool, error) {
		for _, pattern := range f.patterns {
			matched, err := filepath.Match(pattern, e.GetName())
			if err != nil {
				return false, fmt.Errorf("(filters-ignore) %w: %q: %w", ErrBadPattern, pattern, err)
			}
			if matched {
				return true, nil
			}
		}

		return false, nil
	})
}
