package filters

// swapRemove removes all items matching remove from the slice and returns the
// shortened slice. Each removal costs O(1): the removed item is overwritten by
// the last item and the slice is truncated, so the order of the remaining
// items is not preserved. Vacated slots are zeroed to not retain references.
func swapRemove[T any](items []T, remove func(T) (bool, error)) ([]T, error) {
	var zero T

	for i := 0; i < len(items); {
		matched, err := remove(items[i])
		if err != nil {
			return items, err
		}

		if !matched {
			i++

			continue
		}

		last := len(items) - 1
		items[i] = items[last]
		items[last] = zero
		items = items[:last]
	}

	return items, nil
}
