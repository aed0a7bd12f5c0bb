package sorters

import "slices"

type keyedItem[T any, K any] struct {
	item T
	key  K
}

// sortByKey retrieves the key of every item exactly once, then sorts the items
// by their keys using an unstable sort. If any key retrieval fails, the items
// remain unmodified.
func sortByKey[T any, K any](items []T, keyOf func(T) (K, error), cmp func(a, b K) int) error {
	keyed := make([]keyedItem[T, K], len(items))

	for i, item := range items {
		key, err := keyOf(item)
		if err != nil {
			return err
		}
		keyed[i] = keyedItem[T, K]{item: item, key: key}
	}

	slices.SortFunc(keyed, func(a, b keyedItem[T, K]) int {
		return cmp(a.key, b.key)
	})

	for i := range keyed {
		items[i] = keyed[i].item
	}

	return nil
}
