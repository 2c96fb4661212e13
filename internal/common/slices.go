package common

import (
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K ~string, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// Set builds a lookup set from the given items.
func Set[S ~[]E, E comparable](items S) map[E]struct{} {
	set := make(map[E]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}

	return set
}
