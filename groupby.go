package grouping

// GroupBy partitions items by the extracted key and returns the plain
// mapping from key to the group's items, in one shot. It is a shortcut for
// building a Collect Reducer and taking its data.
func GroupBy[T any, K comparable](items []T, keyFn func(T) K) map[K][]T {
	return Collect(items, keyFn).Data()
}

// GroupByReduce is GroupBy with a custom Collector: the result maps each key
// to the left fold of the group's items.
func GroupByReduce[T any, K comparable, V any](items []T, keyFn func(T) K, coll Collector[T, V]) map[K]V {
	return New(items, keyFn, coll).Data()
}

// Reusable returns a function that runs GroupBy with the key extractor baked
// in. Each call folds its own dataset; nothing carries over between calls.
func Reusable[T any, K comparable](keyFn func(T) K) func([]T) map[K][]T {
	return func(items []T) map[K][]T {
		return GroupBy(items, keyFn)
	}
}

// ReusableReduce returns a function that runs GroupByReduce with the key
// extractor and Collector baked in.
func ReusableReduce[T any, K comparable, V any](keyFn func(T) K, coll Collector[T, V]) func([]T) map[K]V {
	return func(items []T) map[K]V {
		return GroupByReduce(items, keyFn, coll)
	}
}
