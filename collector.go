package grouping

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"go.ytsaurus.tech/library/go/ptr"
)

// Collector pairs a zero-value factory with a reduction step. Start produces
// the seed for a new group; Reduce folds one more item into the group's
// running value and returns the result.
//
// Both functions are treated as opaque: the container never inspects or
// validates them, and anything they panic with propagates to the caller.
type Collector[T, V any] struct {
	Start  func() V
	Reduce func(V, T) V
}

// Number is a constraint covering the built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// ToSlice collects each group's items into a slice in insertion order. Every
// group starts from a fresh empty slice.
func ToSlice[T any]() Collector[T, []T] {
	return Collector[T, []T]{
		Start:  func() []T { return []T{} },
		Reduce: func(acc []T, item T) []T { return append(acc, item) },
	}
}

// Count counts the items of each group.
func Count[T any]() Collector[T, int] {
	return Collector[T, int]{
		Start:  func() int { return 0 },
		Reduce: func(acc int, _ T) int { return acc + 1 },
	}
}

// Sum adds up each group's items.
func Sum[N Number]() Collector[N, N] {
	return SumTransform(func(v N) N { return v })
}

// SumTransform transforms each item to a Number and adds it to the group's
// total.
func SumTransform[T any, N Number](fn func(T) N) Collector[T, N] {
	return Collector[T, N]{
		Start:  func() N { return 0 },
		Reduce: func(acc N, item T) N { return acc + fn(item) },
	}
}

// Min keeps each group's smallest item. The value is nil until the group's
// first item arrives.
func Min[T cmp.Ordered]() Collector[T, *T] {
	return Collector[T, *T]{
		Start: func() *T { return nil },
		Reduce: func(acc *T, item T) *T {
			if acc == nil || item < *acc {
				return ptr.T(item)
			}
			return acc
		},
	}
}

// Max keeps each group's largest item. The value is nil until the group's
// first item arrives.
func Max[T cmp.Ordered]() Collector[T, *T] {
	return Collector[T, *T]{
		Start: func() *T { return nil },
		Reduce: func(acc *T, item T) *T {
			if acc == nil || item > *acc {
				return ptr.T(item)
			}
			return acc
		},
	}
}

// First keeps each group's first item.
func First[T any]() Collector[T, *T] {
	return Collector[T, *T]{
		Start: func() *T { return nil },
		Reduce: func(acc *T, item T) *T {
			if acc == nil {
				return ptr.T(item)
			}
			return acc
		},
	}
}

// Last keeps each group's most recent item.
func Last[T any]() Collector[T, *T] {
	return Collector[T, *T]{
		Start:  func() *T { return nil },
		Reduce: func(_ *T, item T) *T { return ptr.T(item) },
	}
}
