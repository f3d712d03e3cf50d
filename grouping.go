package grouping

import (
	"iter"
	"maps"
	"reflect"

	"github.com/mitchellh/copystructure"

	"go.ytsaurus.tech/library/go/core/log"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

// ErrKeyNotFound is returned by Get for keys that no added item has mapped to.
var ErrKeyNotFound = xerrors.NewSentinel("grouping: key not found")

// Identity returns its argument and is the key extractor to use when items
// are their own group keys.
func Identity[T comparable](item T) T {
	return item
}

// Reducer groups items of type T by a key of type K and folds each group into
// a single value of type V.
//
// Every value in the container is the left fold of the Collector's Reduce
// over the group's items in the order they were added, seeded by one Start
// call. The fold is deterministic for a fixed input order even when Reduce is
// not associative or commutative.
//
// A Reducer is not safe for concurrent use.
type Reducer[T any, K comparable, V any] struct {
	data  map[K]V
	order []K

	keyFn func(T) K
	coll  Collector[T, V]

	log log.Logger
}

// New makes a Reducer with the given key extractor and Collector and adds
// initial items one at a time in order. items may be nil.
func New[T any, K comparable, V any](items []T, keyFn func(T) K, coll Collector[T, V], opts ...Option) *Reducer[T, K, V] {
	o := newOptions(opts)

	r := &Reducer[T, K, V]{
		data:  make(map[K]V),
		keyFn: keyFn,
		coll:  coll,
		log:   o.logger,
	}
	r.AddAll(items)
	return r
}

// Collect makes a Reducer that gathers each group's items into a slice, the
// default reduction. Use New for anything else.
func Collect[T any, K comparable](items []T, keyFn func(T) K, opts ...Option) *Reducer[T, K, []T] {
	return New(items, keyFn, ToSlice[T](), opts...)
}

// Add folds a single item into its group, creating the group if the item's
// key has not been seen before.
func (r *Reducer[T, K, V]) Add(item T) {
	key := r.keyFn(item)

	cur, ok := r.data[key]
	if !ok {
		cur = r.coll.Start()
		r.order = append(r.order, key)
		r.log.Debug("new group", log.Any("key", key), log.Any("groups", len(r.order)))
	}
	r.data[key] = r.coll.Reduce(cur, item)
}

// AddAll folds every item of the slice in order. A nil slice is a no-op.
func (r *Reducer[T, K, V]) AddAll(items []T) {
	for _, item := range items {
		r.Add(item)
	}
}

// Get returns the reduced value of the given group. For an absent key it
// returns an error matching ErrKeyNotFound.
func (r *Reducer[T, K, V]) Get(key K) (V, error) {
	v, ok := r.data[key]
	if !ok {
		var zero V
		return zero, xerrors.Errorf("grouping: no group for key %v: %w", key, ErrKeyNotFound)
	}
	return v, nil
}

// GetOrDefault returns the reduced value of the given group, or fallback for
// an absent key.
func (r *Reducer[T, K, V]) GetOrDefault(key K, fallback V) V {
	if v, ok := r.data[key]; ok {
		return v
	}
	return fallback
}

// Contains reports whether any added item has mapped to the given key.
func (r *Reducer[T, K, V]) Contains(key K) bool {
	_, ok := r.data[key]
	return ok
}

// Len returns the number of distinct groups.
func (r *Reducer[T, K, V]) Len() int {
	return len(r.data)
}

// Keys returns the group keys in the order each key was first seen.
func (r *Reducer[T, K, V]) Keys() []K {
	keys := make([]K, len(r.order))
	copy(keys, r.order)
	return keys
}

// Values returns the reduced values ordered by when their key was first seen.
func (r *Reducer[T, K, V]) Values() []V {
	values := make([]V, 0, len(r.order))
	for _, key := range r.order {
		values = append(values, r.data[key])
	}
	return values
}

// All iterates over (key, reduced value) pairs in the order each key was
// first seen.
func (r *Reducer[T, K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range r.order {
			if !yield(key, r.data[key]) {
				return
			}
		}
	}
}

// Equal reports whether both containers hold equal key to value mappings.
// The key extractors and Collectors take no part in the comparison.
func (r *Reducer[T, K, V]) Equal(other *Reducer[T, K, V]) bool {
	if other == nil {
		return false
	}
	return r.EqualData(other.data)
}

// EqualData reports whether the container's mapping equals the given plain
// map.
func (r *Reducer[T, K, V]) EqualData(data map[K]V) bool {
	return reflect.DeepEqual(r.data, data)
}

// Data returns the live mapping the container mutates in place.
//
// The returned map aliases internal state: writes to it feed straight into
// future folds and bypass the first-seen key order, so treat it as read-only.
// Use Snapshot to get a map that is safe to change.
func (r *Reducer[T, K, V]) Data() map[K]V {
	return r.data
}

// Snapshot returns a copy of the current mapping. Later Add calls do not
// show up in it. The copy is shallow; reduced values that are themselves
// pointers or slices still alias the container's.
func (r *Reducer[T, K, V]) Snapshot() map[K]V {
	return maps.Clone(r.data)
}

// Clone returns an independent Reducer with a deep copy of the current
// mapping and the same key extractor and Collector. Folding into the clone
// never touches the original.
func (r *Reducer[T, K, V]) Clone() *Reducer[T, K, V] {
	clone := &Reducer[T, K, V]{
		data:  copystructure.Must(copystructure.Copy(r.data)).(map[K]V),
		order: append([]K(nil), r.order...),
		keyFn: r.keyFn,
		coll:  r.coll,
		log:   r.log,
	}
	return clone
}
