// Package grouping provides a generic group-and-reduce container.
//
// It maps group keys to incrementally reduced values: items are fed in one at
// a time, a key extractor decides which group each item belongs to, and a
// Collector folds the item into that group's running value. The default
// Collector appends items to a slice, but collectors for counting, summing
// and picking extremes are provided, and any Start/Reduce pair works.
//
// For one-shot use without the container, see GroupBy and GroupByReduce.
package grouping
