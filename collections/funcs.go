package collections

import (
	"fmt"

	"github.com/hasbyte1/go-typex/arr"
	"github.com/hasbyte1/go-typex/query"
)

// Package-level operations whose result type differs from the element type.

// Map applies fn to every item and returns a Collection[U].
//
//	labels, err := collections.Map(c, func(n int) string { return strconv.Itoa(n) })
func Map[T, U any](c *Collection[T], fn func(T) U) (*Collection[U], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil mapper", query.ErrNilOperation)
	}
	out, err := query.ProjectFunc(c.items, func(item T) (U, bool) { return fn(item), true })
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// Sum adds up the items of a numeric collection.
func Sum[T query.Number](c *Collection[T]) T { return query.Sum(c.items) }

// SumBy adds up the numbers fn extracts from the items.
//
//	total, err := collections.SumBy(orders, func(o Order) float64 { return o.Total })
func SumBy[T any, N query.Number](c *Collection[T], fn func(T) N) (N, error) {
	return query.SumBy(c.items, fn)
}

// Contains reports whether v is one of the items.
func Contains[T comparable](c *Collection[T], v T) bool {
	return query.ContainsAny(c.items, v)
}

// ContainsAny reports whether at least one candidate is among the items.
func ContainsAny[T comparable](c *Collection[T], candidates ...T) bool {
	return query.ContainsAny(c.items, candidates...)
}

// ContainsAll reports whether every candidate is among the items.
func ContainsAll[T comparable](c *Collection[T], candidates ...T) bool {
	return query.ContainsAll(c.items, candidates...)
}

// GroupBy groups items by the key fn extracts, keeping their order within
// each group.
//
//	byDept, err := collections.GroupBy(employees, func(e Employee) string { return e.Dept })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) (map[K]*Collection[T], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil key function", query.ErrInvalidArgument)
	}
	groups := make(map[K]*Collection[T])
	for _, item := range c.items {
		k := fn(item)
		g, ok := groups[k]
		if !ok {
			g = Empty[T]()
			groups[k] = g
		}
		g.items = append(g.items, item)
	}
	return groups, nil
}

// Collapse flattens a collection of slices by one level.
//
//	collections.Collapse(collections.New([]int{1, 2}, []int{3})) // → [1 2 3]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	return wrap(arr.Collapse(c.items))
}

// Flatten recursively expands nested slices, arrays and *Collection[any] items into a
// flat Collection[any].
func Flatten[T any](c *Collection[T]) *Collection[any] {
	return FlattenDepth(c, -1)
}

// FlattenDepth expands nested slices up to depth levels below the items; a
// negative depth is unlimited.
func FlattenDepth[T any](c *Collection[T], depth int) *Collection[any] {
	items := make([]any, len(c.items))
	for i, item := range c.items {
		items[i] = unwrapNested(item)
	}
	if depth < 0 {
		return wrap(arr.Flatten(items))
	}
	return wrap(arr.FlattenDepth(items, depth))
}

// unwrapNested exposes the items of a nested *Collection[any] to arr, which
// only looks through slices and arrays.
func unwrapNested(v any) any {
	if nested, ok := v.(*Collection[any]); ok {
		out := make([]any, len(nested.items))
		for i, item := range nested.items {
			out[i] = unwrapNested(item)
		}
		return out
	}
	return v
}
