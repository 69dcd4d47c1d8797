package collections

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"

	"github.com/hasbyte1/go-typex/arr"
	"github.com/hasbyte1/go-typex/query"
)

// Collection is an ordered, immutable-by-default list of T.
//
//	c := collections.New(1, 2, 3, 4, 5, 6)
//	c := collections.From([]string{"a", "b"})
//	c := collections.Collect(someSeq)
//
// Constructors copy their input, and methods that return a Collection build
// a new backing slice, so callers may keep mutating the slice they passed in.
// [Collection.All] returns a copy for the same reason.
//
// # Thread safety
//
// A Collection is never modified after construction, so concurrent reads
// from multiple goroutines are safe without locking. Member assignments made
// through [Collection.ForEach] write to the elements themselves; those
// elements need their own synchronisation if they are shared.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection holding a copy of items.
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a copy of items.
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Collect drains items into a Collection.
func Collect[T any](items iter.Seq[T]) *Collection[T] {
	if items == nil {
		return Empty[T]()
	}
	return wrap(query.Collect(items))
}

// Empty creates an empty Collection.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// wrap takes ownership of items.
func wrap[T any](items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the items.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Values returns the items as a sequence.
func (c *Collection[T]) Values() iter.Seq[T] { return seq.FromSlice(c.items) }

// Count returns the number of items.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection has no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// At returns the item at index. Negative indexes count from the end.
func (c *Collection[T]) At(index int) (T, bool) { return arr.At(c.items, index) }

// ToJSON encodes the items as a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

func (c *Collection[T]) String() string {
	return fmt.Sprintf("Collection%v", c.items)
}

// Each calls fn with every item and its index.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Select filters the collection with pred in the given mode; see
// [query.Filter] for the meaning of mode and count. rest is non-nil only for
// [query.Split].
func (c *Collection[T]) Select(pred func(T) bool, mode query.Mode, count int) (matched, rest *Collection[T], err error) {
	res, err := query.Filter(c.items, pred, mode, count)
	if err != nil {
		return nil, nil, err
	}
	if mode == query.Split {
		rest = wrap(res.Rest)
	}
	return wrap(res.Matches), rest, nil
}

// Where returns the items satisfying pred. A nil pred is
// [query.ErrNilPredicate].
func (c *Collection[T]) Where(pred func(T) bool) (*Collection[T], error) {
	out, err := query.Where(c.items, pred)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// Reject returns the items not satisfying pred.
func (c *Collection[T]) Reject(pred func(T) bool) (*Collection[T], error) {
	if pred == nil {
		return nil, query.ErrNilPredicate
	}
	return c.Where(func(item T) bool { return !pred(item) })
}

// First returns the first item satisfying pred. A nil pred selects the first
// item.
func (c *Collection[T]) First(pred func(T) bool) (T, bool) {
	return c.pick(pred, query.First)
}

// Last returns the last item satisfying pred. A nil pred selects the last
// item.
func (c *Collection[T]) Last(pred func(T) bool) (T, bool) {
	return c.pick(pred, query.Last)
}

// FirstOrFail is [Collection.First] returning [ErrNoMatchingItems] on a miss.
func (c *Collection[T]) FirstOrFail(pred func(T) bool) (T, error) {
	if v, ok := c.First(pred); ok {
		return v, nil
	}
	var zero T
	return zero, ErrNoMatchingItems
}

// LastOrFail is [Collection.Last] returning [ErrNoMatchingItems] on a miss.
func (c *Collection[T]) LastOrFail(pred func(T) bool) (T, error) {
	if v, ok := c.Last(pred); ok {
		return v, nil
	}
	var zero T
	return zero, ErrNoMatchingItems
}

func (c *Collection[T]) pick(pred func(T) bool, mode query.Mode) (T, bool) {
	var zero T
	if pred == nil {
		pred = func(T) bool { return true }
	}
	res, err := query.Filter(c.items, pred, mode, 1)
	if err != nil || len(res.Matches) == 0 {
		return zero, false
	}
	return res.Matches[0], true
}

// SkipUntil drops items until pred first holds and returns the rest,
// starting with the matching item.
func (c *Collection[T]) SkipUntil(pred func(T) bool) (*Collection[T], error) {
	matched, _, err := c.Select(pred, query.SkipUntil, 0)
	return matched, err
}

// TakeUntil returns the items before pred first holds.
func (c *Collection[T]) TakeUntil(pred func(T) bool) (*Collection[T], error) {
	matched, _, err := c.Select(pred, query.Until, 0)
	return matched, err
}

// Partition splits the collection into the items satisfying pred and the
// rest, both in their original order.
func (c *Collection[T]) Partition(pred func(T) bool) (matched, rest *Collection[T], err error) {
	m, r, err := query.Partition(c.items, pred, 0)
	if err != nil {
		return nil, nil, err
	}
	return wrap(m), wrap(r), nil
}

// Match returns the items whose string form matches any of the regular
// expressions, ignoring case.
func (c *Collection[T]) Match(patterns ...string) (*Collection[T], error) {
	out, err := query.MatchAny(c.items, patterns...)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// Like returns the items whose string form matches any of the wildcard
// patterns, ignoring case.
func (c *Collection[T]) Like(patterns ...string) (*Collection[T], error) {
	out, err := query.LikeAny(c.items, patterns...)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection
// ─────────────────────────────────────────────────────────────────────────────

// ForEach projects every item with op; see [query.Project].
//
//	names, _ := users.ForEach(query.Member("Name"))
//	ints, _  := raw.ForEach(query.ConvertTo(query.KindInt), query.Strict())
func (c *Collection[T]) ForEach(op query.Operation, opts ...query.ProjectOption) (*Collection[any], error) {
	out, err := query.Project(c.items, op, opts...)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// Implode joins the strings fn extracts from the items with sep.
func (c *Collection[T]) Implode(sep string, fn func(T) string) (string, error) {
	return query.ConcatBy(c.items, sep, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first n items, or the last -n items when n is negative.
func (c *Collection[T]) Take(n int) *Collection[T] { return wrap(arr.Take(c.items, n)) }

// Skip drops the first n items, or the last -n items when n is negative.
func (c *Collection[T]) Skip(n int) *Collection[T] { return wrap(arr.Skip(c.items, n)) }

// Slice returns at most length items starting at offset. A negative offset
// counts from the end; a negative length runs to the end.
func (c *Collection[T]) Slice(offset, length int) *Collection[T] {
	return wrap(arr.Slice(c.items, offset, length))
}

// Range returns the items between start and end inclusive, in reverse when
// start is after end. Negative indexes count from the end.
func (c *Collection[T]) Range(start, end int) *Collection[T] {
	return wrap(arr.Range(c.items, start, end))
}

// Reverse returns the items in reverse order.
func (c *Collection[T]) Reverse() *Collection[T] { return wrap(arr.Reverse(c.items)) }

// Chunk splits the items into slices of at most size items. A size below 1
// yields no chunks.
func (c *Collection[T]) Chunk(size int) [][]T { return arr.Chunk(c.items, size) }

// ─────────────────────────────────────────────────────────────────────────────
// Mutation (returns new collections)
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	out := make([]T, 0, len(c.items)+len(items))
	out = append(out, c.items...)
	return wrap(append(out, items...))
}

// Concat returns a new collection with the items of other appended.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	return c.Push(other.items...)
}

// When applies fn when condition holds and returns c otherwise.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}
