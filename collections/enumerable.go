package collections

import "iter"

// Enumerable is the read surface of [Collection][T]. Accept it in your own
// APIs when a concrete *Collection is not required.
type Enumerable[T any] interface {
	// All returns a copy of every item.
	All() []T

	// Count returns the number of items.
	Count() int

	// Values returns the items as a sequence.
	Values() iter.Seq[T]

	// Where returns the items satisfying pred.
	Where(pred func(T) bool) *Collection[T]

	// First returns the first item satisfying pred, or the first item when
	// pred is nil.
	First(pred func(T) bool) (T, bool)

	// Last returns the last item satisfying pred, or the last item when
	// pred is nil.
	Last(pred func(T) bool) (T, bool)

	// IsEmpty reports whether there are no items.
	IsEmpty() bool
}

var _ Enumerable[int] = (*Collection[int])(nil)
