package collections

import "errors"

// ErrNoMatchingItems is returned by [Collection.FirstOrFail] and
// [Collection.LastOrFail] when no item satisfies the predicate.
var ErrNoMatchingItems = errors.New("collections: no items match the given condition")
