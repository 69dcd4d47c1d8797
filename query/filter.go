package query

// Result is the output of [Filter].
//
// Matches holds the selected elements for every mode. Rest is only set by
// [Split] and then holds every element that was not selected; for the other
// modes it is nil. Both slices are freshly allocated and owned by the caller.
type Result[T any] struct {
	Matches []T
	Rest    []T
}

// Filter selects elements of items with pred according to mode.
//
// count bounds the number of elements returned; 0 selects the mode default
// (1 for First and Last, unbounded otherwise). Output order is always input
// order. items is never modified.
//
// Returns [ErrNilPredicate], [ErrUnknownMode] or [ErrNegativeCount] (all
// wrapping [ErrInvalidArgument]) before evaluating any element.
func Filter[S ~[]T, T any](items S, pred func(T) bool, mode Mode, count int) (Result[T], error) {
	if pred == nil {
		return Result[T]{}, ErrNilPredicate
	}
	if err := checkArgs(mode, count); err != nil {
		return Result[T]{}, err
	}

	limit := mode.limit(count)
	switch mode {
	case Default, First:
		return Result[T]{Matches: takeMatching(items, pred, limit)}, nil
	case Last:
		return Result[T]{Matches: lastMatching(items, pred, limit)}, nil
	case SkipUntil:
		return Result[T]{Matches: skipUntil(items, pred, limit)}, nil
	case Until:
		return Result[T]{Matches: until(items, pred, limit)}, nil
	default: // Split
		matches, rest := split(items, pred, limit)
		return Result[T]{Matches: matches, Rest: rest}, nil
	}
}

// Where returns every element satisfying pred. It is Filter in [Default]
// mode without a count.
func Where[S ~[]T, T any](items S, pred func(T) bool) ([]T, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	return takeMatching(items, pred, -1), nil
}

// Partition is Filter in [Split] mode: it returns the matches (capped at
// count when count > 0) and everything else, both in input order.
func Partition[S ~[]T, T any](items S, pred func(T) bool, count int) (matches, rest []T, err error) {
	res, err := Filter(items, pred, Split, count)
	if err != nil {
		return nil, nil, err
	}
	return res.Matches, res.Rest, nil
}

// takeMatching collects matches from the front. limit < 0 means unbounded;
// the predicate is not evaluated once the limit is reached.
func takeMatching[T any](items []T, pred func(T) bool, limit int) []T {
	out := make([]T, 0, capHint(len(items), limit))
	for _, item := range items {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// lastMatching evaluates pred front to back and keeps the tail of the match
// list.
func lastMatching[T any](items []T, pred func(T) bool, limit int) []T {
	idx := make([]int, 0)
	for i, item := range items {
		if pred(item) {
			idx = append(idx, i)
		}
	}
	if limit >= 0 && len(idx) > limit {
		idx = idx[len(idx)-limit:]
	}
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

func skipUntil[T any](items []T, pred func(T) bool, limit int) []T {
	for i, item := range items {
		if !pred(item) {
			continue
		}
		tail := items[i:]
		if limit >= 0 && len(tail) > limit {
			tail = tail[:limit]
		}
		out := make([]T, len(tail))
		copy(out, tail)
		return out
	}
	return []T{}
}

func until[T any](items []T, pred func(T) bool, limit int) []T {
	out := make([]T, 0, capHint(len(items), limit))
	for _, item := range items {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if pred(item) {
			break
		}
		out = append(out, item)
	}
	return out
}

func split[T any](items []T, pred func(T) bool, limit int) (matches, rest []T) {
	matches = make([]T, 0, capHint(len(items), limit))
	rest = make([]T, 0)
	for _, item := range items {
		if (limit < 0 || len(matches) < limit) && pred(item) {
			matches = append(matches, item)
			continue
		}
		rest = append(rest, item)
	}
	return matches, rest
}

func capHint(n, limit int) int {
	if limit >= 0 && limit < n {
		return limit
	}
	return n
}
