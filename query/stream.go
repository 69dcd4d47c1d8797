package query

import (
	"fmt"
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
)

// Stream is the lazy form of [Filter] for every mode except [Split].
//
// Default, First, SkipUntil and Until pull from items only as far as needed.
// Last has to see the whole input before it can yield, so it buffers the
// matches. Use [StreamPartition] for split semantics.
func Stream[T any](items iter.Seq[T], pred func(T) bool, mode Mode, count int) (iter.Seq[T], error) {
	if items == nil {
		return nil, ErrNilSequence
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}
	if err := checkArgs(mode, count); err != nil {
		return nil, err
	}

	limit := mode.limit(count)
	var out iter.Seq[T]
	switch mode {
	case Default, First:
		out = seq.Filter(items, pred)
	case Last:
		return lastSeq(items, pred, limit), nil
	case SkipUntil:
		out = seq.SkipUntil(items, pred)
	case Until:
		out = seq.TakeUntil(items, pred)
	default:
		return nil, fmt.Errorf("%w: %s has two outputs, use StreamPartition", ErrInvalidArgument, mode)
	}
	if limit >= 0 {
		out = bounded(out, limit)
	}
	return out, nil
}

// StreamPartition is the lazy form of [Split]. It yields every element of
// items together with true when it belongs to the matches side (at most count
// of them when count > 0) and false otherwise.
func StreamPartition[T any](items iter.Seq[T], pred func(T) bool, count int) (iter.Seq2[T, bool], error) {
	if items == nil {
		return nil, ErrNilSequence
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}
	if err := checkArgs(Split, count); err != nil {
		return nil, err
	}
	limit := Split.limit(count)
	return func(yield func(T, bool) bool) {
		taken := 0
		for item := range items {
			matched := (limit < 0 || taken < limit) && pred(item)
			if matched {
				taken++
			}
			if !yield(item, matched) {
				return
			}
		}
	}, nil
}

// Collect drains a stream into a new slice.
func Collect[T any](items iter.Seq[T]) []T {
	out := seq.Collect(items)
	if out == nil {
		return []T{}
	}
	return out
}

// bounded stops after n elements without pulling element n+1 from upstream,
// so the predicate of an upstream filter is not evaluated past the limit.
func bounded[T any](items iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		taken := 0
		for item := range items {
			if !yield(item) {
				return
			}
			taken++
			if taken >= n {
				return
			}
		}
	}
}

func lastSeq[T any](items iter.Seq[T], pred func(T) bool, limit int) iter.Seq[T] {
	return func(yield func(T) bool) {
		matches := seq.Collect(seq.Filter(items, pred))
		if limit >= 0 && len(matches) > limit {
			matches = matches[len(matches)-limit:]
		}
		for _, item := range matches {
			if !yield(item) {
				return
			}
		}
	}
}
