package query

import (
	"fmt"
	"strings"
)

// Number is the constraint for [Sum] and [SumBy].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds up items. The sum of an empty sequence is zero.
func Sum[S ~[]T, T Number](items S) T {
	var total T
	for _, item := range items {
		total += item
	}
	return total
}

// SumBy adds up the values fn extracts from items.
func SumBy[S ~[]T, T any, N Number](items S, fn func(T) N) (N, error) {
	var total N
	if fn == nil {
		return total, fmt.Errorf("%w: nil extractor", ErrInvalidArgument)
	}
	for _, item := range items {
		total += fn(item)
	}
	return total, nil
}

// Concat joins string items without a separator. It is the explicit form of
// the string accumulation [Sum] does not do.
func Concat[S ~[]T, T ~string](items S) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(string(item))
	}
	return b.String()
}

// ConcatBy joins the strings fn extracts from items with sep.
func ConcatBy[S ~[]T, T any](items S, sep string, fn func(T) string) (string, error) {
	if fn == nil {
		return "", fmt.Errorf("%w: nil extractor", ErrInvalidArgument)
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep), nil
}

// ContainsAny reports whether items holds at least one of candidates. It
// stops at the first hit. With no candidates it returns false.
func ContainsAny[S ~[]T, T comparable](items S, candidates ...T) bool {
	if len(candidates) == 0 {
		return false
	}
	want := make(map[T]struct{}, len(candidates))
	for _, c := range candidates {
		want[c] = struct{}{}
	}
	for _, item := range items {
		if _, ok := want[item]; ok {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every candidate occurs in items. It stops at
// the first missing candidate. With no candidates it returns true.
func ContainsAll[S ~[]T, T comparable](items S, candidates ...T) bool {
	if len(candidates) == 0 {
		return true
	}
	have := make(map[T]struct{}, len(items))
	for _, item := range items {
		have[item] = struct{}{}
	}
	for _, c := range candidates {
		if _, ok := have[c]; !ok {
			return false
		}
	}
	return true
}
