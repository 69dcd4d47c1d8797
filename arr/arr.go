package arr

import (
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Indexing & slicing
// ─────────────────────────────────────────────────────────────────────────────

// At returns the element at index. A negative index counts from the end
// (-1 is the last element). Returns the zero value and false when index is
// out of range.
func At[T any](items []T, index int) (T, bool) {
	var zero T
	i, ok := normalize(len(items), index)
	if !ok {
		return zero, false
	}
	return items[i], true
}

// Range returns the elements from start to end inclusive. Negative indexes
// count from the end. When start is after end the elements come out in
// reverse order. Indexes outside the slice are skipped, so a range that does
// not overlap items returns an empty slice.
func Range[T any](items []T, start, end int) []T {
	n := len(items)
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start <= end {
		lo, hi := max(start, 0), min(end, n-1)
		if lo > hi {
			return []T{}
		}
		return clone(items[lo : hi+1])
	}
	hi, lo := min(start, n-1), max(end, 0)
	if lo > hi {
		return []T{}
	}
	out := make([]T, 0, hi-lo+1)
	for i := hi; i >= lo; i-- {
		out = append(out, items[i])
	}
	return out
}

// Slice returns at most length elements starting at offset. A negative
// offset counts from the end; a negative length means "to the end".
func Slice[T any](items []T, offset, length int) []T {
	n := len(items)
	if offset < 0 {
		offset = max(n+offset, 0)
	}
	if offset >= n {
		return []T{}
	}
	end := n
	if length >= 0 && length < n-offset {
		end = offset + length
	}
	return clone(items[offset:end])
}

// Take returns the first n elements, or the last -n elements when n is
// negative.
func Take[T any](items []T, n int) []T {
	if n < 0 {
		return clone(items[max(len(items)+n, 0):])
	}
	return clone(items[:min(n, len(items))])
}

// Skip drops the first n elements, or the last -n elements when n is
// negative.
func Skip[T any](items []T, n int) []T {
	if n < 0 {
		return clone(items[:max(len(items)+n, 0)])
	}
	return clone(items[min(n, len(items)):])
}

// Chunk splits items into consecutive groups of size. The last group may be
// shorter. Returns an empty result when size <= 0.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for lo := 0; lo < len(items); lo += size {
		chunks = append(chunks, clone(items[lo:min(lo+size, len(items))]))
	}
	return chunks
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// Collapse flattens one level of nesting.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Flatten recursively flattens slices and arrays of any element type,
// including []any holding further slices. Strings and []byte are treated as
// scalars. A non-slice value yields a one-element result; nil yields an
// empty one.
func Flatten(items any) []any {
	out := make([]any, 0)
	var walk func(v any)
	walk = func(v any) {
		if v == nil {
			return
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if rv.Type().Elem().Kind() == reflect.Uint8 {
				out = append(out, v)
				return
			}
			for i := 0; i < rv.Len(); i++ {
				walk(rv.Index(i).Interface())
			}
		default:
			out = append(out, v)
		}
	}
	if items == nil {
		return out
	}
	walk(items)
	return out
}

// FlattenDepth is [Flatten] limited to depth levels of nesting. Depth 1
// flattens one level; depth <= 0 returns the top-level elements unchanged.
func FlattenDepth(items any, depth int) []any {
	out := make([]any, 0)
	var walk func(v any, level int)
	walk = func(v any, level int) {
		rv := reflect.ValueOf(v)
		if v != nil && level <= depth && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) &&
			rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := 0; i < rv.Len(); i++ {
				walk(rv.Index(i).Interface(), level+1)
			}
			return
		}
		out = append(out, v)
	}
	if items == nil {
		return out
	}
	rv := reflect.ValueOf(items)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return append(out, items)
	}
	for i := 0; i < rv.Len(); i++ {
		walk(rv.Index(i).Interface(), 1)
	}
	return out
}

func normalize(n, index int) (int, bool) {
	if index < 0 {
		index += n
	}
	return index, index >= 0 && index < n
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
