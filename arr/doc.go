// Package arr provides standalone helpers for plain Go slices and for
// dot-notation access into nested map[string]any values.
//
// # Flattening and slicing
//
// Indexes follow the scripting-host convention: negative values count from
// the end, and ranges are inclusive on both ends.
//
//	arr.At([]int{1, 2, 3}, -1)              // → 3, true
//	arr.Range([]int{1, 2, 3, 4, 5}, 1, 3)   // → [2 3 4]
//	arr.Range([]int{1, 2, 3, 4, 5}, 3, 1)   // → [4 3 2]
//	arr.Range([]int{1, 2, 3, 4, 5}, -2, -1) // → [4 5]
//	arr.Flatten([]any{1, []int{2, 3}, [][]string{{"a"}}}) // → [1 2 3 a]
//
// # Dot-notation map access
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	arr.Get(m, "user.address.city")          // → "London"
//	arr.Set(m, "user.address.postcode", "EC1")
//	arr.Has(m, "user.name")                  // → true
//	arr.Forget(m, "user.address")
//	flat := arr.Dot(m)                       // → {"user.name": "Alice"}
//
// The query package resolves member names on map elements through these
// helpers, and the pretty package uses [Dot] to print nested tables.
package arr
