// Package query provides generic selection, projection and aggregation
// helpers over ordered in-memory sequences.
//
// # Filtering with modes
//
// [Filter] selects elements with a predicate and one of six [Mode] values:
//
//	res, _ := query.Filter([]int{1, 2, 3, 4, 5, 6}, isEven, query.SkipUntil, 0)
//	res.Matches // → [2 3 4 5 6]
//
//	res, _ = query.Filter([]int{1, 2, 3, 4, 5, 6}, isEven, query.Until, 0)
//	res.Matches // → [1]
//
//	res, _ = query.Filter([]int{1, 2, 3, 4, 5, 6}, isEven, query.Split, 2)
//	res.Matches, res.Rest // → [2 4] [1 3 5 6]
//
// A count of 0 means "use the mode default": 1 for [First] and [Last],
// unbounded for every other mode. It never means "return nothing".
//
// [Stream] and [StreamPartition] offer the same semantics over iter.Seq for
// callers that do not want to materialise intermediate slices.
//
// # Projection
//
// [Project] applies an [Operation] to every element. An operation is one of
// [Transform], [ConvertTo] or [Member]:
//
//	names, _ := query.Project(users, query.Member("Name"))
//	upper, _ := query.Project(words, query.Member("ToUpper"))
//	ints, _  := query.Project([]string{"1", "x", "3"}, query.ConvertTo(query.KindInt))
//	// → [1 3]; "x" is dropped
//
// Elements that cannot be projected are dropped silently. Pass [OnMiss] to
// observe the drops or [Strict] to turn the first one into an error.
//
// # Aggregates
//
// [Sum], [SumBy], [Concat], [ContainsAny], [ContainsAll], [MatchAny] and
// [LikeAny] are single-pass and read-only.
//
// None of the functions in this package mutate their input or keep state
// between calls; they are safe to call from multiple goroutines as long as the
// input slice is not modified concurrently.
package query
