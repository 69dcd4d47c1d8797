// Package collections provides a fluent, generic Collection type on top of
// the query and arr packages.
//
// # Overview
//
// [Collection][T] wraps a slice of T and exposes the query operations as
// chainable methods:
//
//	adults, _, _ := collections.New(people...).
//	    Select(func(p Person) bool { return p.Age >= 18 }, query.First, 3)
//
//	names, _ := adults.ForEach(query.Member("Name"))
//	// → Collection[any]{"Alice", "Carol"}
//
// # Immutability
//
// Every method that returns a Collection returns a new one; the receiver is
// left unchanged. A Member projection that assigns values does write through
// to the elements themselves (maps, or structs behind pointers).
//
// # Errors
//
// Methods taking a predicate or function report a nil argument as an error
// wrapping [query.ErrInvalidArgument] instead of panicking or returning an
// empty result. The exceptions are [Collection.First] and
// [Collection.Last], where a nil predicate selects any item.
//
//	_, err := c.Where(nil)
//	errors.Is(err, query.ErrNilPredicate) // true
//
// # Type-changing operations
//
// Methods cannot introduce type parameters, so operations whose result type
// differs from T are package-level functions: [Map], [Sum], [SumBy],
// [ContainsAny], [ContainsAll], [GroupBy], [Collapse], [Flatten] and
// [FlattenDepth].
package collections
