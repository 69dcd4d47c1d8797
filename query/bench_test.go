package query_test

import (
	"slices"
	"testing"

	"github.com/hasbyte1/go-typex/query"
)

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkFilterDefault(b *testing.B) {
	items := makeInts(10_000)
	for b.Loop() {
		_, _ = query.Filter(items, even, query.Default, 0)
	}
}

func BenchmarkFilterSplit(b *testing.B) {
	items := makeInts(10_000)
	for b.Loop() {
		_, _ = query.Filter(items, even, query.Split, 0)
	}
}

func BenchmarkStreamFirst(b *testing.B) {
	items := makeInts(10_000)
	for b.Loop() {
		out, _ := query.Stream(slices.Values(items), even, query.First, 10)
		query.Collect(out)
	}
}

func BenchmarkProjectMemberField(b *testing.B) {
	items := make([]person, 1_000)
	for i := range items {
		items[i] = person{Name: "p", Age: i}
	}
	op := query.Member("Age")
	for b.Loop() {
		_, _ = query.Project(items, op)
	}
}

func BenchmarkLikeAny(b *testing.B) {
	items := make([]string, 1_000)
	for i := range items {
		items[i] = "file_" + string(rune('a'+i%26)) + ".go"
	}
	for b.Loop() {
		_, _ = query.LikeAny(items, "file_[a-f]*.go")
	}
}
