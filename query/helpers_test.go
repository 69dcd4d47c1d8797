package query_test

import (
	"errors"
	"testing"
)

func oneToSix() []int { return []int{1, 2, 3, 4, 5, 6} }

func even(n int) bool { return n%2 == 0 }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if got == nil {
		t.Fatalf("got nil slice, want %v", want)
	}
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v; want errors.Is(%v)", err, target)
	}
}

func mustNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// countingPred wraps pred and counts its calls.
func countingPred[T any](pred func(T) bool) (func(T) bool, *int) {
	calls := 0
	return func(v T) bool {
		calls++
		return pred(v)
	}, &calls
}
