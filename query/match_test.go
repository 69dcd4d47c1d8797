package query_test

import (
	"testing"

	"github.com/hasbyte1/go-typex/query"
)

func TestMatchAny(t *testing.T) {
	fruit := []string{"Apple", "banana", "cherry", "avocado"}

	got, err := query.MatchAny(fruit, "^a")
	mustNoError(t, err)
	assertSlice(t, got, []string{"Apple", "avocado"})

	got, err = query.MatchAnyCase(fruit, "^a")
	mustNoError(t, err)
	assertSlice(t, got, []string{"avocado"})

	got, err = query.MatchAny(fruit, "rr", "nan")
	mustNoError(t, err)
	assertSlice(t, got, []string{"banana", "cherry"})

	got, err = query.MatchAny(fruit)
	mustNoError(t, err)
	assertSlice(t, got, []string{})
}

func TestMatchAnyNonStrings(t *testing.T) {
	got, err := query.MatchAny([]int{10, 21, 30}, "^1", "^3")
	mustNoError(t, err)
	assertSlice(t, got, []int{10, 30})
}

func TestMatchAnyInvalidPattern(t *testing.T) {
	_, err := query.MatchAny([]string{"a"}, "ok", "(")
	assertErrorIs(t, err, query.ErrInvalidPattern)
	assertErrorIs(t, err, query.ErrInvalidArgument)
}

func TestLikeAny(t *testing.T) {
	files := []string{"main.go", "README.md", "go.mod", "Main_test.GO", "x.g"}
	tests := []struct {
		name     string
		patterns []string
		fold     bool
		want     []string
	}{
		{"star suffix", []string{"*.go"}, true, []string{"main.go", "Main_test.GO"}},
		{"star suffix case", []string{"*.go"}, false, []string{"main.go"}},
		{"question", []string{"?.g"}, true, []string{"x.g"}},
		{"range", []string{"[a-m]*"}, false, []string{"main.go", "go.mod"}},
		{"set", []string{"[RM]*"}, false, []string{"README.md", "Main_test.GO"}},
		{"whole string", []string{"main"}, true, []string{}},
		{"several", []string{"go.*", "readme*"}, true, []string{"README.md", "go.mod"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			like := query.LikeAnyCase[[]string, string]
			if tt.fold {
				like = query.LikeAny[[]string, string]
			}
			got, err := like(files, tt.patterns...)
			mustNoError(t, err)
			assertSlice(t, got, tt.want)
		})
	}
}

func TestCompileWildcardEscapes(t *testing.T) {
	re, err := query.CompileWildcard("a`*b", false)
	mustNoError(t, err)
	if !re.MatchString("a*b") || re.MatchString("axb") {
		t.Fatal("escaped * should be literal")
	}

	re, err = query.CompileWildcard("[`]x]", false)
	mustNoError(t, err)
	if !re.MatchString("]") || !re.MatchString("x") || re.MatchString("`") {
		t.Fatal("escaped ] inside a set should be a member")
	}

	re, err = query.CompileWildcard("a.b+c", false)
	mustNoError(t, err)
	if !re.MatchString("a.b+c") || re.MatchString("axbbc") {
		t.Fatal("regexp metacharacters should be literal")
	}
}

func TestCompileWildcardErrors(t *testing.T) {
	for _, p := range []string{"[abc", "abc`", "[]"} {
		_, err := query.CompileWildcard(p, true)
		assertErrorIs(t, err, query.ErrInvalidPattern)
	}
	_, err := query.LikeAny([]string{"a"}, "[")
	assertErrorIs(t, err, query.ErrInvalidPattern)
}
