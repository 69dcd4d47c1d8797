package query_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hasbyte1/go-typex/query"
)

var errBoom = errors.New("boom")

type person struct {
	Name string
	Age  int
	Tags []string
	nick string
}

func (p person) Greeting(prefix string) string { return prefix + ", " + p.Name }
func (p person) IsAdult() bool                 { return p.Age >= 18 }
func (p *person) Initial() string              { return p.Name[:1] }
func (p person) Fail() (string, error)         { return "", errBoom }
func (p person) Explode() string               { panic("kaboom") }
func (p person) Join(sep string, parts ...string) string {
	return p.Name + sep + strings.Join(parts, sep)
}

func people() []person {
	return []person{
		{Name: "Alice", Age: 34},
		{Name: "Bob", Age: 12},
		{Name: "Carol", Age: 51},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transform / ProjectFunc
// ─────────────────────────────────────────────────────────────────────────────

func TestProjectTransform(t *testing.T) {
	out, err := query.Project(oneToSix(), query.Transform(func(v any) any {
		n := v.(int)
		if n%2 != 0 {
			return nil
		}
		return n * 10
	}))
	mustNoError(t, err)
	assertSlice(t, out, []any{20, 40, 60})
}

func TestProjectTransformDropsTypedNil(t *testing.T) {
	out, err := query.Project([]int{1, 2}, query.Transform(func(v any) any {
		var p *person
		if v.(int) == 1 {
			return p
		}
		return "kept"
	}))
	mustNoError(t, err)
	assertSlice(t, out, []any{"kept"})
}

func TestProjectFunc(t *testing.T) {
	out, err := query.ProjectFunc(people(), func(p person) (string, bool) {
		return p.Name, p.Age > 18
	})
	mustNoError(t, err)
	assertSlice(t, out, []string{"Alice", "Carol"})

	_, err = query.ProjectFunc[[]int, int, int](oneToSix(), nil)
	assertErrorIs(t, err, query.ErrNilOperation)
}

// ─────────────────────────────────────────────────────────────────────────────
// ConvertTo
// ─────────────────────────────────────────────────────────────────────────────

func TestProjectConvertDropsFailures(t *testing.T) {
	items := []any{"1", 2.5, "x", 3.5, true}
	var missed []int
	out, err := query.Project(items, query.ConvertTo(query.KindInt), query.OnMiss(func(i int, err error) {
		missed = append(missed, i)
		assertErrorIs(t, err, query.ErrConversion)
	}))
	mustNoError(t, err)
	assertSlice(t, out, []any{1, 2, 4, 1})
	assertSlice(t, missed, []int{2})
}

func TestProjectConvertStrict(t *testing.T) {
	items := []any{"1", "x", "y"}
	var misses int
	_, err := query.Project(items, query.ConvertTo(query.KindInt64), query.Strict(), query.OnMiss(func(int, error) { misses++ }))

	var elemErr *query.ElementError
	if !errors.As(err, &elemErr) {
		t.Fatalf("error = %v; want *ElementError", err)
	}
	if elemErr.Index != 1 {
		t.Fatalf("ElementError.Index = %d; want 1", elemErr.Index)
	}
	assertErrorIs(t, err, query.ErrConversion)
	if misses != 1 {
		t.Fatalf("OnMiss called %d times; want 1 before abort", misses)
	}
}

func TestProjectConvertKeepsFalse(t *testing.T) {
	out, err := query.Project([]int{0, 3}, query.ConvertTo(query.KindBool))
	mustNoError(t, err)
	assertSlice(t, out, []any{false, true})
}

// ─────────────────────────────────────────────────────────────────────────────
// Member: struct fields and methods
// ─────────────────────────────────────────────────────────────────────────────

func TestProjectMemberField(t *testing.T) {
	out, err := query.Project(people(), query.Member("Name"))
	mustNoError(t, err)
	assertSlice(t, out, []any{"Alice", "Bob", "Carol"})

	out, err = query.Project(people(), query.Member("age"))
	mustNoError(t, err)
	assertSlice(t, out, []any{34, 12, 51})
}

func TestProjectMemberFieldDropsNil(t *testing.T) {
	items := []person{{Name: "a", Tags: []string{"x"}}, {Name: "b"}}
	out, err := query.Project(items, query.Member("Tags"))
	mustNoError(t, err)
	if len(out) != 1 {
		t.Fatalf("Member(Tags) = %v; want only the non-nil slice", out)
	}
}

func TestProjectMemberUnexportedIsMiss(t *testing.T) {
	var missErr error
	out, err := query.Project(people(), query.Member("nick"), query.OnMiss(func(_ int, err error) { missErr = err }))
	mustNoError(t, err)
	if len(out) != 0 {
		t.Fatalf("unexported field projected: %v", out)
	}
	assertErrorIs(t, missErr, query.ErrMemberNotFound)
}

func TestProjectMemberMethod(t *testing.T) {
	out, err := query.Project(people(), query.Member("Greeting", "Hi"))
	mustNoError(t, err)
	assertSlice(t, out, []any{"Hi, Alice", "Hi, Bob", "Hi, Carol"})

	out, err = query.Project(people(), query.Member("greeting", "Yo"))
	mustNoError(t, err)
	assertSlice(t, out, []any{"Yo, Alice", "Yo, Bob", "Yo, Carol"})
}

func TestProjectMemberMethodDropsFalse(t *testing.T) {
	out, err := query.Project(people(), query.Member("IsAdult"))
	mustNoError(t, err)
	assertSlice(t, out, []any{true, true})
}

func TestProjectMemberPointerReceiver(t *testing.T) {
	out, err := query.Project(people(), query.Member("Initial"))
	mustNoError(t, err)
	assertSlice(t, out, []any{"A", "B", "C"})
}

func TestProjectMemberVariadic(t *testing.T) {
	out, err := query.Project(people()[:1], query.Member("Join", "-", "x", "y"))
	mustNoError(t, err)
	assertSlice(t, out, []any{"Alice-x-y"})
}

func TestProjectMemberMethodFailures(t *testing.T) {
	tests := []struct {
		name string
		op   query.Operation
		want error
	}{
		{"returns error", query.Member("Fail"), errBoom},
		{"missing args", query.Member("Greeting"), query.ErrBadArguments},
		{"wrong arg type", query.Member("Greeting", 42), query.ErrBadArguments},
		{"unknown", query.Member("Nope"), query.ErrMemberNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := query.Project(people(), tt.op)
			mustNoError(t, err)
			if len(out) != 0 {
				t.Fatalf("failing member projected %v", out)
			}
			_, err = query.Project(people(), tt.op, query.Strict())
			assertErrorIs(t, err, tt.want)
		})
	}
}

func TestProjectMemberPanicIsMiss(t *testing.T) {
	_, err := query.Project(people(), query.Member("Explode"), query.Strict())
	if err == nil || !strings.Contains(err.Error(), "kaboom") {
		t.Fatalf("error = %v; want recovered panic", err)
	}
}

func TestProjectMemberSetField(t *testing.T) {
	ps := []*person{{Name: "a"}, {Name: "b"}}
	out, err := query.Project(ps, query.Member("Age", 40))
	mustNoError(t, err)
	if len(out) != 0 {
		t.Fatalf("setting a member collected %v", out)
	}
	for _, p := range ps {
		if p.Age != 40 {
			t.Fatalf("Age = %d; want 40", p.Age)
		}
	}
}

func TestProjectMemberSetRequiresPointer(t *testing.T) {
	_, err := query.Project(people(), query.Member("Age", 1), query.Strict())
	assertErrorIs(t, err, query.ErrNotSettable)

	ps := []*person{{Name: "a"}}
	_, err = query.Project(ps, query.Member("Age", "old"), query.Strict())
	assertErrorIs(t, err, query.ErrNotSettable)
}

func TestProjectMemberNilElement(t *testing.T) {
	items := []*person{nil, {Name: "x"}}
	out, err := query.Project(items, query.Member("Name"))
	mustNoError(t, err)
	assertSlice(t, out, []any{"x"})
}

func TestMemberCopiesArgs(t *testing.T) {
	args := []any{"Hi"}
	op := query.Member("Greeting", args...)
	args[0] = "Bye"
	out, err := query.Project(people()[:1], op)
	mustNoError(t, err)
	assertSlice(t, out, []any{"Hi, Alice"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Member: maps, strings, intrinsic members
// ─────────────────────────────────────────────────────────────────────────────

func TestProjectMemberMap(t *testing.T) {
	items := []map[string]any{
		{"name": "a", "meta": map[string]any{"x": 1}},
		{"other": true},
		{"Name": "c"},
	}
	out, err := query.Project(items, query.Member("name"))
	mustNoError(t, err)
	assertSlice(t, out, []any{"a", "c"})

	out, err = query.Project(items, query.Member("meta.x"))
	mustNoError(t, err)
	assertSlice(t, out, []any{1})
}

func TestProjectMemberMapSet(t *testing.T) {
	items := []map[string]any{{"a": 1}, {}}
	_, err := query.Project(items, query.Member("tag", "t"))
	mustNoError(t, err)
	for _, m := range items {
		if m["tag"] != "t" {
			t.Fatalf("tag not set on %v", m)
		}
	}

	_, err = query.Project(items, query.Member("pair", 1, 2))
	mustNoError(t, err)
	if got, ok := items[0]["pair"].([]any); !ok || len(got) != 2 {
		t.Fatalf("multi-arg set = %#v; want []any of 2", items[0]["pair"])
	}
}

func TestProjectMemberSetOnNilMap(t *testing.T) {
	var empty map[string]any
	items := []any{empty, map[string]any{}}

	out, err := query.Project(items, query.Member("x", 1))
	mustNoError(t, err)
	assertSlice(t, out, []any{})
	if items[1].(map[string]any)["x"] != 1 {
		t.Fatalf("x not set on non-nil map: %v", items[1])
	}

	_, err = query.Project(items, query.Member("x", 1), query.Strict())
	assertErrorIs(t, err, query.ErrNotSettable)
	var elemErr *query.ElementError
	if !errors.As(err, &elemErr) || elemErr.Index != 0 {
		t.Fatalf("error = %v; want *ElementError at index 0", err)
	}
}

func TestProjectMemberMapDottedKey(t *testing.T) {
	items := []map[string]any{{"A.b": 1}, {"a": map[string]any{"b": 2}}}
	out, err := query.Project(items, query.Member("a.b"))
	mustNoError(t, err)
	assertSlice(t, out, []any{1, 2})

	_, err = query.Project(items[:1], query.Member("a.B", 3))
	mustNoError(t, err)
	if items[0]["A.b"] != 3 || len(items[0]) != 1 {
		t.Fatalf("dotted key assignment = %v; want {A.b: 3}", items[0])
	}
}

func TestProjectMemberTypedMap(t *testing.T) {
	items := []map[string]int{{"Count": 3}, {"count": 4}, {}}
	out, err := query.Project(items, query.Member("count"))
	mustNoError(t, err)
	assertSlice(t, out, []any{3, 4, 0})
}

func TestProjectMemberString(t *testing.T) {
	words := []string{"abc", "hello"}

	out, err := query.Project(words, query.Member("Length"))
	mustNoError(t, err)
	assertSlice(t, out, []any{3, 5})

	out, err = query.Project(words, query.Member("toupper"))
	mustNoError(t, err)
	assertSlice(t, out, []any{"ABC", "HELLO"})

	out, err = query.Project(words, query.Member("Contains", "l"))
	mustNoError(t, err)
	assertSlice(t, out, []any{true})

	out, err = query.Project(words, query.Member("Substring", 1, 2))
	mustNoError(t, err)
	assertSlice(t, out, []any{"bc", "el"})
}

func TestProjectMemberSubstringHugeLength(t *testing.T) {
	_, err := query.Project([]string{"hello"}, query.Member("Substring", 1, int64(math.MaxInt64)), query.Strict())
	assertErrorIs(t, err, query.ErrBadArguments)

	out, err := query.Project([]string{"hello"}, query.Member("Substring", 1, 4))
	mustNoError(t, err)
	assertSlice(t, out, []any{"ello"})
}

func TestProjectMemberIntrinsicCount(t *testing.T) {
	out, err := query.Project([][]int{{1, 2}, {}}, query.Member("Count"))
	mustNoError(t, err)
	assertSlice(t, out, []any{2, 0})
}

// ─────────────────────────────────────────────────────────────────────────────
// Member: custom tables
// ─────────────────────────────────────────────────────────────────────────────

func TestProjectCustomMembers(t *testing.T) {
	m := query.NewMembers()
	mustNoError(t, m.Define("Double", func(target any, _ ...any) (any, error) {
		return target.(int) * 2, nil
	}))
	out, err := query.Project([]int{1, 2}, query.Member("double"), query.WithMembers(m))
	mustNoError(t, err)
	assertSlice(t, out, []any{2, 4})

	// Without the table the member does not exist.
	out, err = query.Project([]int{1, 2}, query.Member("Double"))
	mustNoError(t, err)
	assertSlice(t, out, []any{})
}

func TestProjectCustomMembersOverrideBuiltins(t *testing.T) {
	m := query.NewMembers()
	mustNoError(t, m.Define("Length", func(any, ...any) (any, error) { return "custom", nil }))
	out, err := query.Project([]string{"abc"}, query.Member("Length"), query.WithMembers(nil, m))
	mustNoError(t, err)
	assertSlice(t, out, []any{"custom"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Operation validation
// ─────────────────────────────────────────────────────────────────────────────

func TestProjectInvalidOperation(t *testing.T) {
	tests := []struct {
		name string
		op   query.Operation
		want error
	}{
		{"zero", query.Operation{}, query.ErrNilOperation},
		{"nil transform", query.Transform(nil), query.ErrNilOperation},
		{"bad kind", query.ConvertTo(query.Kind(99)), query.ErrInvalidArgument},
		{"empty member", query.Member(""), query.ErrNilOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := query.Project(oneToSix(), tt.op)
			assertErrorIs(t, err, tt.want)
			assertErrorIs(t, err, query.ErrInvalidArgument)
		})
	}
}

func TestOperationString(t *testing.T) {
	if s := query.ConvertTo(query.KindInt).String(); s != "ConvertTo(int)" {
		t.Fatalf("String() = %q", s)
	}
	if s := query.Member("Name", 1).String(); s != "Member(Name, 1 args)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestProjectDoesNotReorderInput(t *testing.T) {
	items := []any{3, "x", 1}
	_, err := query.Project(items, query.ConvertTo(query.KindInt))
	mustNoError(t, err)
	assertSlice(t, items, []any{3, "x", 1})
}
