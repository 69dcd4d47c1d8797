package query_test

import (
	"math"
	"testing"

	"github.com/hasbyte1/go-typex/query"
)

type label struct{ text string }

func (l label) String() string { return l.text }

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind query.Kind
		want any
	}{
		{"int from float rounds half even", 2.5, query.KindInt, 2},
		{"int from float rounds up", 3.7, query.KindInt, 4},
		{"int from padded string", " 7 ", query.KindInt, 7},
		{"int from float string", "3.5", query.KindInt, 4},
		{"int from bool", true, query.KindInt, 1},
		{"int64 from string", "42", query.KindInt64, int64(42)},
		{"int64 from uint", uint8(9), query.KindInt64, int64(9)},
		{"float from uint64", uint64(5), query.KindFloat, 5.0},
		{"float from string", "1.25", query.KindFloat, 1.25},
		{"bool from number", 0, query.KindBool, false},
		{"bool from string", "TRUE", query.KindBool, true},
		{"string from bool", true, query.KindString, "true"},
		{"string from int", 12, query.KindString, "12"},
		{"int from stringer", label{"12"}, query.KindInt, 12},
		{"int from pointer", ptr(int16(3)), query.KindInt, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := query.Convert(tt.in, tt.kind)
			mustNoError(t, err)
			if got != tt.want {
				t.Fatalf("Convert(%v, %s) = %#v; want %#v", tt.in, tt.kind, got, tt.want)
			}
		})
	}
}

func TestConvertFailures(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind query.Kind
	}{
		{"nil", nil, query.KindString},
		{"typed nil", (*int)(nil), query.KindInt},
		{"not a number", "abc", query.KindInt},
		{"NaN", math.NaN(), query.KindInt64},
		{"overflow", uint64(math.MaxUint64), query.KindInt64},
		{"bool from word", "yes", query.KindBool},
		{"struct", struct{ A int }{1}, query.KindFloat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := query.Convert(tt.in, tt.kind)
			assertErrorIs(t, err, query.ErrConversion)
		})
	}

	_, err := query.Convert(1, query.Kind(0))
	assertErrorIs(t, err, query.ErrInvalidArgument)
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]query.Kind{
		"int":     query.KindInt,
		"Long":    query.KindInt64,
		"double":  query.KindFloat,
		" bool ":  query.KindBool,
		"STRING":  query.KindString,
		"boolean": query.KindBool,
	} {
		got, err := query.ParseKind(in)
		mustNoError(t, err)
		if got != want {
			t.Errorf("ParseKind(%q) = %s; want %s", in, got, want)
		}
	}
	_, err := query.ParseKind("decimal")
	assertErrorIs(t, err, query.ErrInvalidArgument)

	if s := query.Kind(77).String(); s != "Kind(77)" {
		t.Fatalf("Kind(77).String() = %q", s)
	}
}

func ptr[T any](v T) *T { return &v }
