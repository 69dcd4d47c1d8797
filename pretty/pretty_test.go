package pretty_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-typex/pretty"
	"github.com/hasbyte1/go-typex/secure"
)

func sample() map[string]any {
	return map[string]any{
		"db": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
		"tags":  []string{"a", "b"},
		"empty": map[string]any{},
		"nil":   nil,
	}
}

func TestEntries_SortedAndFlattened(t *testing.T) {
	got := pretty.Entries(sample())
	want := []pretty.Entry{
		{"db.host", "localhost"},
		{"db.port", "5432"},
		{"empty", "{}"},
		{"nil", ""},
		{"tags", "{a, b}"},
	}
	if len(got) != len(want) {
		t.Fatalf("Entries = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMap_Plain(t *testing.T) {
	got := pretty.Map(map[string]any{"a": 1, "long.name": true}, pretty.Options{Plain: true})
	want := "" +
		"Name       Value\n" +
		"----       -----\n" +
		"a          1\n" +
		"long.name  true\n"
	if got != want {
		t.Fatalf("plain output:\n%s\nwant:\n%s", got, want)
	}
}

func TestMap_Styled(t *testing.T) {
	out := pretty.Map(sample(), pretty.Options{Accent: "#FF0000"})
	for _, s := range []string{"Name", "Value", "db.host", "localhost", "{a, b}"} {
		if !strings.Contains(out, s) {
			t.Errorf("styled output missing %q:\n%s", s, out)
		}
	}
}

func TestMap_Empty(t *testing.T) {
	if out := pretty.Map(nil, pretty.Options{}); out != "" {
		t.Fatalf("Map(nil) = %q", out)
	}
}

func TestFormatValue_RedactsSecureStrings(t *testing.T) {
	s, err := secure.New("hunter2")
	if err != nil {
		t.Fatal(err)
	}
	out := pretty.Map(map[string]any{"password": s}, pretty.Options{Plain: true})
	if strings.Contains(out, "hunter2") || !strings.Contains(out, "[redacted]") {
		t.Fatalf("secure value leaked or missing:\n%s", out)
	}
}

func TestFormatValue_Nested(t *testing.T) {
	if got := pretty.FormatValue([]any{1, []int{2, 3}}); got != "{1, {2, 3}}" {
		t.Fatalf("FormatValue(nested) = %q", got)
	}
	if got := pretty.FormatValue([]byte("hi")); got != "[104 105]" {
		t.Fatalf("FormatValue([]byte) = %q", got)
	}
}
