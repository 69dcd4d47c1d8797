package dates

import (
	"errors"
	"testing"
	"time"
)

// Wednesday afternoon.
var now = time.Date(2026, time.March, 4, 14, 30, 0, 0, time.UTC)

func TestResolve_Keywords(t *testing.T) {
	tests := []struct {
		expr string
		want time.Time
	}{
		{"", now},
		{"now", now},
		{" Today ", time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"yesterday", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"start-of-week", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"end-of-week", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)},
		{"start-of-month", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"end-of-month", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)},
		{"start-of-year", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"end-of-year", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.expr, now, time.Monday)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.expr, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("Resolve(%q) = %s, want %s", tt.expr, got, tt.want)
		}
	}
}

func TestResolve_Offsets(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"+3d", "2026-03-07T00:00:00Z"},
		{"-2w", "2026-02-18T00:00:00Z"},
		{"1mo", "2026-04-04T00:00:00Z"},
		{"-1y", "2025-03-04T00:00:00Z"},
		{"+0d", "2026-03-04T00:00:00Z"},
		{"+4h", "2026-03-04T18:30:00Z"},
		{"-30m", "2026-03-04T14:00:00Z"},
		{"90MIN", "2026-03-04T16:00:00Z"},
		{"15s", "2026-03-04T14:30:15Z"},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.expr, now, time.Monday)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.expr, err)
		}
		if got.Format(time.RFC3339) != tt.want {
			t.Errorf("Resolve(%q) = %s, want %s", tt.expr, got.Format(time.RFC3339), tt.want)
		}
	}
}

func TestResolve_Absolute(t *testing.T) {
	got, err := Resolve("2025-12-25", now, time.Monday)
	if err != nil || got.Format(DateLayout) != "2025-12-25" {
		t.Fatalf("Resolve(date) = %s, %v", got, err)
	}
	got, err = Resolve("2025-12-25T08:15", now, time.Monday)
	if err != nil || got.Hour() != 8 || got.Minute() != 15 {
		t.Fatalf("Resolve(datetime) = %s, %v", got, err)
	}
}

func TestResolve_Invalid(t *testing.T) {
	for _, expr := range []string{"someday", "+d", "3 days", "2025-13-01"} {
		if _, err := Resolve(expr, now, time.Monday); !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("Resolve(%q) err = %v, want ErrInvalidExpression", expr, err)
		}
	}
}

func TestStartOfWeek_SundayStart(t *testing.T) {
	got := StartOfWeek(now, time.Sunday)
	if got.Format(DateLayout) != "2026-03-01" {
		t.Fatalf("StartOfWeek(Sunday) = %s", got.Format(DateLayout))
	}
	sunday := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	if got := StartOfWeek(sunday, time.Monday); got.Format(DateLayout) != "2026-02-23" {
		t.Fatalf("StartOfWeek(sunday, Monday) = %s", got.Format(DateLayout))
	}
}

func TestEndOfMonth_February(t *testing.T) {
	got := EndOfMonth(time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC))
	if got.Day() != 29 || got.Hour() != 23 {
		t.Fatalf("EndOfMonth(Feb 2028) = %s", got)
	}
}

func TestAgo(t *testing.T) {
	tests := []struct {
		t    time.Time
		want string
	}{
		{now, "now"},
		{now.AddDate(0, 0, -3), "3 days ago"},
		{now.Add(2 * time.Hour), "2 hours from now"},
		{now.Add(-90 * time.Second), "1 minute ago"},
	}
	for _, tt := range tests {
		if got := Ago(tt.t, now); got != tt.want {
			t.Errorf("Ago(%s) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestParseOffset(t *testing.T) {
	off, err := ParseOffset("-2w")
	if err != nil || off.Days != -14 {
		t.Fatalf("ParseOffset(-2w) = %+v, %v", off, err)
	}
	off, err = ParseOffset("3mo")
	if err != nil || off.Months != 3 {
		t.Fatalf("ParseOffset(3mo) = %+v, %v", off, err)
	}
	if off, _ := ParseOffset("+0d"); !off.IsZero() {
		t.Fatal("+0d should be a zero offset")
	}
	if _, err := ParseOffset("5 fortnights"); !errors.Is(err, ErrInvalidExpression) {
		t.Fatalf("ParseOffset(bad) err = %v", err)
	}
}
