package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Offset is a signed calendar offset. Years, months and days are applied
// with time.AddDate from the start of the day; Clock is added on top of the
// reference time as is.
type Offset struct {
	Years, Months, Days int
	Clock               time.Duration

	// calendar is set for y, mo, w and d offsets so "+0d" still means today.
	calendar bool
}

// units is ordered so that "mo" and "min" are tried before "m".
var units = []struct {
	suffix string
	apply  func(o *Offset, n int)
}{
	{"mo", func(o *Offset, n int) { o.Months, o.calendar = n, true }},
	{"min", func(o *Offset, n int) { o.Clock = time.Duration(n) * time.Minute }},
	{"y", func(o *Offset, n int) { o.Years, o.calendar = n, true }},
	{"w", func(o *Offset, n int) { o.Days, o.calendar = 7*n, true }},
	{"d", func(o *Offset, n int) { o.Days, o.calendar = n, true }},
	{"h", func(o *Offset, n int) { o.Clock = time.Duration(n) * time.Hour }},
	{"m", func(o *Offset, n int) { o.Clock = time.Duration(n) * time.Minute }},
	{"s", func(o *Offset, n int) { o.Clock = time.Duration(n) * time.Second }},
}

// ParseOffset parses an offset of the form [+|-]N<unit> where unit is one of
// y, mo, w, d, h, m (or min) and s. Units are case-insensitive.
//
//	ParseOffset("+3d")  // three days ahead
//	ParseOffset("-2w")  // two weeks back
//	ParseOffset("1mo")  // one month ahead
func ParseOffset(s string) (Offset, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	for _, u := range units {
		num, ok := strings.CutSuffix(raw, u.suffix)
		if !ok || num == "" || num == "+" || num == "-" {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		var o Offset
		u.apply(&o, n)
		return o, nil
	}
	return Offset{}, fmt.Errorf("%w: %q is not an offset", ErrInvalidExpression, s)
}

// From applies o to now. Clock offsets (h, m, s) are relative to now
// itself; calendar offsets (y, mo, w, d) are relative to the start of now's
// day.
func (o Offset) From(now time.Time) time.Time {
	if !o.calendar && o.Years == 0 && o.Months == 0 && o.Days == 0 {
		return now.Add(o.Clock)
	}
	return StartOfDay(now).AddDate(o.Years, o.Months, o.Days).Add(o.Clock)
}

// IsZero reports whether o moves nothing.
func (o Offset) IsZero() bool {
	return o.Years == 0 && o.Months == 0 && o.Days == 0 && o.Clock == 0
}
