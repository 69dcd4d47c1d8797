package query

import (
	"fmt"
	"strings"
)

// Mode selects how [Filter] chooses and bounds its output.
type Mode int

const (
	// Default returns every matching element, capped at count when count > 0.
	Default Mode = iota
	// First returns the first count matches (default 1).
	First
	// Last returns the last count matches (default 1) in input order.
	Last
	// SkipUntil drops elements until the first match, then returns that
	// element and everything after it, capped at count.
	SkipUntil
	// Until returns the elements before the first match, capped at count.
	Until
	// Split partitions the input into matches (capped at count) and the rest.
	Split
)

var modeNames = [...]string{
	Default:   "Default",
	First:     "First",
	Last:      "Last",
	SkipUntil: "SkipUntil",
	Until:     "Until",
	Split:     "Split",
}

// Modes returns every valid mode in declaration order.
func Modes() []Mode {
	return []Mode{Default, First, Last, SkipUntil, Until, Split}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool { return m >= Default && m <= Split }

// String returns the mode name, or "Mode(n)" for an unknown value.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses a mode name case-insensitively. The empty string parses
// as [Default].
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default, nil
	}
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], so modes can be read
// from TOML, YAML or JSON configuration by name.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// limit resolves count against the mode default. A negative result means
// unbounded.
func (m Mode) limit(count int) int {
	if count > 0 {
		return count
	}
	switch m {
	case First, Last:
		return 1
	default:
		return -1
	}
}

func checkArgs(mode Mode, count int) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	return nil
}
