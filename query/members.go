package query

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// MemberFunc implements a custom member for [Member] projection. target is
// the element being projected and args are the arguments given to [Member].
//
// Returning a nil value (or false) omits the element from the output; a
// non-nil error is an element-level miss.
type MemberFunc func(target any, args ...any) (any, error)

// Members is a table of custom members consulted by [Project] before
// reflection. It lets callers give elements members their Go types do not
// have, e.g. a computed "FullName" on a struct or "Length" on a string.
//
// A Members value has an explicit lifecycle: create it with [NewMembers]
// (or [NewStringMembers] for the built-in string members), pass it with
// [WithMembers], and [Members.Reset] it when done. There is no global table.
// All methods are safe for concurrent use.
type Members struct {
	mu    sync.RWMutex
	funcs map[string]memberEntry
}

type memberEntry struct {
	name string
	fn   MemberFunc
}

// NewMembers returns an empty member table.
func NewMembers() *Members {
	return &Members{funcs: make(map[string]memberEntry)}
}

// Define adds or replaces the member name. Names are matched
// case-insensitively.
func (m *Members) Define(name string, fn MemberFunc) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: member name must not be empty", ErrInvalidArgument)
	}
	if fn == nil {
		return fmt.Errorf("%w: member %q has a nil function", ErrInvalidArgument, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.funcs[strings.ToLower(name)] = memberEntry{name: name, fn: fn}
	return nil
}

// Remove deletes the member name if present.
func (m *Members) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.funcs, strings.ToLower(name))
}

// Has reports whether name is defined.
func (m *Members) Has(name string) bool {
	_, ok := m.lookup(name)
	return ok
}

// Names returns the defined member names, sorted.
func (m *Members) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.funcs))
	for _, e := range m.funcs {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// Reset removes every member.
func (m *Members) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.funcs = make(map[string]memberEntry)
}

func (m *Members) lookup(name string) (MemberFunc, bool) {
	if m == nil {
		return nil, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.funcs[strings.ToLower(name)]
	return e.fn, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in string members
// ─────────────────────────────────────────────────────────────────────────────

// NewStringMembers returns a member table preloaded with the string members
// that [Project] also resolves on its own for string elements: Length,
// ToUpper, ToLower, Trim, TrimStart, TrimEnd, Contains, StartsWith, EndsWith,
// Replace, Split and Substring. It is a starting point for tables that add
// more members; each built-in applies only to string elements.
func NewStringMembers() *Members {
	m := NewMembers()
	for name, fn := range stringMembers {
		_ = m.Define(name, fn)
	}
	return m
}

var stringMembers = map[string]MemberFunc{
	"Length":  onString(0, func(s string, _ []string) any { return utf8.RuneCountInString(s) }),
	"ToUpper": onString(0, func(s string, _ []string) any { return strings.ToUpper(s) }),
	"ToLower": onString(0, func(s string, _ []string) any { return strings.ToLower(s) }),
	"Trim":    onString(0, func(s string, _ []string) any { return strings.TrimSpace(s) }),
	"TrimStart": onString(0, func(s string, _ []string) any {
		return strings.TrimLeftFunc(s, isSpace)
	}),
	"TrimEnd": onString(0, func(s string, _ []string) any {
		return strings.TrimRightFunc(s, isSpace)
	}),
	"Contains":   onString(1, func(s string, a []string) any { return strings.Contains(s, a[0]) }),
	"StartsWith": onString(1, func(s string, a []string) any { return strings.HasPrefix(s, a[0]) }),
	"EndsWith":   onString(1, func(s string, a []string) any { return strings.HasSuffix(s, a[0]) }),
	"Replace":    onString(2, func(s string, a []string) any { return strings.ReplaceAll(s, a[0], a[1]) }),
	"Split":      onString(1, func(s string, a []string) any { return strings.Split(s, a[0]) }),
	"Substring":  substring,
}

func lookupStringMember(name string) (MemberFunc, bool) {
	if fn, ok := stringMembers[name]; ok {
		return fn, true
	}
	for n, fn := range stringMembers {
		if strings.EqualFold(n, name) {
			return fn, true
		}
	}
	return nil, false
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

func onString(arity int, fn func(string, []string) any) MemberFunc {
	return func(target any, args ...any) (any, error) {
		s, ok := target.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a string", ErrMemberNotFound, target)
		}
		if len(args) != arity {
			return nil, fmt.Errorf("%w: want %d argument(s), got %d", ErrBadArguments, arity, len(args))
		}
		strArgs := make([]string, len(args))
		for i, a := range args {
			strArgs[i] = fmt.Sprint(a)
		}
		return fn(s, strArgs), nil
	}
}

// substring takes a start index and an optional length, counted in runes.
func substring(target any, args ...any) (any, error) {
	s, ok := target.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a string", ErrMemberNotFound, target)
	}
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("%w: Substring takes 1 or 2 arguments", ErrBadArguments)
	}
	runes := []rune(s)
	start, err := toInt64(args[0])
	if err != nil || start < 0 || start > int64(len(runes)) {
		return nil, fmt.Errorf("%w: start %v out of range", ErrBadArguments, args[0])
	}
	end := int64(len(runes))
	if len(args) == 2 {
		n, err := toInt64(args[1])
		if err != nil || n < 0 || n > end-start {
			return nil, fmt.Errorf("%w: length %v out of range", ErrBadArguments, args[1])
		}
		end = start + n
	}
	return string(runes[start:end]), nil
}
