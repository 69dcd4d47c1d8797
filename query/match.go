package query

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchAny returns the elements whose fmt.Sprint form matches at least one
// of the regular expressions in patterns. Matching ignores case; use
// [MatchAnyCase] to respect it. Patterns are compiled before any element is
// examined, so a bad pattern fails with [ErrInvalidPattern] and no result.
func MatchAny[S ~[]T, T any](items S, patterns ...string) ([]T, error) {
	return matchAny(items, patterns, true)
}

// MatchAnyCase is [MatchAny] with case-sensitive matching.
func MatchAnyCase[S ~[]T, T any](items S, patterns ...string) ([]T, error) {
	return matchAny(items, patterns, false)
}

// LikeAny returns the elements whose fmt.Sprint form matches at least one
// wildcard pattern. A pattern must match the whole string: * matches any run
// of characters, ? a single character, [abc] and [a-z] a set or range, and a
// backtick escapes the next character. Matching ignores case; use
// [LikeAnyCase] to respect it.
func LikeAny[S ~[]T, T any](items S, patterns ...string) ([]T, error) {
	return likeAny(items, patterns, true)
}

// LikeAnyCase is [LikeAny] with case-sensitive matching.
func LikeAnyCase[S ~[]T, T any](items S, patterns ...string) ([]T, error) {
	return likeAny(items, patterns, false)
}

func matchAny[T any](items []T, patterns []string, fold bool) ([]T, error) {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		src := p
		if fold {
			src = "(?i)" + p
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
		}
		res[i] = re
	}
	return anyRegexp(items, res), nil
}

func likeAny[T any](items []T, patterns []string, fold bool) ([]T, error) {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		re, err := CompileWildcard(p, fold)
		if err != nil {
			return nil, err
		}
		res[i] = re
	}
	return anyRegexp(items, res), nil
}

func anyRegexp[T any](items []T, res []*regexp.Regexp) []T {
	out := make([]T, 0)
	if len(res) == 0 {
		return out
	}
	for _, item := range items {
		s := fmt.Sprint(item)
		for _, re := range res {
			if re.MatchString(s) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// CompileWildcard translates a wildcard pattern (see [LikeAny]) into an
// anchored regular expression.
func CompileWildcard(pattern string, fold bool) (*regexp.Regexp, error) {
	var b strings.Builder
	if fold {
		b.WriteString("(?i)")
	}
	b.WriteString(`\A`)

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '*':
			b.WriteString(`(?s:.*)`)
		case '?':
			b.WriteString(`(?s:.)`)
		case '`':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("%w: %q: trailing escape", ErrInvalidPattern, pattern)
			}
			i++
			b.WriteString(regexp.QuoteMeta(string(runes[i])))
		case '[':
			end, class, err := wildcardClass(runes, i)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
			}
			b.WriteString(class)
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`\z`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

// wildcardClass converts the bracket expression starting at runes[start]
// and returns the index of its closing bracket.
func wildcardClass(runes []rune, start int) (int, string, error) {
	var b strings.Builder
	b.WriteByte('[')
	members := 0
	for i := start + 1; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == ']' && members > 0:
			b.WriteByte(']')
			return i, b.String(), nil
		case r == '`' && i+1 < len(runes):
			i++
			b.WriteString(escapeClassRune(runes[i]))
		case r == '-' && members > 0 && i+1 < len(runes) && runes[i+1] != ']':
			b.WriteByte('-')
			continue
		default:
			b.WriteString(escapeClassRune(r))
		}
		members++
	}
	return 0, "", fmt.Errorf("unterminated [ at %d", start)
}

func escapeClassRune(r rune) string {
	switch r {
	case '\\', ']', '[', '^', '-':
		return `\` + string(r)
	}
	return string(r)
}
