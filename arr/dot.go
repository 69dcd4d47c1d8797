package arr

import (
	"sort"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens a nested map[string]any into a single-level map whose keys
// are dot-joined paths.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
//
// An empty nested map is kept as a value so that it is not lost.
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			key := joinKey(prefix, k)
			if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
				walk(key, nested)
				continue
			}
			out[key] = v
		}
	}
	walk("", m)
	return out
}

// Keys returns the dot-notation keys of m in sorted order.
func Keys(m map[string]any) []string {
	flat := Dot(m)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the value at the dot-notation key and whether it exists.
func Lookup(m map[string]any, key string) (any, bool) {
	parent, last, ok := descend(m, key, false)
	if !ok {
		return nil, false
	}
	v, ok := parent[last]
	return v, ok
}

// Get returns the value at the dot-notation key, or def[0] (or nil) when it
// does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	if v, ok := Lookup(m, key); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Set writes value at the dot-notation key, creating intermediate maps and
// replacing non-map values on the way.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, key string, value any) {
	parent, last, _ := descend(m, key, true)
	parent[last] = value
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := Lookup(m, key)
	return ok
}

// Forget removes the dot-notation key from m. Intermediate maps are kept.
func Forget(m map[string]any, key string) {
	if parent, last, ok := descend(m, key, false); ok {
		delete(parent, last)
	}
}

// ResolveKey maps name onto an existing key of m. An existing dot-notation
// path wins; otherwise a top-level key equal to name ignoring case is
// returned. When nothing matches, name itself is returned with false.
func ResolveKey(m map[string]any, name string) (string, bool) {
	if Has(m, name) {
		return name, true
	}
	for k := range m {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}
	return name, false
}

// descend walks all but the last segment of key. With create set it builds
// missing maps and always succeeds.
func descend(m map[string]any, key string, create bool) (map[string]any, string, bool) {
	segments := strings.Split(key, ".")
	current := m
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := current[seg].(map[string]any)
		if !ok {
			if !create {
				return nil, "", false
			}
			nested = make(map[string]any)
			current[seg] = nested
		}
		current = nested
	}
	return current, segments[len(segments)-1], true
}

func joinKey(prefix, k string) string {
	if prefix == "" {
		return k
	}
	return prefix + "." + k
}
