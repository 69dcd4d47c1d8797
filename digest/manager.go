package digest

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"iter"
	"sort"
	"strings"
	"sync"
)

// Manager is a thread-safe registry of digest algorithms with a default.
//
// Register named [Factory] constructors, nominate a default with
// [Manager.SetDefault], then hash through [Manager.String], [Manager.Bytes]
// or [Manager.Reader], or take a [Hasher] for a specific algorithm with
// [Manager.Hasher]. Names are matched case-insensitively and common aliases
// ("sha-256", "SHA256") resolve through [ParseAlgorithm].
//
// # Output
//
// Every digest is lower-case hex of the raw hash sum. The built-ins are pure
// Go, so a given input produces the same string on every platform and
// architecture. [Manager.Verify] compares in constant time and accepts
// upper-case expected values.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises Register and SetDefault while hashing calls
// proceed concurrently under the read lock. A fresh hash.Hash is created for
// every call, so Hashers can be shared freely.
type Manager struct {
	mu    sync.RWMutex
	algos map[Algorithm]Factory
	def   Algorithm
}

// NewManager creates an empty Manager whose default is def. Algorithms must
// be registered with [Manager.Register] before use.
func NewManager(def Algorithm) *Manager {
	return &Manager{
		algos: make(map[Algorithm]Factory),
		def:   ParseAlgorithm(string(def)),
	}
}

// NewDefaultManager creates a Manager with every built-in algorithm
// registered and md5 as the default.
func NewDefaultManager() *Manager {
	m := NewManager(AlgMD5)
	for name, f := range builtins {
		_ = m.Register(name, f)
	}
	return m
}

// Register adds or replaces the algorithm name.
func (m *Manager) Register(name Algorithm, f Factory) error {
	name = ParseAlgorithm(string(name))
	if name == "" {
		return ErrEmptyName
	}
	if f == nil {
		return ErrNilFactory
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.algos[name] = f
	return nil
}

// Has reports whether name is registered.
func (m *Manager) Has(name Algorithm) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.algos[ParseAlgorithm(string(name))]
	return ok
}

// Names returns the registered algorithm names, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.algos))
	for n := range m.algos {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return names
}

// SetDefault changes the algorithm used by the String, Bytes, Reader and
// Verify methods. The algorithm must already be registered.
func (m *Manager) SetDefault(name Algorithm) error {
	name = ParseAlgorithm(string(name))
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.algos[name]; !ok {
		return fmt.Errorf("%w: %q is not registered", ErrUnknownAlgorithm, name)
	}
	m.def = name
	return nil
}

// Default returns the default algorithm name.
func (m *Manager) Default() Algorithm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// Hasher returns a Hasher bound to name.
func (m *Manager) Hasher(name Algorithm) (Hasher, error) {
	name = ParseAlgorithm(string(name))
	m.mu.RLock()
	f, ok := m.algos[name]
	m.mu.RUnlock()
	if !ok {
		return Hasher{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return Hasher{name: name, factory: f}, nil
}

// String returns the hex digest of s with the default algorithm.
func (m *Manager) String(s string) (string, error) {
	h, err := m.defaultHasher()
	if err != nil {
		return "", err
	}
	return h.String(s), nil
}

// Bytes returns the hex digest of b with the default algorithm.
func (m *Manager) Bytes(b []byte) (string, error) {
	h, err := m.defaultHasher()
	if err != nil {
		return "", err
	}
	return h.Bytes(b), nil
}

// Reader returns the hex digest of everything read from r with the default
// algorithm.
func (m *Manager) Reader(r io.Reader) (string, error) {
	h, err := m.defaultHasher()
	if err != nil {
		return "", err
	}
	return h.Reader(r)
}

// Verify reports whether s hashes to expected (hex, any case) under the
// default algorithm. The comparison is constant-time.
func (m *Manager) Verify(s, expected string) (bool, error) {
	h, err := m.defaultHasher()
	if err != nil {
		return false, err
	}
	return h.Verify(s, expected)
}

func (m *Manager) defaultHasher() (Hasher, error) {
	return m.Hasher(m.Default())
}

// Hasher computes digests with one algorithm.
type Hasher struct {
	name    Algorithm
	factory Factory
}

// Algorithm returns the algorithm name.
func (h Hasher) Algorithm() Algorithm { return h.name }

// Bytes returns the lower-case hex digest of b.
func (h Hasher) Bytes(b []byte) string {
	d := h.factory()
	d.Write(b)
	return hex.EncodeToString(d.Sum(nil))
}

// String returns the lower-case hex digest of the UTF-8 bytes of s.
func (h Hasher) String(s string) string {
	d := h.factory()
	io.WriteString(d, s)
	return hex.EncodeToString(d.Sum(nil))
}

// Reader returns the hex digest of everything read from r.
func (h Hasher) Reader(r io.Reader) (string, error) {
	d := h.factory()
	if _, err := io.Copy(d, r); err != nil {
		return "", fmt.Errorf("digest: reading input: %w", err)
	}
	return hex.EncodeToString(d.Sum(nil)), nil
}

// Each returns the digest of every string in items, lazily and in order.
func (h Hasher) Each(items iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s := range items {
			if !yield(h.String(s)) {
				return
			}
		}
	}
}

// Verify reports whether s hashes to expected (hex, any case). The
// comparison is constant-time.
func (h Hasher) Verify(s, expected string) (bool, error) {
	want, err := hex.DecodeString(strings.TrimSpace(expected))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	d := h.factory()
	io.WriteString(d, s)
	return subtle.ConstantTimeCompare(d.Sum(nil), want) == 1, nil
}

// MD5 returns the lower-case hex MD5 digest of s.
func MD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
