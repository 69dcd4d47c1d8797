package secure

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"
)

const redacted = "[redacted]"

// String is an in-memory encrypted string. The zero value is an empty,
// usable String. A String must not be copied after first use.
type String struct {
	mu      sync.RWMutex
	key     []byte
	nonce   []byte
	sealed  []byte
	runes   int
	cleared bool
}

// New seals plaintext into a new String.
func New(plaintext string) (*String, error) {
	return FromBytes([]byte(plaintext))
}

// FromBytes seals b into a new String and zeroes b.
func FromBytes(b []byte) (*String, error) {
	defer wipe(b)
	s := &String{}
	if err := s.seal(b); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *String) seal(plain []byte) error {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return fmt.Errorf("secure: generating key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return fmt.Errorf("secure: creating cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("secure: generating nonce: %w", err)
	}
	s.key = key
	s.nonce = nonce
	s.sealed = aead.Seal(nil, nonce, plain, nil)
	s.runes = utf8.RuneCount(plain)
	return nil
}

// open returns the plaintext bytes; the caller must wipe them.
func (s *String) open() ([]byte, error) {
	if s.cleared {
		return nil, ErrCleared
	}
	if s.key == nil {
		return []byte{}, nil
	}
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("secure: creating cipher: %w", err)
	}
	plain, err := aead.Open(nil, s.nonce, s.sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	return plain, nil
}

// Plain returns the plaintext.
func (s *String) Plain() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plain, err := s.open()
	if err != nil {
		return "", err
	}
	defer wipe(plain)
	return string(plain), nil
}

// Len returns the length of the plaintext in characters, or 0 after Clear.
func (s *String) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cleared {
		return 0
	}
	return s.runes
}

// Equal reports whether s and other hold the same plaintext. The comparison
// is constant-time in the plaintext length.
func (s *String) Equal(other *String) (bool, error) {
	if other == nil {
		return false, nil
	}
	a, err := s.bytes()
	if err != nil {
		return false, err
	}
	defer wipe(a)
	b, err := other.bytes()
	if err != nil {
		return false, err
	}
	defer wipe(b)
	return subtle.ConstantTimeCompare(a, b) == 1, nil
}

// EqualString reports whether s holds plaintext.
func (s *String) EqualString(plaintext string) (bool, error) {
	a, err := s.bytes()
	if err != nil {
		return false, err
	}
	defer wipe(a)
	return subtle.ConstantTimeCompare(a, []byte(plaintext)) == 1, nil
}

func (s *String) bytes() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open()
}

// Clear zeroes the key and ciphertext. Later reads return [ErrCleared].
// Clear is idempotent.
func (s *String) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	wipe(s.key)
	wipe(s.nonce)
	wipe(s.sealed)
	s.key, s.nonce, s.sealed = nil, nil, nil
	s.runes = 0
	s.cleared = true
}

// IsCleared reports whether Clear has been called.
func (s *String) IsCleared() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cleared
}

// String implements fmt.Stringer without revealing the value.
func (s *String) String() string { return redacted }

// GoString implements fmt.GoStringer without revealing the value.
func (s *String) GoString() string { return "secure.String(" + redacted + ")" }

// MarshalText implements encoding.TextMarshaler without revealing the value,
// so a String embedded in a JSON or YAML document never leaks.
func (s *String) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// LogValue implements slog.LogValuer.
func (s *String) LogValue() slog.Value { return slog.StringValue(redacted) }

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
