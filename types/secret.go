package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

const redacted = "[REDACTED]"

// SecretKey holds key material for a connector. It never prints, logs or serializes its
// contents, and Zero overwrites the bytes in place once the key is no longer needed.
type SecretKey struct {
	mu  sync.RWMutex
	key []byte
}

// NewSecretKey copies raw into a new SecretKey. The caller keeps ownership of raw.
func NewSecretKey(raw []byte) *SecretKey {
	key := make([]byte, len(raw))
	copy(key, raw)

	return &SecretKey{key: key}
}

// NewSecretKeyFromString creates a SecretKey from its textual form (hex, bech32, ...). The
// string is trimmed of surrounding whitespace.
func NewSecretKeyFromString(s string) *SecretKey {
	return NewSecretKey([]byte(strings.TrimSpace(s)))
}

// Use calls fn with the key bytes. fn must not retain the slice.
func (s *SecretKey) Use(fn func(key []byte) error) error {
	if s == nil {
		return fn(nil)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.key)
}

// Empty reports whether the key holds no material, either because none was given or
// because it was zeroed.
func (s *SecretKey) Empty() bool {
	if s == nil {
		return true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.key) == 0
}

// Zero overwrites the key bytes and releases them.
func (s *SecretKey) Zero() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
}

func (s *SecretKey) String() string {
	return redacted
}

func (s *SecretKey) GoString() string {
	return redacted
}

// Format keeps %v, %+v, %#v, %s and %x from reaching the key bytes.
func (s *SecretKey) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(redacted))
}

func (s *SecretKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

func (s *SecretKey) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}
