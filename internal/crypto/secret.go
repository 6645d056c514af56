package crypto

import (
	"runtime"
	"sync"
)

// redacted is what a Secret prints as.
const redacted = "[REDACTED]"

// Secret owns a private copy of sensitive bytes (a master password, a
// derived key, a revealed plaintext) and overwrites it on Destroy.
//
// On unix the backing page is mlocked on a best-effort basis so it is not
// swapped out; failures to lock are ignored. A Secret formats as
// "[REDACTED]" so it cannot leak through logging or %v.
//
// The zero value is an empty, already usable Secret.
type Secret struct {
	mu        sync.Mutex
	buf       []byte
	locked    bool
	destroyed bool
}

// NewSecret copies b into a new Secret. The caller keeps ownership of b and
// should Wipe it if it is sensitive.
func NewSecret(b []byte) *Secret {
	s := &Secret{buf: make([]byte, len(b))}
	copy(s.buf, b)
	s.locked = lockMemory(s.buf)
	return s
}

// NewSecretString copies s into a new Secret.
func NewSecretString(s string) *Secret {
	return NewSecret([]byte(s))
}

// Bytes returns the backing slice. It stays valid until Destroy, after which
// it reads as zeros. Callers must not retain it past the Secret's lifetime.
func (s *Secret) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf
}

// Expose returns the contents as a string. The string is an ordinary Go value
// that cannot be wiped; use it only at the final display boundary.
func (s *Secret) Expose() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return string(s.buf)
}

// Len returns the number of bytes held.
func (s *Secret) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.buf)
}

// Clone returns an independent copy, or ErrSecretDestroyed.
func (s *Secret) Clone() (*Secret, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil, ErrSecretDestroyed
	}

	return NewSecret(s.buf), nil
}

// Destroy zeroes and unlocks the backing memory. It is idempotent and safe
// to call on a nil Secret.
func (s *Secret) Destroy() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}

	Wipe(s.buf)
	if s.locked {
		unlockMemory(s.buf)
		s.locked = false
	}
	s.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (s *Secret) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.destroyed
}

// String implements fmt.Stringer without revealing the contents.
func (s *Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer without revealing the contents.
func (s *Secret) GoString() string {
	return redacted
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
