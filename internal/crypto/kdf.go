package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KDFIterations is the PBKDF2 work factor. It is part of the envelope
	// format: changing it makes every stored envelope undecryptable.
	KDFIterations = 100_000

	// KeySize is the derived key length (AES-256).
	KeySize = 32

	// SaltSize is the length of the random per-envelope salt.
	SaltSize = 16

	// IVSize is the length of the random per-envelope GCM nonce.
	IVSize = 12
)

// DeriveKey turns a master password and a salt into an AES-256 key using
// PBKDF2-HMAC-SHA256. The result is deterministic for identical inputs.
// An empty password is accepted; length policy belongs to the caller.
// The caller should zero the returned key once done with it.
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidSalt, SaltSize, len(salt))
	}

	return deriveKey(password, salt, KDFIterations), nil
}

func deriveKey(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, KeySize, sha256.New)
}
