package crypto

import "errors"

var (
	// ErrIntegrityOrKey is returned when an envelope cannot be opened.
	// A wrong master password and a corrupted or tampered envelope are
	// reported identically; callers must not try to tell them apart.
	ErrIntegrityOrKey = errors.New("unable to decrypt: wrong master password or corrupted data")

	// ErrInvalidSalt is returned by DeriveKey when the salt is not SaltSize bytes.
	ErrInvalidSalt = errors.New("invalid key derivation salt")

	// ErrInvalidBase64 is returned by Base64ToBuffer for input that is not
	// standard padded base64.
	ErrInvalidBase64 = errors.New("invalid base64 input")

	// ErrSecretDestroyed is returned when a destroyed Secret is used.
	ErrSecretDestroyed = errors.New("secret has been destroyed")
)
