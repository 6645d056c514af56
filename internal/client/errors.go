package client

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-family-vault/internal/adapter"
	"github.com/MKhiriev/go-family-vault/internal/crypto"
	"github.com/MKhiriev/go-family-vault/internal/vault"
)

var (
	// ErrNoSession is returned by [SessionFile.Load] when nobody is logged in.
	ErrNoSession = errors.New("no saved session")

	// ErrPasswordMismatch is returned when a confirmation prompt differs.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrEmptyInput is returned when a prompt is answered with nothing.
	ErrEmptyInput = errors.New("input must not be empty")
)

// HumanizeError turns an error into the line printed to the user. Causes
// that could carry secrets never reach this point: the vault core reports
// decryption failures without detail.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, crypto.ErrIntegrityOrKey):
		return "Could not unlock this secret: wrong master password or damaged data"
	case errors.Is(err, vault.ErrNoFamily):
		return "No family found: create or join a family first"
	case errors.Is(err, vault.ErrShareVersionConflict):
		return "The share list was changed elsewhere, run the command again"
	case errors.Is(err, vault.ErrVaultLocked):
		return "The vault is locked"
	case errors.Is(err, vault.ErrItemNotFound):
		return "Secret not found"
	case errors.Is(err, adapter.ErrNotLoggedIn):
		return "Not logged in: run `family-vault login`"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Login failed or session expired: run `family-vault login`"
	case errors.Is(err, vault.ErrAuthorization), errors.Is(err, adapter.ErrForbidden):
		return "Only the owner of a secret can change it"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Too many attempts, wait a moment and retry"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
