package vault

import (
	"errors"

	"github.com/MKhiriev/go-family-vault/models"
)

var (
	// ErrAuthorization is returned when there is no authenticated user, or
	// when an owner-only operation is attempted by someone else.
	ErrAuthorization = errors.New("not authorized")

	// ErrStore classifies every record store failure. The cause stays in the
	// chain: fmt.Errorf("%w: %w", ErrStore, cause).
	ErrStore = errors.New("record store failure")

	// ErrVaultLocked is returned by operations that need the master password
	// while the session is locked.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrEmptyMasterPassword is returned by Unlock for empty input.
	ErrEmptyMasterPassword = errors.New("master password must not be empty")

	// ErrNoFamily is returned when saving while the caller has not created
	// or joined a family.
	ErrNoFamily = errors.New("no family found")

	// ErrItemNotFound is returned when an item is not visible to the caller.
	ErrItemNotFound = errors.New("vault item not found")

	// ErrInvalidInput is returned for empty identifiers or titles and for
	// malformed envelopes, before the record store is called.
	ErrInvalidInput = errors.New("invalid vault input")

	// ErrShareVersionConflict is returned when another session replaced the
	// grant set since the caller last read the item.
	ErrShareVersionConflict = models.ErrShareVersionConflict
)
