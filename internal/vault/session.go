// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-family-vault/internal/crypto"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/models"
)

// State is the lock state of a [Session].
type State int

const (
	// StateLocked is the initial state: no master password is held.
	StateLocked State = iota
	// StateUnlocked means a non-empty master password is held. It says
	// nothing about the password being correct; see [Session.Verified].
	StateUnlocked
)

func (s State) String() string {
	if s == StateUnlocked {
		return "unlocked"
	}
	return "locked"
}

// Session is the vault session controller.
//
// Unlock accepts any non-empty password and performs no verification; the
// first successful decryption marks the session Verified. A wrong password
// surfaces only as [crypto.ErrIntegrityOrKey] when revealing.
//
// The mutex guards the password, the verified flag, the reveal view state
// and the activity clock. Cryptographic and store calls run outside the lock
// on a private copy of the password that is wiped when the call returns.
type Session struct {
	identity IdentityProvider
	profiles ProfileSource
	items    ItemStore
	sharing  SharingManager
	cipher   crypto.VaultCipher
	logger   *logger.Logger
	now      func() time.Time

	mu           sync.Mutex
	state        State
	password     *crypto.Secret
	verified     bool
	revealed     map[string]*crypto.Secret
	lastActivity time.Time
	// generation counts Unlock calls so that a decryption started under an
	// older password cannot mark the current one verified.
	generation uint64
}

func NewSession(
	identity IdentityProvider,
	profiles ProfileSource,
	items ItemStore,
	sharing SharingManager,
	cipher crypto.VaultCipher,
	log *logger.Logger,
) *Session {
	return &Session{
		identity: identity,
		profiles: profiles,
		items:    items,
		sharing:  sharing,
		cipher:   cipher,
		logger:   log,
		now:      time.Now,
		state:    StateLocked,
		revealed: make(map[string]*crypto.Secret),
	}
}

// State returns the current lock state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Verified reports whether the held password has decrypted at least one
// item since the last Unlock.
func (s *Session) Verified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verified
}

// LastActivity returns the time of the last operation that used the session.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Unlock copies password into the session. The caller keeps ownership of
// password and should wipe it. Unlocking an unlocked session replaces the
// password and clears the verified flag and every revealed plaintext.
func (s *Session) Unlock(password []byte) error {
	if len(password) == 0 {
		return ErrEmptyMasterPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()
	s.password = crypto.NewSecret(password)
	s.state = StateUnlocked
	s.generation++
	s.lastActivity = s.now()

	s.logger.Info().Str("func", "Session.Unlock").Msg("vault unlocked")
	return nil
}

// Lock destroys the password and every revealed plaintext.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateLocked {
		return
	}

	s.clearLocked()
	s.state = StateLocked
	s.generation++
	s.logger.Info().Str("func", "Session.Lock").Msg("vault locked")
}

// clearLocked requires s.mu.
func (s *Session) clearLocked() {
	s.password.Destroy()
	s.password = nil
	s.verified = false
	for id, secret := range s.revealed {
		secret.Destroy()
		delete(s.revealed, id)
	}
}

// passwordCopy returns a private copy of the master password, to be
// destroyed by the caller, and the generation it belongs to.
func (s *Session) passwordCopy() (*crypto.Secret, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked {
		return nil, 0, ErrVaultLocked
	}
	s.lastActivity = s.now()

	password, err := s.password.Clone()
	if err != nil {
		return nil, 0, ErrVaultLocked
	}
	return password, s.generation, nil
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActivity = s.now()
	s.mu.Unlock()
}

// currentUser maps a missing identity to ErrAuthorization.
func (s *Session) currentUser(ctx context.Context) (*models.Identity, error) {
	identity, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthorization, err)
	}
	if identity == nil || identity.ID == "" {
		return nil, ErrAuthorization
	}

	s.touch()
	return identity, nil
}

// SaveSecret encrypts plaintext under the master password and stores it in
// the caller's family. Nothing is persisted unless every step succeeds.
// The caller keeps ownership of plaintext.
func (s *Session) SaveSecret(ctx context.Context, title string, plaintext []byte) (models.VaultItem, error) {
	password, _, err := s.passwordCopy()
	if err != nil {
		return models.VaultItem{}, err
	}
	defer password.Destroy()

	identity, err := s.currentUser(ctx)
	if err != nil {
		return models.VaultItem{}, err
	}

	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if !profile.HasFamily() {
		return models.VaultItem{}, ErrNoFamily
	}

	envelope, err := s.cipher.Encrypt(plaintext, password.Bytes())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Session.SaveSecret").Msg("failed to encrypt secret")
		return models.VaultItem{}, fmt.Errorf("encrypt secret: %w", err)
	}

	return s.items.CreateItem(ctx, identity.ID, *profile.FamilyID, title, envelope)
}

// RevealSecret decrypts item. The returned Secret belongs to the caller,
// who must Destroy it. On failure the error is [crypto.ErrIntegrityOrKey]
// and carries neither plaintext nor password.
func (s *Session) RevealSecret(ctx context.Context, item models.VaultItem) (*crypto.Secret, error) {
	password, generation, err := s.passwordCopy()
	if err != nil {
		return nil, err
	}
	defer password.Destroy()

	if _, err = s.currentUser(ctx); err != nil {
		return nil, err
	}

	secret, err := s.cipher.Decrypt(item.Envelope, password.Bytes())
	if err != nil {
		logger.FromContext(ctx).Warn().Str("func", "Session.RevealSecret").Str("item_id", item.ID).Msg("unable to decrypt item")
		return nil, crypto.ErrIntegrityOrKey
	}

	s.mu.Lock()
	if s.generation == generation {
		s.verified = true
	}
	s.mu.Unlock()

	return secret, nil
}

// ToggleReveal flips the view state of item. When the item is hidden it is
// decrypted and kept in the session until toggled again or the session
// locks; shown is true and the returned Secret must not be destroyed by the
// caller. When it is shown, its plaintext is wiped and shown is false.
func (s *Session) ToggleReveal(ctx context.Context, item models.VaultItem) (secret *crypto.Secret, shown bool, err error) {
	s.mu.Lock()
	if existing, ok := s.revealed[item.ID]; ok {
		existing.Destroy()
		delete(s.revealed, item.ID)
		s.lastActivity = s.now()
		s.mu.Unlock()
		return nil, false, nil
	}
	s.mu.Unlock()

	secret, err = s.RevealSecret(ctx, item)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked {
		secret.Destroy()
		return nil, false, ErrVaultLocked
	}
	if existing, ok := s.revealed[item.ID]; ok {
		secret.Destroy()
		return existing, true, nil
	}
	s.revealed[item.ID] = secret

	return secret, true, nil
}

// Revealed reports whether item is currently shown.
func (s *Session) Revealed(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revealed[itemID]
	return ok
}

// ShareItem replaces the grant set of an item the caller owns and returns
// the item with its new share version. The master password is not needed.
func (s *Session) ShareItem(ctx context.Context, item models.VaultItem, memberIDs []string) (models.VaultItem, error) {
	if err := s.requireOwner(ctx, item); err != nil {
		return models.VaultItem{}, err
	}

	version, err := s.sharing.SetShares(ctx, item.ID, item.ShareVersion, memberIDs)
	if err != nil {
		return models.VaultItem{}, err
	}

	item.ShareVersion = version
	return item, nil
}

// DeleteSecret removes every grant of an owned item and then the item. When
// grant removal fails the item is left untouched.
func (s *Session) DeleteSecret(ctx context.Context, item models.VaultItem) error {
	if err := s.requireOwner(ctx, item); err != nil {
		return err
	}

	if err := s.sharing.RemoveAllGrants(ctx, item.ID); err != nil {
		return err
	}
	if err := s.items.DeleteItem(ctx, item.ID); err != nil {
		return err
	}

	s.mu.Lock()
	if secret, ok := s.revealed[item.ID]; ok {
		secret.Destroy()
		delete(s.revealed, item.ID)
	}
	s.mu.Unlock()

	return nil
}

func (s *Session) requireOwner(ctx context.Context, item models.VaultItem) error {
	identity, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	if item.OwnerID != identity.ID {
		logger.FromContext(ctx).Warn().Str("func", "Session.requireOwner").Str("item_id", item.ID).Msg("caller does not own item")
		return fmt.Errorf("%w: only the owner may change this item", ErrAuthorization)
	}
	return nil
}

// ListMyItems returns the caller's own items, newest first.
func (s *Session) ListMyItems(ctx context.Context) ([]models.VaultItem, error) {
	identity, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.items.ListOwnedItems(ctx, identity.ID)
}

// ListSharedWithMe returns items other members shared with the caller.
func (s *Session) ListSharedWithMe(ctx context.Context) ([]models.VaultItem, error) {
	identity, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.items.ListSharedItems(ctx, identity.ID)
}

// FamilyMembers lists the caller's family, e.g. for choosing share
// recipients.
func (s *Session) FamilyMembers(ctx context.Context) ([]models.Profile, error) {
	if _, err := s.currentUser(ctx); err != nil {
		return nil, err
	}

	members, err := s.profiles.ListFamilyMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return members, nil
}

// Item returns one item visible to the caller.
func (s *Session) Item(ctx context.Context, itemID string) (models.VaultItem, error) {
	if _, err := s.currentUser(ctx); err != nil {
		return models.VaultItem{}, err
	}
	return s.items.GetItem(ctx, itemID)
}

// Grants returns the members an owned item is shared with.
func (s *Session) Grants(ctx context.Context, item models.VaultItem) ([]string, error) {
	if err := s.requireOwner(ctx, item); err != nil {
		return nil, err
	}
	return s.sharing.ListGrantsForItem(ctx, item.ID)
}
