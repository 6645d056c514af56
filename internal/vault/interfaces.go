// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault is the client-side core of the family secret vault.
//
// A [Session] holds the master password while unlocked, encrypts secrets
// before they are handed to an [ItemStore], decrypts them on reveal and
// drives sharing through a [SharingManager]. The record store behind both
// only ever sees ciphertext envelopes; the master password never leaves the
// process.
package vault

import (
	"context"

	"github.com/MKhiriev/go-family-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// IdentityProvider returns the authenticated user. A nil identity means no
// operation is permitted.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (*models.Identity, error)
}

// ProfileSource resolves the caller's profile and the members of their
// family.
type ProfileSource interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	ListFamilyMembers(ctx context.Context) ([]models.Profile, error)
}

// RecordStore is the persistence boundary of the core: typed access to the
// vault_items and vault_shares relations. It is implemented by the SQL
// repositories on the server and by the HTTP adapter on the client.
type RecordStore interface {
	// InsertItem stores a new item and returns it with ID, CreatedAt and a
	// zero ShareVersion.
	InsertItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// SelectItems returns items matching every non-empty filter, newest first.
	SelectItems(ctx context.Context, q models.ItemQuery) ([]models.VaultItem, error)

	DeleteItem(ctx context.Context, itemID string) error

	// ReplaceGrants atomically swaps the grant set of an item, provided its
	// share version still equals expectedVersion, and returns the new one.
	ReplaceGrants(ctx context.Context, itemID string, expectedVersion int64, memberIDs []string) (int64, error)

	SelectGrants(ctx context.Context, itemID string) ([]models.ShareGrant, error)
	DeleteGrants(ctx context.Context, itemID string) error
}

// ItemStore persists and lists ciphertext items.
type ItemStore interface {
	CreateItem(ctx context.Context, ownerID, familyID, title string, envelope models.Envelope) (models.VaultItem, error)
	ListOwnedItems(ctx context.Context, ownerID string) ([]models.VaultItem, error)
	ListSharedItems(ctx context.Context, memberID string) ([]models.VaultItem, error)
	GetItem(ctx context.Context, itemID string) (models.VaultItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// SharingManager maintains the grant relation between items and members.
type SharingManager interface {
	// SetShares replaces the grant set of itemID with exactly memberIDs.
	SetShares(ctx context.Context, itemID string, expectedVersion int64, memberIDs []string) (int64, error)

	// ListGrantsForItem returns the sorted member ids holding a grant.
	ListGrantsForItem(ctx context.Context, itemID string) ([]string, error)

	// RemoveAllGrants must complete before the item itself is deleted.
	RemoveAllGrants(ctx context.Context, itemID string) error
}
