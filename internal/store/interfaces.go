// Package store persists accounts, family profiles, vault items and share
// grants in PostgreSQL (pgx) or SQLite (mattn/go-sqlite3).
//
// Repositories build SQL with squirrel, scan into typed models, and map
// driver errors onto the sentinels in errors.go. Envelopes are validated as
// they are scanned, so callers never receive an untyped ciphertext column.
package store

import (
	"context"

	"github.com/MKhiriev/go-family-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores accounts.
type UserRepository interface {
	// CreateUser inserts the account and its empty profile in one transaction
	// and returns the user with UserID and CreatedAt assigned.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns ErrNoUserWasFound when the login is unknown.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ProfileRepository stores the household side of users.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)

	// CreateFamily creates a family and makes userID its parent member.
	CreateFamily(ctx context.Context, userID, name string) (models.Family, error)

	// JoinFamily attaches userID to an existing family as a member.
	JoinFamily(ctx context.Context, userID, familyID string) error

	ListFamilyMembers(ctx context.Context, familyID string) ([]models.Profile, error)
}

// VaultItemRepository stores ciphertext envelopes and their plaintext metadata.
type VaultItemRepository interface {
	// InsertItem assigns ID, CreatedAt and a zero ShareVersion.
	InsertItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// SelectItems returns matching items newest first.
	SelectItems(ctx context.Context, query models.ItemQuery) ([]models.VaultItem, error)

	// DeleteItem returns ErrItemNotFound for an unknown id and
	// ErrGrantsExist while grants still reference the item.
	DeleteItem(ctx context.Context, itemID string) error
}

// ShareGrantRepository stores the item/member grant relation.
type ShareGrantRepository interface {
	// ReplaceGrants atomically replaces the grant set of itemID with
	// memberIDs if the item's share version still equals expectedVersion,
	// and returns the new version. ErrVersionConflict otherwise.
	ReplaceGrants(ctx context.Context, itemID string, expectedVersion int64, memberIDs []string) (int64, error)

	SelectGrants(ctx context.Context, itemID string) ([]models.ShareGrant, error)

	// DeleteGrants removes every grant of itemID. Removing none is not an error.
	DeleteGrants(ctx context.Context, itemID string) error

	// DeleteOrphanedGrants removes grants whose item no longer exists and
	// returns how many were removed.
	DeleteOrphanedGrants(ctx context.Context) (int64, error)
}
