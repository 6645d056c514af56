// Package service holds the server-side business rules of the family vault
// backend: account authentication, family membership and the access policy
// over vault items and share grants.
//
// The vault service never sees plaintext. It checks who may read, share or
// delete an item and stores the ciphertext envelope it is given.
package service

import (
	"context"

	"github.com/MKhiriev/go-family-vault/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FamilyService manages households. Every method acts on behalf of userID.
type FamilyService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	CreateFamily(ctx context.Context, userID, name string) (models.Family, error)
	JoinFamily(ctx context.Context, userID, familyID string) error

	// ListFamilyMembers returns the profiles sharing userID's family.
	ListFamilyMembers(ctx context.Context, userID string) ([]models.Profile, error)
}

// VaultService applies the access policy to vault items and grants. Every
// method acts on behalf of callerID.
type VaultService interface {
	CreateItem(ctx context.Context, callerID string, item models.VaultItem) (models.VaultItem, error)
	ListItems(ctx context.Context, callerID string, scope models.ItemScope, limit uint64) ([]models.VaultItem, error)

	// GetItem returns the item to its owner or a grantee. Anyone else gets
	// store.ErrItemNotFound.
	GetItem(ctx context.Context, callerID, itemID string) (models.VaultItem, error)

	DeleteItem(ctx context.Context, callerID, itemID string) error
	ListGrants(ctx context.Context, callerID, itemID string) ([]models.ShareGrant, error)
	ReplaceGrants(ctx context.Context, callerID, itemID string, req models.ShareRequest) (int64, error)
	DeleteGrants(ctx context.Context, callerID, itemID string) error
}

// VaultServiceWrapper decorates a VaultService, e.g. with input validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}
