package models

import "time"

// VaultItem is one encrypted secret as stored by the backend.
//
// Only Title is plaintext. The secret itself exists solely as Envelope,
// which the server and the network never see decrypted.
type VaultItem struct {
	// ID is assigned by the store on creation.
	ID string `json:"id"`

	// Title is a short plaintext label visible to the owner and the store.
	Title string `json:"title"`

	// Envelope is the ciphertext, persisted in the description_encrypted column.
	Envelope Envelope `json:"description_encrypted"`

	// OwnerID is the creating user. Immutable.
	OwnerID string `json:"owner_id"`

	// FamilyID is the household partition of the item. It never takes part
	// in key derivation.
	FamilyID string `json:"family_id"`

	// ShareVersion is the optimistic concurrency token of the item's grant set.
	// Every successful grant replacement increments it by one.
	ShareVersion int64 `json:"share_version"`

	// CreatedAt is assigned by the store on creation. Immutable.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the VaultItem model.
func (VaultItem) TableName() string {
	return "vault_items"
}

// ItemQuery selects vault items. Exactly one of ID, OwnerID and SharedWith
// is expected to be set; results are ordered newest first.
type ItemQuery struct {
	ID         string
	OwnerID    string
	SharedWith string

	// Limit caps the result size when positive.
	Limit uint64
}

// ItemScope selects which side of the sharing relation a listing covers.
type ItemScope string

const (
	// ScopeOwned lists the caller's own items.
	ScopeOwned ItemScope = "owned"
	// ScopeShared lists items other members shared with the caller.
	ScopeShared ItemScope = "shared"
)

// Valid reports whether s is a known scope.
func (s ItemScope) Valid() bool {
	return s == ScopeOwned || s == ScopeShared
}
