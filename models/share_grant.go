package models

import "time"

// ShareGrant authorizes one family member to see one vault item.
// The pair (VaultItemID, MemberID) is unique.
type ShareGrant struct {
	VaultItemID string    `json:"vault_item_id"`
	MemberID    string    `json:"shared_with"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ShareGrant model.
func (ShareGrant) TableName() string {
	return "vault_shares"
}

// ShareRequest replaces the grant set of an item when ExpectedVersion still
// matches the item's current share version.
type ShareRequest struct {
	ExpectedVersion int64    `json:"expected_version"`
	MemberIDs       []string `json:"member_ids"`
}

// ShareResponse reports the grant set version after a successful replacement.
type ShareResponse struct {
	ShareVersion int64 `json:"share_version"`
}

// GrantsResponse lists the members an item is currently shared with.
type GrantsResponse struct {
	MemberIDs []string `json:"member_ids"`
}
