package models

import "time"

// Profile roles.
const (
	RoleParent = "parent"
	RoleMember = "member"
)

// Profile is the household-facing view of a user.
type Profile struct {
	UserID   string  `json:"id"`
	FullName string  `json:"full_name"`
	FamilyID *string `json:"family_id,omitempty"`
	Role     string  `json:"role"`
}

// HasFamily reports whether the profile belongs to a household.
func (p Profile) HasFamily() bool {
	return p.FamilyID != nil && *p.FamilyID != ""
}

// TableName returns the name of the database table
// associated with the Profile model.
func (Profile) TableName() string {
	return "profiles"
}

// Family is a household group: the partition under which vault items and
// grants are organized.
type Family struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Family model.
func (Family) TableName() string {
	return "families"
}

// JoinFamilyRequest asks for the caller to be attached to an existing family.
type JoinFamilyRequest struct {
	FamilyID string `json:"family_id"`
}
