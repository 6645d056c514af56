package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7).
	// It doubles as the owner/member identifier of vault items and grants.
	UserID string `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// FullName is the display name shown to other family members.
	FullName string `json:"full_name,omitempty"`

	// Password is the plaintext account password as received from the client.
	// It is only ever held in request scope and never persisted or logged.
	// The account password is unrelated to the vault master password.
	Password string `json:"password,omitempty"`

	// PasswordHash is the argon2id encoding of Password kept by the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (User) TableName() string {
	return "users"
}

// Identity is the authenticated caller as seen by the vault core.
type Identity struct {
	ID string
}
