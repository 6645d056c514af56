// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's HTTP view of the family vault server.
//
// [ServerAdapter] implements the vault core's collaborators
// ([vault.RecordStore], [vault.ProfileSource], [vault.IdentityProvider]) on
// top of the REST API, plus the account and family calls the CLI needs.
// Non-2xx responses are mapped to the sentinels in errors.go so that callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-family-vault/internal/vault"
	"github.com/MKhiriev/go-family-vault/models"
)

// ServerAdapter defines communication with the family vault server.
type ServerAdapter interface {
	vault.RecordStore
	vault.ProfileSource
	vault.IdentityProvider

	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) error

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) error

	// CreateFamily creates a household; the caller becomes its parent.
	CreateFamily(ctx context.Context, name string) (models.Family, error)

	// JoinFamily attaches the caller to an existing household.
	JoinFamily(ctx context.Context, familyID string) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
