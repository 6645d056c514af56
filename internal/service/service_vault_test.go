// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/mock"
	"github.com/MKhiriev/go-family-vault/internal/store"
	"github.com/MKhiriev/go-family-vault/models"
)

type vaultMocks struct {
	items    *mock.MockVaultItemRepository
	grants   *mock.MockShareGrantRepository
	profiles *mock.MockProfileRepository
	svc      VaultService
}

func newVaultMocks(t *testing.T) vaultMocks {
	ctrl := gomock.NewController(t)
	m := vaultMocks{
		items:    mock.NewMockVaultItemRepository(ctrl),
		grants:   mock.NewMockShareGrantRepository(ctrl),
		profiles: mock.NewMockProfileRepository(ctrl),
	}
	m.svc = NewVaultService(m.items, m.grants, m.profiles, logger.Nop())
	return m
}

func familyOf(userID, familyID string) models.Profile {
	return models.Profile{UserID: userID, FamilyID: &familyID, Role: models.RoleMember}
}

var ownedItem = models.VaultItem{ID: "item-1", Title: "Wifi", OwnerID: "owner", FamilyID: "fam", ShareVersion: 2}

func (m vaultMocks) expectItem(ctx context.Context) {
	m.items.EXPECT().SelectItems(ctx, models.ItemQuery{ID: "item-1", Limit: 1}).Return([]models.VaultItem{ownedItem}, nil)
}

func TestVaultService_CreateItem(t *testing.T) {
	ctx := context.Background()
	m := newVaultMocks(t)

	m.profiles.EXPECT().GetProfile(ctx, "owner").Return(familyOf("owner", "fam"), nil)
	m.items.EXPECT().InsertItem(ctx, models.VaultItem{Title: "Wifi", OwnerID: "owner", FamilyID: "fam"}).
		Return(models.VaultItem{ID: "item-1", Title: "Wifi", OwnerID: "owner", FamilyID: "fam"}, nil)

	got, err := m.svc.CreateItem(ctx, "owner", models.VaultItem{Title: "Wifi"})
	require.NoError(t, err)
	assert.Equal(t, "item-1", got.ID)
}

func TestVaultService_CreateItemPolicy(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		profile models.Profile
		item    models.VaultItem
		wantErr error
	}{
		{name: "no family", profile: models.Profile{UserID: "owner"}, item: models.VaultItem{Title: "x"}, wantErr: ErrNoFamily},
		{name: "foreign owner", profile: familyOf("owner", "fam"), item: models.VaultItem{Title: "x", OwnerID: "alice"}, wantErr: ErrForbidden},
		{name: "foreign family", profile: familyOf("owner", "fam"), item: models.VaultItem{Title: "x", FamilyID: "other"}, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newVaultMocks(t)
			m.profiles.EXPECT().GetProfile(ctx, "owner").Return(tt.profile, nil)

			_, err := m.svc.CreateItem(ctx, "owner", tt.item)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVaultService_ListItems(t *testing.T) {
	ctx := context.Background()
	m := newVaultMocks(t)

	m.items.EXPECT().SelectItems(ctx, models.ItemQuery{OwnerID: "owner", Limit: 10}).Return([]models.VaultItem{ownedItem}, nil)
	m.items.EXPECT().SelectItems(ctx, models.ItemQuery{SharedWith: "alice"}).Return(nil, nil)

	owned, err := m.svc.ListItems(ctx, "owner", models.ScopeOwned, 10)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	shared, err := m.svc.ListItems(ctx, "alice", models.ScopeShared, 0)
	require.NoError(t, err)
	assert.Empty(t, shared)

	_, err = m.svc.ListItems(ctx, "alice", "everything", 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVaultService_GetItemVisibility(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  string
		grants  []models.ShareGrant
		wantErr error
	}{
		{name: "owner", caller: "owner"},
		{name: "grantee", caller: "alice", grants: []models.ShareGrant{{VaultItemID: "item-1", MemberID: "alice"}}},
		{name: "not granted", caller: "carol", grants: []models.ShareGrant{{VaultItemID: "item-1", MemberID: "alice"}}, wantErr: store.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newVaultMocks(t)
			m.expectItem(ctx)
			if tt.caller != "owner" {
				m.grants.EXPECT().SelectGrants(ctx, "item-1").Return(tt.grants, nil)
			}

			got, err := m.svc.GetItem(ctx, tt.caller, "item-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ownedItem, got)
		})
	}
}

func TestVaultService_GetItemMissing(t *testing.T) {
	ctx := context.Background()
	m := newVaultMocks(t)
	m.items.EXPECT().SelectItems(ctx, models.ItemQuery{ID: "nope", Limit: 1}).Return(nil, nil)

	_, err := m.svc.GetItem(ctx, "owner", "nope")
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestVaultService_OwnerOnlyMutations(t *testing.T) {
	ctx := context.Background()
	grantee := []models.ShareGrant{{VaultItemID: "item-1", MemberID: "alice"}}

	t.Run("delete", func(t *testing.T) {
		m := newVaultMocks(t)
		m.expectItem(ctx)
		m.grants.EXPECT().SelectGrants(ctx, "item-1").Return(grantee, nil)
		assert.ErrorIs(t, m.svc.DeleteItem(ctx, "alice", "item-1"), ErrForbidden)
	})

	t.Run("replace grants", func(t *testing.T) {
		m := newVaultMocks(t)
		m.expectItem(ctx)
		m.grants.EXPECT().SelectGrants(ctx, "item-1").Return(grantee, nil)
		_, err := m.svc.ReplaceGrants(ctx, "alice", "item-1", models.ShareRequest{MemberIDs: []string{"alice"}})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("list grants", func(t *testing.T) {
		m := newVaultMocks(t)
		m.expectItem(ctx)
		m.grants.EXPECT().SelectGrants(ctx, "item-1").Return(grantee, nil)
		_, err := m.svc.ListGrants(ctx, "alice", "item-1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("delete grants invisible", func(t *testing.T) {
		m := newVaultMocks(t)
		m.expectItem(ctx)
		m.grants.EXPECT().SelectGrants(ctx, "item-1").Return(nil, nil)
		assert.ErrorIs(t, m.svc.DeleteGrants(ctx, "carol", "item-1"), store.ErrItemNotFound)
	})
}

func TestVaultService_DeleteItem(t *testing.T) {
	ctx := context.Background()
	m := newVaultMocks(t)

	m.expectItem(ctx)
	m.items.EXPECT().DeleteItem(ctx, "item-1").Return(store.ErrGrantsExist)

	assert.ErrorIs(t, m.svc.DeleteItem(ctx, "owner", "item-1"), store.ErrGrantsExist)
}

func TestVaultService_ReplaceGrants(t *testing.T) {
	ctx := context.Background()
	family := []models.Profile{familyOf("owner", "fam"), familyOf("alice", "fam"), familyOf("bob", "fam")}

	t.Run("success deduplicates", func(t *testing.T) {
		m := newVaultMocks(t)
		m.expectItem(ctx)
		m.profiles.EXPECT().ListFamilyMembers(ctx, "fam").Return(family, nil)
		m.grants.EXPECT().ReplaceGrants(ctx, "item-1", int64(2), []string{"alice", "bob"}).Return(int64(3), nil)

		version, err := m.svc.ReplaceGrants(ctx, "owner", "item-1", models.ShareRequest{
			ExpectedVersion: 2,
			MemberIDs:       []string{"bob", "alice", "bob"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), version)
	})

	t.Run("empty set skips family lookup", func(t *testing.T) {
		m := newVaultMocks(t)
		m.expectItem(ctx)
		m.grants.EXPECT().ReplaceGrants(ctx, "item-1", int64(2), gomock.Len(0)).Return(int64(3), nil)

		_, err := m.svc.ReplaceGrants(ctx, "owner", "item-1", models.ShareRequest{ExpectedVersion: 2})
		require.NoError(t, err)
	})

	t.Run("recipient outside family", func(t *testing.T) {
		m := newVaultMocks(t)
		m.expectItem(ctx)
		m.profiles.EXPECT().ListFamilyMembers(ctx, "fam").Return(family, nil)

		_, err := m.svc.ReplaceGrants(ctx, "owner", "item-1", models.ShareRequest{MemberIDs: []string{"alice", "stranger"}})
		assert.ErrorIs(t, err, ErrNotFamilyMember)
	})

	t.Run("version conflict", func(t *testing.T) {
		m := newVaultMocks(t)
		m.expectItem(ctx)
		m.profiles.EXPECT().ListFamilyMembers(ctx, "fam").Return(family, nil)
		m.grants.EXPECT().ReplaceGrants(ctx, "item-1", int64(1), []string{"alice"}).Return(int64(0), store.ErrVersionConflict)

		_, err := m.svc.ReplaceGrants(ctx, "owner", "item-1", models.ShareRequest{ExpectedVersion: 1, MemberIDs: []string{"alice"}})
		assert.ErrorIs(t, err, models.ErrShareVersionConflict)
	})
}

func TestVaultService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	m := newVaultMocks(t)
	boom := errors.New("connection reset")
	m.items.EXPECT().SelectItems(ctx, gomock.Any()).Return(nil, boom)

	_, err := m.svc.GetItem(ctx, "owner", "item-1")
	assert.ErrorIs(t, err, boom)
}
