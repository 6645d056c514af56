// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/store"
	"github.com/MKhiriev/go-family-vault/models"
)

// vaultService is the access policy of the record store:
//
//   - items are created by the caller, in the caller's family;
//   - an item is visible to its owner and to members holding a grant;
//   - only the owner may delete an item or change its grants;
//   - grants may only name members of the item's family.
type vaultService struct {
	items    store.VaultItemRepository
	grants   store.ShareGrantRepository
	profiles store.ProfileRepository

	logger *logger.Logger
}

func NewVaultService(
	items store.VaultItemRepository,
	grants store.ShareGrantRepository,
	profiles store.ProfileRepository,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		items:    items,
		grants:   grants,
		profiles: profiles,
		logger:   logger,
	}
}

func (s *vaultService) CreateItem(ctx context.Context, callerID string, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profiles.GetProfile(ctx, callerID)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("get profile: %w", err)
	}
	if !profile.HasFamily() {
		return models.VaultItem{}, ErrNoFamily
	}

	if item.OwnerID != "" && item.OwnerID != callerID {
		log.Warn().Str("func", "vaultService.CreateItem").Str("user_id", callerID).Msg("attempt to create item for another owner")
		return models.VaultItem{}, ErrForbidden
	}
	if item.FamilyID != "" && item.FamilyID != *profile.FamilyID {
		log.Warn().Str("func", "vaultService.CreateItem").Str("user_id", callerID).Msg("attempt to create item in another family")
		return models.VaultItem{}, ErrForbidden
	}

	item.OwnerID = callerID
	item.FamilyID = *profile.FamilyID

	created, err := s.items.InsertItem(ctx, item)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("insert item: %w", err)
	}

	log.Info().Str("func", "vaultService.CreateItem").Str("item_id", created.ID).Msg("vault item created")
	return created, nil
}

func (s *vaultService) ListItems(ctx context.Context, callerID string, scope models.ItemScope, limit uint64) ([]models.VaultItem, error) {
	q := models.ItemQuery{Limit: limit}
	switch scope {
	case models.ScopeOwned:
		q.OwnerID = callerID
	case models.ScopeShared:
		q.SharedWith = callerID
	default:
		return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidDataProvided, scope)
	}

	items, err := s.items.SelectItems(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}

	return items, nil
}

func (s *vaultService) GetItem(ctx context.Context, callerID, itemID string) (models.VaultItem, error) {
	items, err := s.items.SelectItems(ctx, models.ItemQuery{ID: itemID, Limit: 1})
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("select item: %w", err)
	}
	if len(items) == 0 {
		return models.VaultItem{}, store.ErrItemNotFound
	}

	item := items[0]
	if item.OwnerID == callerID {
		return item, nil
	}

	grants, err := s.grants.SelectGrants(ctx, itemID)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("select grants: %w", err)
	}
	for _, g := range grants {
		if g.MemberID == callerID {
			return item, nil
		}
	}

	return models.VaultItem{}, store.ErrItemNotFound
}

func (s *vaultService) DeleteItem(ctx context.Context, callerID, itemID string) error {
	if _, err := s.ownedItem(ctx, callerID, itemID); err != nil {
		return err
	}

	if err := s.items.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "vaultService.DeleteItem").Str("item_id", itemID).Msg("vault item deleted")
	return nil
}

func (s *vaultService) ListGrants(ctx context.Context, callerID, itemID string) ([]models.ShareGrant, error) {
	if _, err := s.ownedItem(ctx, callerID, itemID); err != nil {
		return nil, err
	}

	grants, err := s.grants.SelectGrants(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("select grants: %w", err)
	}

	return grants, nil
}

// ReplaceGrants swaps the whole grant set. Recipients outside the item's
// family are rejected before anything is written.
func (s *vaultService) ReplaceGrants(ctx context.Context, callerID, itemID string, req models.ShareRequest) (int64, error) {
	item, err := s.ownedItem(ctx, callerID, itemID)
	if err != nil {
		return 0, err
	}

	members := slices.Clone(req.MemberIDs)
	slices.Sort(members)
	members = slices.Compact(members)

	if len(members) > 0 {
		family, err := s.profiles.ListFamilyMembers(ctx, item.FamilyID)
		if err != nil {
			return 0, fmt.Errorf("list family members: %w", err)
		}

		inFamily := make(map[string]struct{}, len(family))
		for _, p := range family {
			inFamily[p.UserID] = struct{}{}
		}
		for _, m := range members {
			if _, ok := inFamily[m]; !ok {
				logger.FromContext(ctx).Warn().Str("func", "vaultService.ReplaceGrants").Str("item_id", itemID).Str("member_id", m).Msg("recipient outside family")
				return 0, fmt.Errorf("%w: %s", ErrNotFamilyMember, m)
			}
		}
	}

	version, err := s.grants.ReplaceGrants(ctx, itemID, req.ExpectedVersion, members)
	if err != nil {
		return 0, fmt.Errorf("replace grants: %w", err)
	}

	return version, nil
}

func (s *vaultService) DeleteGrants(ctx context.Context, callerID, itemID string) error {
	if _, err := s.ownedItem(ctx, callerID, itemID); err != nil {
		return err
	}

	if err := s.grants.DeleteGrants(ctx, itemID); err != nil {
		return fmt.Errorf("delete grants: %w", err)
	}

	return nil
}

// ownedItem returns the item if callerID owns it. Items the caller cannot
// see are reported as not found; visible items owned by someone else are
// forbidden.
func (s *vaultService) ownedItem(ctx context.Context, callerID, itemID string) (models.VaultItem, error) {
	item, err := s.GetItem(ctx, callerID, itemID)
	if err != nil {
		return models.VaultItem{}, err
	}
	if item.OwnerID != callerID {
		logger.FromContext(ctx).Warn().Str("func", "vaultService.ownedItem").Str("user_id", callerID).Str("item_id", itemID).Msg("caller is not the owner")
		return models.VaultItem{}, ErrForbidden
	}
	return item, nil
}
