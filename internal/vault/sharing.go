package vault

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-family-vault/internal/logger"
)

type sharingManager struct {
	records RecordStore
	logger  *logger.Logger
}

// NewSharingManager returns a [SharingManager] over records.
func NewSharingManager(records RecordStore, log *logger.Logger) SharingManager {
	return &sharingManager{records: records, logger: log}
}

// SetShares replaces the whole grant set; there is no incremental diff. The
// member list is deduplicated and sorted, empty ids are dropped, and an empty
// result revokes every grant. A stale expectedVersion yields
// [ErrShareVersionConflict] and leaves the stored set untouched.
func (m *sharingManager) SetShares(ctx context.Context, itemID string, expectedVersion int64, memberIDs []string) (int64, error) {
	if itemID == "" {
		return 0, fmt.Errorf("%w: empty item id", ErrInvalidInput)
	}

	members := normalizeMembers(memberIDs)

	version, err := m.records.ReplaceGrants(ctx, itemID, expectedVersion, members)
	if errors.Is(err, ErrShareVersionConflict) {
		logger.FromContext(ctx).Warn().
			Str("func", "sharingManager.SetShares").
			Str("item_id", itemID).
			Int64("expected_version", expectedVersion).
			Msg("grant set changed concurrently")
		return 0, err
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sharingManager.SetShares").Str("item_id", itemID).Msg("failed to replace grants")
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}

	return version, nil
}

func (m *sharingManager) ListGrantsForItem(ctx context.Context, itemID string) ([]string, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: empty item id", ErrInvalidInput)
	}

	grants, err := m.records.SelectGrants(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	members := make([]string, 0, len(grants))
	for _, g := range grants {
		members = append(members, g.MemberID)
	}

	return normalizeMembers(members), nil
}

func (m *sharingManager) RemoveAllGrants(ctx context.Context, itemID string) error {
	if itemID == "" {
		return fmt.Errorf("%w: empty item id", ErrInvalidInput)
	}

	if err := m.records.DeleteGrants(ctx, itemID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sharingManager.RemoveAllGrants").Str("item_id", itemID).Msg("failed to remove grants")
		return fmt.Errorf("%w: %w", ErrStore, err)
	}

	return nil
}

func normalizeMembers(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
