package vault

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/models"
)

type itemStore struct {
	records RecordStore
	logger  *logger.Logger
}

// NewItemStore returns an [ItemStore] over records. Arguments are validated
// here so that the record store never receives an item without an owner,
// family, title or well-formed envelope.
func NewItemStore(records RecordStore, log *logger.Logger) ItemStore {
	return &itemStore{records: records, logger: log}
}

func (s *itemStore) CreateItem(ctx context.Context, ownerID, familyID, title string, envelope models.Envelope) (models.VaultItem, error) {
	if ownerID == "" || familyID == "" || title == "" {
		return models.VaultItem{}, fmt.Errorf("%w: owner, family and title are required", ErrInvalidInput)
	}
	if err := envelope.Validate(); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	item, err := s.records.InsertItem(ctx, models.VaultItem{
		Title:    title,
		Envelope: envelope,
		OwnerID:  ownerID,
		FamilyID: familyID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemStore.CreateItem").Msg("failed to insert vault item")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	return item, nil
}

func (s *itemStore) ListOwnedItems(ctx context.Context, ownerID string) ([]models.VaultItem, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: empty owner id", ErrInvalidInput)
	}
	return s.list(ctx, models.ItemQuery{OwnerID: ownerID})
}

func (s *itemStore) ListSharedItems(ctx context.Context, memberID string) ([]models.VaultItem, error) {
	if memberID == "" {
		return nil, fmt.Errorf("%w: empty member id", ErrInvalidInput)
	}
	return s.list(ctx, models.ItemQuery{SharedWith: memberID})
}

func (s *itemStore) GetItem(ctx context.Context, itemID string) (models.VaultItem, error) {
	if itemID == "" {
		return models.VaultItem{}, fmt.Errorf("%w: empty item id", ErrInvalidInput)
	}

	items, err := s.list(ctx, models.ItemQuery{ID: itemID, Limit: 1})
	if err != nil {
		return models.VaultItem{}, err
	}
	if len(items) == 0 {
		return models.VaultItem{}, ErrItemNotFound
	}

	return items[0], nil
}

func (s *itemStore) DeleteItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return fmt.Errorf("%w: empty item id", ErrInvalidInput)
	}

	if err := s.records.DeleteItem(ctx, itemID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemStore.DeleteItem").Str("item_id", itemID).Msg("failed to delete vault item")
		return fmt.Errorf("%w: %w", ErrStore, err)
	}

	return nil
}

func (s *itemStore) list(ctx context.Context, q models.ItemQuery) ([]models.VaultItem, error) {
	items, err := s.records.SelectItems(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemStore.list").Msg("failed to select vault items")
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return items, nil
}
