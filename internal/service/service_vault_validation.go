package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-vault/internal/validators"
	"github.com/MKhiriev/go-family-vault/models"
)

// VaultValidationService rejects malformed input with ErrInvalidDataProvided
// before it reaches the wrapped VaultService.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}

func (v *VaultValidationService) CreateItem(ctx context.Context, callerID string, item models.VaultItem) (models.VaultItem, error) {
	if err := v.requireIDs(callerID); err != nil {
		return models.VaultItem{}, err
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateItem(ctx, callerID, item)
}

func (v *VaultValidationService) ListItems(ctx context.Context, callerID string, scope models.ItemScope, limit uint64) ([]models.VaultItem, error) {
	if err := v.requireIDs(callerID); err != nil {
		return nil, err
	}
	if !scope.Valid() {
		return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidDataProvided, scope)
	}

	return v.inner.ListItems(ctx, callerID, scope, limit)
}

func (v *VaultValidationService) GetItem(ctx context.Context, callerID, itemID string) (models.VaultItem, error) {
	if err := v.requireIDs(callerID, itemID); err != nil {
		return models.VaultItem{}, err
	}
	return v.inner.GetItem(ctx, callerID, itemID)
}

func (v *VaultValidationService) DeleteItem(ctx context.Context, callerID, itemID string) error {
	if err := v.requireIDs(callerID, itemID); err != nil {
		return err
	}
	return v.inner.DeleteItem(ctx, callerID, itemID)
}

func (v *VaultValidationService) ListGrants(ctx context.Context, callerID, itemID string) ([]models.ShareGrant, error) {
	if err := v.requireIDs(callerID, itemID); err != nil {
		return nil, err
	}
	return v.inner.ListGrants(ctx, callerID, itemID)
}

func (v *VaultValidationService) ReplaceGrants(ctx context.Context, callerID, itemID string, req models.ShareRequest) (int64, error) {
	if err := v.requireIDs(callerID, itemID); err != nil {
		return 0, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ReplaceGrants(ctx, callerID, itemID, req)
}

func (v *VaultValidationService) DeleteGrants(ctx context.Context, callerID, itemID string) error {
	if err := v.requireIDs(callerID, itemID); err != nil {
		return err
	}
	return v.inner.DeleteGrants(ctx, callerID, itemID)
}

func (v *VaultValidationService) requireIDs(ids ...string) error {
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: empty id", ErrInvalidDataProvided)
		}
	}
	return nil
}
