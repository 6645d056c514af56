// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/utils"
	"github.com/MKhiriev/go-family-vault/models"
)

// vaultItemRepository is the SQL implementation of [VaultItemRepository]
// over the "vault_items" table. The encrypted column only ever holds the
// canonical envelope text; the repository never sees plaintext.
type vaultItemRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewVaultItemRepository constructs a [VaultItemRepository] backed by the
// provided database connection and logger.
func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	return &vaultItemRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// InsertItem stores a new item. ID and CreatedAt are assigned here and the
// share version starts at zero.
//
// Error handling:
//   - malformed envelope → [models.ErrMalformedEnvelope] (nothing executed).
//   - unknown owner or family → [ErrUnknownReference].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *vaultItemRepository) InsertItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if err := item.Envelope.Validate(); err != nil {
		return models.VaultItem{}, err
	}

	item.ID = r.ids.Generate()
	item.ShareVersion = 0
	item.CreatedAt = now()

	query, args, err := buildInsertItemQuery(r.builder, item)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.InsertItem").Msg("failed to create query")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.InsertItem").
			Str("owner_id", item.OwnerID).
			Str("family_id", item.FamilyID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to insert vault item")
		if constraintViolation(err) == foreignKeyConstraint {
			return models.VaultItem{}, fmt.Errorf("%w: %w", ErrUnknownReference, err)
		}
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "vaultItemRepository.InsertItem").Str("item_id", item.ID).Msg("vault item stored")
	return item, nil
}

// SelectItems returns the items matching q, newest first.
func (r *vaultItemRepository) SelectItems(ctx context.Context, q models.ItemQuery) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(r.builder, q)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.SelectItems").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.SelectItems").
			Str("owner_id", q.OwnerID).
			Str("shared_with", q.SharedWith).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0, 16)
	for rows.Next() {
		var item models.VaultItem

		scanErr := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Envelope,
			&item.OwnerID,
			&item.FamilyID,
			&item.ShareVersion,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultItemRepository.SelectItems").
				Str("item_id", item.ID).
				Msg("failed to scan vault item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "vaultItemRepository.SelectItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// DeleteItem removes one item. The schema refuses while grants reference
// it, which surfaces as [ErrGrantsExist].
func (r *vaultItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(r.builder, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.DeleteItem").
			Str("item_id", itemID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to delete vault item")
		if constraintViolation(err) == foreignKeyConstraint {
			return ErrGrantsExist
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
