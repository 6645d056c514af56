package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/models"
)

// shareGrantRepository is the SQL implementation of [ShareGrantRepository]
// over the "vault_shares" table.
type shareGrantRepository struct {
	*DB
	logger *logger.Logger
}

func NewShareGrantRepository(db *DB, logger *logger.Logger) ShareGrantRepository {
	return &shareGrantRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceGrants runs compare-and-set on vault_items.share_version, then
// deletes all grants of the item and inserts one per member, in a single
// transaction. The insert is skipped for an empty member set.
func (r *shareGrantRepository) ReplaceGrants(ctx context.Context, itemID string, expectedVersion int64, memberIDs []string) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "shareGrantRepository.ReplaceGrants").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = r.bumpShareVersion(ctx, tx, itemID, expectedVersion); err != nil {
		return 0, err
	}

	query, args, err := buildDeleteGrantsQuery(r.builder, itemID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "shareGrantRepository.ReplaceGrants").Str("item_id", itemID).Msg("failed to delete grants")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(memberIDs) > 0 {
		createdAt := now()
		grants := make([]models.ShareGrant, 0, len(memberIDs))
		for _, memberID := range memberIDs {
			grants = append(grants, models.ShareGrant{VaultItemID: itemID, MemberID: memberID, CreatedAt: createdAt})
		}

		query, args, err = buildInsertGrantsQuery(r.builder, grants)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "shareGrantRepository.ReplaceGrants").
				Str("item_id", itemID).
				Int("members", len(memberIDs)).
				Msg("failed to insert grants")
			if constraintViolation(err) == foreignKeyConstraint {
				return 0, fmt.Errorf("%w: %w", ErrUnknownReference, err)
			}
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "shareGrantRepository.ReplaceGrants").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return expectedVersion + 1, nil
}

// bumpShareVersion distinguishes a missing item from a stale version when
// the compare-and-set matches nothing.
func (r *shareGrantRepository) bumpShareVersion(ctx context.Context, tx *sql.Tx, itemID string, expectedVersion int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildBumpShareVersionQuery(r.builder, itemID, expectedVersion)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "shareGrantRepository.bumpShareVersion").Str("item_id", itemID).Msg("failed to bump share version")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 1 {
		return nil
	}

	query, args, err = buildSelectShareVersionQuery(r.builder, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var current int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Warn().
		Str("func", "shareGrantRepository.bumpShareVersion").
		Str("item_id", itemID).
		Int64("expected_version", expectedVersion).
		Int64("current_version", current).
		Msg("share version conflict")

	return fmt.Errorf("%w: expected %d, current %d", ErrVersionConflict, expectedVersion, current)
}

func (r *shareGrantRepository) SelectGrants(ctx context.Context, itemID string) ([]models.ShareGrant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGrantsQuery(r.builder, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "shareGrantRepository.SelectGrants").Str("item_id", itemID).Msg("failed to select grants")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grants := make([]models.ShareGrant, 0, 8)
	for rows.Next() {
		var g models.ShareGrant
		if scanErr := rows.Scan(&g.VaultItemID, &g.MemberID, &g.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "shareGrantRepository.SelectGrants").Msg("failed to scan grant row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		grants = append(grants, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grants, nil
}

func (r *shareGrantRepository) DeleteGrants(ctx context.Context, itemID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteGrantsQuery(r.builder, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "shareGrantRepository.DeleteGrants").
			Str("item_id", itemID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to delete grants")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *shareGrantRepository) DeleteOrphanedGrants(ctx context.Context) (int64, error) {
	query, args, err := buildDeleteOrphanedGrantsQuery(r.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
