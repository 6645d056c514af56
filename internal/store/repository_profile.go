package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/utils"
	"github.com/MKhiriev/go-family-vault/models"
)

type profileRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(r.builder, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profile, err := scanProfile(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "profileRepository.GetProfile").Str("user_id", userID).Msg("failed to get profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

func (r *profileRepository) CreateFamily(ctx context.Context, userID, name string) (models.Family, error) {
	log := logger.FromContext(ctx)

	family := models.Family{ID: r.ids.Generate(), Name: name, CreatedAt: now()}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.CreateFamily").Msg("failed to begin transaction")
		return models.Family{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildInsertFamilyQuery(r.builder, family)
	if err != nil {
		return models.Family{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "profileRepository.CreateFamily").Msg("failed to insert family")
		return models.Family{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = r.setFamily(ctx, tx, userID, family.ID, models.RoleParent); err != nil {
		return models.Family{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "profileRepository.CreateFamily").Msg("failed to commit transaction")
		return models.Family{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return family, nil
}

func (r *profileRepository) JoinFamily(ctx context.Context, userID, familyID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.JoinFamily").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectFamilyQuery(r.builder, familyID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var family models.Family
	err = tx.QueryRowContext(ctx, query, args...).Scan(&family.ID, &family.Name, &family.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrFamilyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "profileRepository.JoinFamily").Str("family_id", familyID).Msg("failed to find family")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = r.setFamily(ctx, tx, userID, familyID, models.RoleMember); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "profileRepository.JoinFamily").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *profileRepository) setFamily(ctx context.Context, tx *sql.Tx, userID, familyID, role string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetProfileFamilyQuery(r.builder, userID, familyID, role)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.setFamily").Str("user_id", userID).Msg("failed to update profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (r *profileRepository) ListFamilyMembers(ctx context.Context, familyID string) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFamilyMembersQuery(r.builder, familyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.ListFamilyMembers").Str("family_id", familyID).Msg("failed to list family members")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.Profile, 0, 8)
	for rows.Next() {
		profile, scanErr := scanProfile(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "profileRepository.ListFamilyMembers").Msg("failed to scan profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		members = append(members, profile)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "profileRepository.ListFamilyMembers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var (
		profile  models.Profile
		familyID sql.NullString
	)

	if err := row.Scan(&profile.UserID, &profile.FullName, &familyID, &profile.Role); err != nil {
		return models.Profile{}, err
	}
	if familyID.Valid {
		profile.FamilyID = &familyID.String
	}

	return profile, nil
}
