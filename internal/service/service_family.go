package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/store"
	"github.com/MKhiriev/go-family-vault/internal/validators"
	"github.com/MKhiriev/go-family-vault/models"
)

type familyService struct {
	profiles  store.ProfileRepository
	validator validators.Validator
	logger    *logger.Logger
}

func NewFamilyService(profiles store.ProfileRepository, logger *logger.Logger) FamilyService {
	return &familyService{
		profiles:  profiles,
		validator: validators.NewVaultValidator(),
		logger:    logger,
	}
}

func (s *familyService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// CreateFamily makes the caller the parent of a new household. A user
// belongs to at most one family.
func (s *familyService) CreateFamily(ctx context.Context, userID, name string) (models.Family, error) {
	name = strings.TrimSpace(name)
	if err := s.validator.Validate(ctx, models.Family{Name: name}); err != nil {
		return models.Family{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.requireNoFamily(ctx, userID); err != nil {
		return models.Family{}, err
	}

	family, err := s.profiles.CreateFamily(ctx, userID, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "familyService.CreateFamily").Str("user_id", userID).Msg("failed to create family")
		return models.Family{}, fmt.Errorf("create family: %w", err)
	}

	return family, nil
}

func (s *familyService) JoinFamily(ctx context.Context, userID, familyID string) error {
	if strings.TrimSpace(familyID) == "" {
		return fmt.Errorf("%w: family id is required", ErrInvalidDataProvided)
	}

	if err := s.requireNoFamily(ctx, userID); err != nil {
		return err
	}

	if err := s.profiles.JoinFamily(ctx, userID, familyID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "familyService.JoinFamily").Str("user_id", userID).Str("family_id", familyID).Msg("failed to join family")
		return fmt.Errorf("join family: %w", err)
	}

	return nil
}

func (s *familyService) ListFamilyMembers(ctx context.Context, userID string) ([]models.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasFamily() {
		return nil, ErrNoFamily
	}

	members, err := s.profiles.ListFamilyMembers(ctx, *profile.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}

	return members, nil
}

func (s *familyService) requireNoFamily(ctx context.Context, userID string) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile.HasFamily() {
		return ErrAlreadyInFamily
	}
	return nil
}
