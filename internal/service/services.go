package service

import (
	"github.com/MKhiriev/go-family-vault/internal/config"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/store"
	"github.com/MKhiriev/go-family-vault/models"
)

type Services struct {
	AuthService   AuthService
	FamilyService FamilyService
	VaultService  VaultService

	BuildInfo models.AppBuildInfo
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	vault := NewVaultService(
		storages.VaultItemRepository,
		storages.ShareGrantRepository,
		storages.ProfileRepository,
		logger,
	)

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg, logger),
		FamilyService: NewFamilyService(storages.ProfileRepository, logger),
		VaultService:  NewVaultValidationService().Wrap(vault),
		BuildInfo:     buildInfo,
	}
}
