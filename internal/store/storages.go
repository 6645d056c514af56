package store

import "github.com/MKhiriev/go-family-vault/internal/logger"

// Storages bundles every repository over one connection.
type Storages struct {
	UserRepository       UserRepository
	ProfileRepository    ProfileRepository
	VaultItemRepository  VaultItemRepository
	ShareGrantRepository ShareGrantRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		ProfileRepository:    NewProfileRepository(db, log),
		VaultItemRepository:  NewVaultItemRepository(db, log),
		ShareGrantRepository: NewShareGrantRepository(db, log),
	}
}

// RecordStore exposes the vault tables as one record store. It satisfies
// vault.RecordStore, so a vault session can run directly against the
// database in single-host deployments and tests.
type RecordStore struct {
	VaultItemRepository
	ShareGrantRepository
}

func NewRecordStore(s *Storages) *RecordStore {
	return &RecordStore{
		VaultItemRepository:  s.VaultItemRepository,
		ShareGrantRepository: s.ShareGrantRepository,
	}
}
