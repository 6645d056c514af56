package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/workers"
)

// NewGrantSweeper returns a worker that periodically deletes grants whose
// vault item no longer exists. With foreign keys enforced such grants cannot
// appear; the sweeper covers SQLite files created without enforcement and
// restores from partial backups.
func NewGrantSweeper(repo ShareGrantRepository, interval time.Duration, log *logger.Logger) *workers.Periodic {
	return workers.NewPeriodic("grant-sweeper", interval, func(ctx context.Context) error {
		return sweepOrphanedGrants(ctx, repo, log)
	}, log)
}

func sweepOrphanedGrants(ctx context.Context, repo ShareGrantRepository, log *logger.Logger) error {
	removed, err := repo.DeleteOrphanedGrants(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		log.Warn().Str("func", "sweepOrphanedGrants").Int64("removed", removed).Msg("removed orphaned share grants")
	}
	return nil
}
