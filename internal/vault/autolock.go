package vault

import (
	"context"
	"time"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/workers"
)

// minAutoLockCheck bounds how often an idle session is polled.
const minAutoLockCheck = time.Second

// lockable is the part of [Session] the auto-locker needs.
type lockable interface {
	State() State
	LastActivity() time.Time
	Lock()
}

// AutoLocker locks a session once it has been idle for the configured
// duration. It is a [workers.Worker].
type AutoLocker struct {
	*workers.Periodic

	session lockable
	idle    time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

// NewAutoLocker polls session at a quarter of idle, but not more often than
// once per second.
func NewAutoLocker(session lockable, idle time.Duration, log *logger.Logger) *AutoLocker {
	a := &AutoLocker{
		session: session,
		idle:    idle,
		now:     time.Now,
		logger:  log,
	}

	interval := max(idle/4, minAutoLockCheck)
	a.Periodic = workers.NewPeriodic("vault-auto-lock", interval, a.lockIfIdle, log)

	return a
}

func (a *AutoLocker) lockIfIdle(context.Context) error {
	if a.session.State() != StateUnlocked {
		return nil
	}

	idleFor := a.now().Sub(a.session.LastActivity())
	if idleFor < a.idle {
		return nil
	}

	a.session.Lock()
	a.logger.Info().Str("func", "AutoLocker.lockIfIdle").Dur("idle", idleFor).Msg("vault auto-locked")
	return nil
}
