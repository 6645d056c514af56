// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-family-vault/internal/logger"
)

// DefaultInterval is used when a periodic job is configured with a
// non-positive interval.
const DefaultInterval = 5 * time.Minute

// Periodic calls a task on a ticker. Task errors are logged and the job keeps
// ticking; nothing is retried before the next tick.
type Periodic struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodic creates a job that is idle until Run is called.
func NewPeriodic(name string, interval time.Duration, task func(ctx context.Context) error, log *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		logger:   log,
	}
}

// Run implements Worker. Any previously running instance is stopped first.
func (p *Periodic) Run(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := p.task(jobCtx); err != nil {
					p.logger.Err(err).Str("func", "Periodic.Run").Str("worker", p.name).Msg("periodic task failed")
				}
			}
		}
	}()
}

// Stop implements Worker.
func (p *Periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
