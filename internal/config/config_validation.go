// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the server-side groups of a merged config.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DATABASE_URI", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.AuthRateLimit <= 0 || cfg.App.AuthRateBurst <= 0 {
		return fmt.Errorf("%w: auth rate limit must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Workers.GrantSweepInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.ServerAddress)
	if err != nil || u.Scheme == "" || u.Host == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.SessionFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.AutoLockAfter < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
