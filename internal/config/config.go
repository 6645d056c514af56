// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by the server and the
// client binaries. Each binary reads only the groups it needs and validates
// them through its own view ([ServerConfig], [ClientConfig]).
//
// Environment variable names are flat (no prefixes) so that a deployment can
// reuse the names documented in the README.
type StructuredConfig struct {
	// App holds token and rate limiting settings.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds listener addresses and the inbound request timeout.
	Server Server

	// Adapter holds the client's view of the remote server.
	Adapter Adapter

	// Workers holds intervals of the background jobs on both sides.
	Workers Workers

	// Log holds the zerolog level.
	Log Log

	// FilePath is the optional JSON or YAML configuration file. It is
	// resolved from the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds authentication settings of the server.
type App struct {
	// TokenSignKey signs and verifies account JWTs. Must be kept confidential.
	// Env: TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token (e.g. "12h").
	// Env: TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AuthRateLimit is the sustained number of /api/auth requests per second
	// accepted from one client IP.
	// Env: AUTH_RATE_LIMIT
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT"`

	// AuthRateBurst is the burst size of the per-IP auth limiter.
	// Env: AUTH_RATE_BURST
	AuthRateBurst int `env:"AUTH_RATE_BURST"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DBConfig
}

// DBConfig holds connection settings for the relational backend.
type DBConfig struct {
	// DSN is the connection string: a PostgreSQL URL for "pgx" or a file
	// name / URI for "sqlite3".
	// Env: DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver selects the database/sql driver, "pgx" or "sqlite3".
	// Env: DB_DRIVER
	Driver string `env:"DB_DRIVER"`

	// MaxOpenConns caps the PostgreSQL pool. Zero keeps the driver default.
	// Env: DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"DB_MAX_OPEN_CONNS"`
}

// Server holds settings of the inbound transport layer.
type Server struct {
	// HTTPAddress is the listen address of the REST API, "host:port".
	// Env: ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the listen address of the gRPC health service.
	// Env: GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the client's HTTP adapter.
type Adapter struct {
	// ServerAddress is the base URL of the vault server
	// (e.g. "http://localhost:8080").
	// Env: SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionFile stores the account token between CLI invocations. The
	// master password is never written there.
	// Env: SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// Workers holds intervals of background jobs.
type Workers struct {
	// GrantSweepInterval is how often the server removes grants whose item
	// no longer exists.
	// Env: GRANT_SWEEP_INTERVAL
	GrantSweepInterval time.Duration `env:"GRANT_SWEEP_INTERVAL"`

	// AutoLockAfter locks an idle client session. Zero disables auto-lock.
	// Env: AUTO_LOCK_AFTER
	AutoLockAfter time.Duration `env:"AUTO_LOCK_AFTER"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}
