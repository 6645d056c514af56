package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied to fields that no source set.
const (
	DefaultHTTPAddress        = ":8080"
	DefaultGRPCAddress        = ":9090"
	DefaultDriver             = "pgx"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultTokenIssuer        = "go-family-vault"
	DefaultTokenDuration      = 12 * time.Hour
	DefaultAuthRateLimit      = 1.0
	DefaultAuthRateBurst      = 5
	DefaultGrantSweepInterval = time.Hour
	DefaultServerAddress      = "http://localhost:8080"
	DefaultLogLevel           = "info"
)

// GetStructuredConfig loads the server configuration from env, the command
// line args (without the program name) and the optional config file, in
// increasing priority file < env < flags, and validates it.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			AuthRateLimit: DefaultAuthRateLimit,
			AuthRateBurst: DefaultAuthRateBurst,
		},
		Storage: Storage{DB: DBConfig{Driver: DefaultDriver}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			ServerAddress:  DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
			SessionFile:    defaultSessionFile(),
		},
		Workers: Workers{GrantSweepInterval: DefaultGrantSweepInterval},
		Log:     Log{Level: DefaultLogLevel},
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "family-vault", "session.json")
}

// String is used in startup logs; secrets are masked.
func (cfg *StructuredConfig) String() string {
	return fmt.Sprintf("driver=%s http=%s grpc=%s timeout=%s issuer=%s token_ttl=%s sweep=%s",
		cfg.Storage.DB.Driver,
		cfg.Server.HTTPAddress,
		cfg.Server.GRPCAddress,
		cfg.Server.RequestTimeout,
		cfg.App.TokenIssuer,
		cfg.App.TokenDuration,
		cfg.Workers.GrantSweepInterval,
	)
}
