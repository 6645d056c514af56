package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of [StructuredConfig] used by the CLI.
type ClientConfig struct {
	// ServerAddress is the base URL of the vault server.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// SessionFile keeps the account token between invocations.
	SessionFile string
	// AutoLockAfter locks an idle session; zero disables it.
	AutoLockAfter time.Duration
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
}

// GetClientConfig merges env, the optional config file and overrides (the
// CLI's own flags, highest priority) and validates the client view.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(overrides).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.Client()
	return clientCfg, clientCfg.validate()
}

// Client maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) Client() *ClientConfig {
	return &ClientConfig{
		ServerAddress:  cfg.Adapter.ServerAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		SessionFile:    cfg.Adapter.SessionFile,
		AutoLockAfter:  cfg.Workers.AutoLockAfter,
		LogLevel:       cfg.Log.Level,
	}
}
