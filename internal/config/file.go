package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout shared by JSON and YAML config files.
type fileConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		RateLimit     float64  `json:"rate_limit" yaml:"rate_limit"`
		RateBurst     int      `json:"rate_burst" yaml:"rate_burst"`
	} `json:"auth" yaml:"auth"`

	Storage struct {
		DSN          string `json:"dsn" yaml:"dsn"`
		Driver       string `json:"driver" yaml:"driver"`
		MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Client struct {
		ServerAddress  string   `json:"server_address" yaml:"server_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		SessionFile    string   `json:"session_file" yaml:"session_file"`
		AutoLockAfter  Duration `json:"auto_lock_after" yaml:"auto_lock_after"`
	} `json:"client" yaml:"client"`

	Workers struct {
		GrantSweepInterval Duration `json:"grant_sweep_interval" yaml:"grant_sweep_interval"`
	} `json:"workers" yaml:"workers"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// parseFile reads a config file; the format follows the extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.Auth.TokenSignKey,
			TokenIssuer:   fc.Auth.TokenIssuer,
			TokenDuration: time.Duration(fc.Auth.TokenDuration),
			AuthRateLimit: fc.Auth.RateLimit,
			AuthRateBurst: fc.Auth.RateBurst,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN:          fc.Storage.DSN,
				Driver:       fc.Storage.Driver,
				MaxOpenConns: fc.Storage.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			ServerAddress:  fc.Client.ServerAddress,
			RequestTimeout: time.Duration(fc.Client.RequestTimeout),
			SessionFile:    fc.Client.SessionFile,
		},
		Workers: Workers{
			GrantSweepInterval: time.Duration(fc.Workers.GrantSweepInterval),
			AutoLockAfter:      time.Duration(fc.Client.AutoLockAfter),
		},
		Log: Log{Level: fc.LogLevel},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or
// "30s" in both JSON and YAML. Bare JSON numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
