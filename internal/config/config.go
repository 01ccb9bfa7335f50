// Package config provides configuration loading and validation for dnsquery.
//
// Configuration is an optional JSON file; every field has a built-in default
// so the tool runs with no file at all. Command-line flags override whatever
// the file says.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// EnvConfigPath is consulted for the config file path when the -config flag
// is not given.
const EnvConfigPath = "DNSQUERY_CONFIG"

// Defaults applied by Validate for unset fields.
const (
	DefaultServer    = "8.8.8.8:53"
	DefaultQueryName = "www.google.com"
	DefaultTimeout   = 2 * time.Second
	DefaultRecvSize  = 4096
)

// Config is the full dnsquery configuration.
type Config struct {
	// Server is the resolver address as "host:port".
	Server string `json:"server"`
	// QueryName is the domain queried when none is given on the command line.
	QueryName string `json:"query_name"`
	// TimeoutRaw is the exchange deadline as a duration string (e.g. "2s").
	TimeoutRaw string        `json:"timeout"`
	Timeout    time.Duration `json:"-"`
	// RecvSize is the UDP receive buffer size in bytes.
	RecvSize int `json:"recv_size"`
	// LocalAddr optionally pins the local end of the socket ("host:port").
	LocalAddr string `json:"local_addr"`
	// HistoryPath enables the SQLite query log when non-empty.
	HistoryPath string `json:"history_path"`

	Logging LoggingConfig `json:"logging"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string `json:"level"`
	Structured       bool   `json:"structured"`
	StructuredFormat string `json:"structured_format"`
	IncludePID       bool   `json:"include_pid"`
}

// Default returns a validated configuration with every field at its default.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate() // defaults always validate
	return cfg
}

// ResolveConfigPath picks the config file path: the flag value wins, then
// the DNSQUERY_CONFIG environment variable, then none.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads and validates the JSON config at path. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration, filling defaults.
func (cfg *Config) Validate() error {
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	if cfg.QueryName == "" {
		cfg.QueryName = DefaultQueryName
	}

	// Parse timeout
	if cfg.TimeoutRaw == "" {
		cfg.Timeout = DefaultTimeout
	} else {
		d, err := time.ParseDuration(cfg.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		cfg.Timeout = d
	}

	if cfg.RecvSize == 0 {
		cfg.RecvSize = DefaultRecvSize
	}
	if cfg.RecvSize < 0 {
		return errors.New("recv_size must be positive")
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}

	return nil
}
