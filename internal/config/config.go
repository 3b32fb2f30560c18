package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTTLSeconds is the freshness window used when nothing else is configured.
const DefaultTTLSeconds = 300

// Config holds all leaguebot configuration.
type Config struct {
	// Sheets identifies the spreadsheet and the service account that reads it.
	Sheets SheetsConfig `yaml:"sheets"`

	// Cache settings
	Cache CacheConfig `yaml:"cache"`

	// Server settings
	Server ServerConfig `yaml:"server"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SheetsConfig configures the Google Sheets client.
type SheetsConfig struct {
	SpreadsheetID string `yaml:"spreadsheet_id"`
	ClientEmail   string `yaml:"client_email"`
	PrivateKey    string `yaml:"private_key"`
}

// CacheConfig configures the range cache.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
	// BoltPath enables persistent storage of fetched ranges when set.
	BoltPath string `yaml:"bolt_path"`
	// StaleReads keeps serving cached ranges after the TTL until an explicit invalidation.
	StaleReads bool `yaml:"stale_reads"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			TTLSeconds: DefaultTTLSeconds,
		},
		Server: ServerConfig{
			ListenAddr: ":8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, then applies environment
// overrides. An empty path, or a path that doesn't exist, yields the
// defaults plus the environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SHEETCACHE_SPREADSHEET_ID"); v != "" {
		c.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("SHEETCACHE_CLIENT_EMAIL"); v != "" {
		c.Sheets.ClientEmail = v
	}
	if v := os.Getenv("SHEETCACHE_PRIVATE_KEY"); v != "" {
		c.Sheets.PrivateKey = v
	}
	if v := os.Getenv("SHEETCACHE_TTL_SECONDS"); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SHEETCACHE_TTL_SECONDS %q: %w", v, err)
		}
		c.Cache.TTLSeconds = ttl
	}
	if v := os.Getenv("SHEETCACHE_BOLT_PATH"); v != "" {
		c.Cache.BoltPath = v
	}
	if v := os.Getenv("SHEETCACHE_STALE_READS"); v != "" {
		staleReads, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SHEETCACHE_STALE_READS %q: %w", v, err)
		}
		c.Cache.StaleReads = staleReads
	}
	if v := os.Getenv("SHEETCACHE_LISTEN_ADDR"); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv("SHEETCACHE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// TTL returns the cache TTL as a duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Sheets.SpreadsheetID == "" {
		return errors.New("spreadsheet id not configured (set SHEETCACHE_SPREADSHEET_ID)")
	}
	if c.Sheets.ClientEmail == "" || c.Sheets.PrivateKey == "" {
		return errors.New("service account not configured (set SHEETCACHE_CLIENT_EMAIL and SHEETCACHE_PRIVATE_KEY)")
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("invalid cache ttl: %d seconds", c.Cache.TTLSeconds)
	}
	return nil
}
