// Package config loads service configuration from defaults, an optional YAML file and STATS_ env vars.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STATS_"

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	BodyLimitMB     int           `koanf:"body_limit_mb"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `koanf:"driver"` // postgres | memory
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
	ReadBatchSize   int           `koanf:"read_batch_size"` // rows per page when loading records for statistics
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // console | json
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if c.Server.BodyLimitMB <= 0 {
		return fmt.Errorf("server.body_limit_mb must be > 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0")
	}

	switch c.Database.Driver {
	case "memory":
	case "postgres":
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns < 0 {
			return fmt.Errorf("database.max_idle_conns must be >= 0")
		}
		if c.Database.ReadBatchSize <= 0 {
			return fmt.Errorf("database.read_batch_size must be > 0")
		}
	default:
		return fmt.Errorf("unsupported database.driver %q (must be postgres or memory)", c.Database.Driver)
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q (must be console or json)", c.Log.Format)
	}

	return nil
}

// Load parses config from defaults, the file at configPath (if non-empty) and env, then validates it.
// Env keys use "__" for nesting: STATS_DATABASE__DSN sets database.dsn.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"server.host":                "0.0.0.0",
		"server.port":                8080,
		"server.body_limit_mb":       1,
		"server.shutdown_timeout":    "5s",
		"database.driver":            "postgres",
		"database.dsn":               "",
		"database.max_open_conns":    20,
		"database.max_idle_conns":    10,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,
		"database.read_batch_size":   5000,
		"log.level":                  "info",
		"log.format":                 "json",
	}
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
