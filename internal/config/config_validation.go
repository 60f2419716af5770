// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultMaxBodyBytes   = 1 << 20
	defaultCollection     = "jcadata"
	defaultLogLevel       = "debug"
)

// applyDefaults fills the fields no source has set. The listen port falls
// back to the PORT environment variable, and the storage driver is inferred
// from the remaining storage settings.
func (cfg *StructuredConfig) applyDefaults() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.Port == 0 {
		var fallback portFallback
		if err := parseEnv(&fallback); err != nil {
			return err
		}
		cfg.Server.Port = fallback.Port
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Storage.Collection == "" {
		cfg.Storage.Collection = defaultCollection
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = inferDriver(cfg.Storage)
	}

	return nil
}

func inferDriver(storage Storage) string {
	switch dsn := storage.DB.DSN; {
	case storage.Remote.Address != "":
		return DriverHTTP
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres
	case dsn != "":
		return DriverSQLite
	default:
		return DriverMemory
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Secret == "" {
		return fmt.Errorf("%w: write secret is not set", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" && (cfg.Server.Port < 1 || cfg.Server.Port > 65535) {
		return fmt.Errorf("%w: no valid address or port", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: negative limits", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case DriverHTTP:
		if cfg.Storage.Remote.Address == "" {
			return fmt.Errorf("%w: http driver requires a remote address", ErrInvalidStorageConfigs)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return nil
}

// ListenAddress returns the address the HTTP server binds to: the explicit
// host:port if configured, otherwise all interfaces on Port.
func (s Server) ListenAddress() string {
	if s.HTTPAddress != "" {
		return s.HTTPAddress
	}

	return ":" + strconv.Itoa(s.Port)
}
