// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultHTTPAddress     = "localhost:4567"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultSessionIssuer   = "go-cms"
	DefaultSessionDuration = 24 * time.Hour
	DefaultBcryptCost      = 10
	DefaultVersion         = "dev"
	DefaultLogLevel        = "info"
)

// StructuredConfig is the top-level configuration container for the go-cms
// server. It is populated by merging environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session signing, password hashing and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the document root and the credential backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// SessionSignKey is the HMAC secret used to sign session cookies.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of session cookies. Cookies issued by
	// anything else are treated as anonymous sessions.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is how long a session cookie stays valid.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// BcryptCost is the work factor used when hashing new passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the storage settings.
type Storage struct {
	// Documents holds the document store root.
	Documents Documents `envPrefix:"DOCUMENTS_"`

	// Credentials holds the credential file location.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`

	// DB holds the optional SQL credential backend. When DSN is set it
	// takes precedence over the credential file.
	DB DB `envPrefix:"DB_"`
}

// Documents holds the document store settings.
type Documents struct {
	// Dir is the flat directory holding all managed documents.
	// Env: STORAGE_DOCUMENTS_DIR
	Dir string `env:"DIR"`
}

// Credentials holds the file-based credential store settings.
type Credentials struct {
	// File is the YAML file mapping usernames to bcrypt hashes.
	// Env: STORAGE_CREDENTIALS_FILE
	File string `env:"FILE"`
}

// DB holds connection settings for the SQL credential backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file
	// path ("file:users.db", "users.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings of the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads the configuration in the following priority
// order (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to whatever is still empty, then the result is
// validated.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = DefaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
}
