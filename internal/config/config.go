// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Runtime values select where the gateway believes it executes. They decide
// which base URL candidates apply and which session accessor is consulted.
const (
	RuntimeClient = "client"
	RuntimeServer = "server"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with ATS_.
type StructuredConfig struct {
	// API holds the backend base address candidates and transport settings.
	API API `envPrefix:"API_"`
	// Gateway holds the request pipeline behaviour (runtime, redirect,
	// credential retries).
	Gateway Gateway `envPrefix:"GATEWAY_"`
	// Session holds session lookup and at-rest protection settings.
	Session Session `envPrefix:"SESSION_"`
	// Storage holds the session persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`
	// Server holds the listen address of the local session server.
	Server Server `envPrefix:"SERVER_"`
	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`
	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: ATS_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// API holds backend address candidates. The effective base URL is resolved
// by the gateway from these values (first defined wins, in field order).
type API struct {
	// PublicURL is the explicitly configured public API URL.
	// Env: ATS_API_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
	// BackendURL is the server-only backend URL; ignored in client runtime.
	// Env: ATS_API_BACKEND_URL
	BackendURL string `env:"BACKEND_URL"`
	// DefaultURL is the statically configured client-side default, usually
	// shipped in the JSON config file.
	// Env: ATS_API_DEFAULT_URL
	DefaultURL string `env:"DEFAULT_URL"`
	// Timeout is the per-call ceiling enforced by the transport.
	// Env: ATS_API_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
	// ProductionDomains is the allow-list of hosting domain suffixes on which
	// http:// is always upgraded to https://.
	// Env: ATS_API_PRODUCTION_DOMAINS (comma separated)
	ProductionDomains []string `env:"PRODUCTION_DOMAINS" envSeparator:","`
	// LocalHosts lists internal service hostnames treated as local addresses
	// in addition to localhost and loopback IPs.
	// Env: ATS_API_LOCAL_HOSTS (comma separated)
	LocalHosts []string `env:"LOCAL_HOSTS" envSeparator:","`
}

// Gateway holds request pipeline settings.
type Gateway struct {
	// Runtime is either "client" or "server".
	// Env: ATS_GATEWAY_RUNTIME
	Runtime string `env:"RUNTIME"`
	// LoginPath is the location navigated to after a 401.
	// Env: ATS_GATEWAY_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`
	// RedirectDelay defers the login navigation so the caller can surface
	// the error first.
	// Env: ATS_GATEWAY_REDIRECT_DELAY
	RedirectDelay time.Duration `env:"REDIRECT_DELAY"`
	// SessionRetries is the number of additional session lookups made when
	// the first one yields no token.
	// Env: ATS_GATEWAY_SESSION_RETRIES
	SessionRetries int `env:"SESSION_RETRIES"`
	// SessionRetryDelay is the pause between session lookups.
	// Env: ATS_GATEWAY_SESSION_RETRY_DELAY
	SessionRetryDelay time.Duration `env:"SESSION_RETRY_DELAY"`
	// StrictReads makes protected reads without a credential abort locally,
	// like mutating requests do.
	// Env: ATS_GATEWAY_STRICT_READS
	StrictReads bool `env:"STRICT_READS"`
}

// Session holds session lookup settings.
type Session struct {
	// Profile names the locally persisted session used by the client runtime.
	// Env: ATS_SESSION_PROFILE
	Profile string `env:"PROFILE"`
	// Endpoint is the raw session endpoint used as the last-resort fallback.
	// Empty disables the fallback.
	// Env: ATS_SESSION_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// SealKey protects persisted tokens at rest. Empty stores them as is.
	// Env: ATS_SESSION_SEAL_KEY
	SealKey string `env:"SEAL_KEY"`
	// CacheTTL bounds how long the client accessor reuses a loaded session.
	// Env: ATS_SESSION_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Storage groups the session persistence backends.
type Storage struct {
	// DB is the local SQLite database used by the client runtime.
	DB DB `envPrefix:"DB_"`
	// Redis is the shared session store used by the server runtime.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path.
	// Env: ATS_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Redis holds connection settings for the server-side session store.
type Redis struct {
	// Address in host:port form. Empty disables the Redis store.
	// Env: ATS_STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: ATS_STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: ATS_STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Server holds settings of the local session server.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: ATS_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the refresh job inspects the session.
	// Env: ATS_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
	// RefreshBefore is the remaining token lifetime below which the job
	// refreshes it.
	// Env: ATS_WORKERS_REFRESH_BEFORE
	RefreshBefore time.Duration `env:"REFRESH_BEFORE"`
}

// Log holds logger settings.
type Log struct {
	// Level is one of debug, info, warn, error.
	// Env: ATS_LOG_LEVEL
	Level string `env:"LEVEL"`
	// File is the log file used by interactive commands.
	// Env: ATS_LOG_FILE
	File string `env:"FILE"`
}

// Load loads, merges, and validates the configuration from all available
// sources. flags holds the values bound by [BindFlags]; it may be nil.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func Load(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
