// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the wallet
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: password policy, hashing cost,
	// log level and version.
	App App `envPrefix:"APP_"`

	// Storage holds the document store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, CORS and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// MongoURI is the connection string variable used by earlier deployments
	// of the wallet. It is only consulted when Storage.DB.DSN is empty.
	MongoURI string `env:"MONGO_URI"`

	// Port is the bare listening port used by earlier deployments. It is only
	// consulted when Server.HTTPAddress is empty.
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordMinLength is the minimal number of characters accepted for a
	// password at sign-up.
	// Env: APP_PASSWORD_MIN_LENGTH
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH"`

	// PasswordHashCost is the bcrypt cost factor used for new password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the version string exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the document store connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the document store.
type DB struct {
	// DSN selects and configures the backend by its scheme:
	// postgres://, mongodb://, sqlite://path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the database name used by the MongoDB backend.
	// Env: STORAGE_DB_DATABASE_NAME
	Name string `env:"DATABASE_NAME"`

	// ConnectTimeout bounds the initial ping and schema setup at startup.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000" or ":5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigin is the value of Access-Control-Allow-Origin.
	// Env: SERVER_CORS_ORIGIN
	CORSOrigin string `env:"CORS_ORIGIN"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
