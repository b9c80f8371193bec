// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a config that passes validation on its own.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{PasswordMinLength: 6, PasswordHashCost: 4},
		Storage: Storage{DB: DB{DSN: "sqlite://test.db"}},
		Server:  Server{HTTPAddress: ":5000"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error, no configs and no defaults.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.False(t, b.defaults)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that an empty builder with defaults yields
// the built-in configuration.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultPasswordMinLength, cfg.App.PasswordMinLength)
	assert.Equal(t, DefaultPasswordHashCost, cfg.App.PasswordHashCost)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultDatabaseName, cfg.Storage.DB.Name)
	assert.Equal(t, DefaultConnectTimeout, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultCORSOrigin, cfg.Server.CORSOrigin)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

// TestBuild_EmptyBuilderFailsValidation verifies that without defaults an
// empty builder produces an invalid config.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	first := validConfig()
	first.App.Version = "1.0.0"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{Version: "2.0.0", LogLevel: "info"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

// TestBuild_DefaultsDoNotOverride verifies that defaults only fill gaps.
func TestBuild_DefaultsDoNotOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/wallet"}},
		Server:  Server{CORSOrigin: "https://wallet.example"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/wallet", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://wallet.example", cfg.Server.CORSOrigin)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// ── fallbacks ─────────────────────────────────────────────────────────────────

// TestBuild_MongoURIFallback verifies that MONGO_URI fills an empty DSN
// before defaults are applied.
func TestBuild_MongoURIFallback(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{MongoURI: "mongodb://localhost:27017"})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.DSN)
}

// TestBuild_PortFallback verifies that PORT becomes ":PORT" when no address
// is configured.
func TestBuild_PortFallback(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Port: "8080"})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}

// TestBuild_FallbacksDoNotOverrideStructuredFields verifies that explicit
// DSN and address take precedence over the legacy variables.
func TestBuild_FallbacksDoNotOverrideStructuredFields(t *testing.T) {
	c := validConfig()
	c.MongoURI = "mongodb://ignored"
	c.Port = "1234"

	b := newConfigBuilder()
	b.configs = append(b.configs, c)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "sqlite://test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{
			name:    "zero password length",
			mutate:  func(c *StructuredConfig) { c.App.PasswordMinLength = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too low",
			mutate:  func(c *StructuredConfig) { c.App.PasswordHashCost = 3 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too high",
			mutate:  func(c *StructuredConfig) { c.App.PasswordHashCost = 32 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty DSN",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── sources ───────────────────────────────────────────────────────────────────

// TestWithJSON_UsesPathFromEarlierSource verifies that the JSON path set by
// flags is loaded and that flags still win over JSON values.
func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"version": "from-json", "log_level": "error"},
		"server": map[string]any{"request_timeout": "20s"},
	})

	setEnvVars(t, nil)

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-c", path, "-version", "from-flags"}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-flags", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
}

// TestWithEnv_WinsOverFlags verifies the env > flags priority.
func TestWithEnv_WinsOverFlags(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": ":7000"})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", ":6000"}).
		withDefaults().
		build()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
}

// TestWithJSON_MissingFile verifies that a missing JSON file is reported.
func TestWithJSON_MissingFile(t *testing.T) {
	setEnvVars(t, map[string]string{"CONFIG": "/nonexistent/wallet.json"})

	cfg, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestWithFlags_InvalidFlag verifies that flag errors are collected.
func TestWithFlags_InvalidFlag(t *testing.T) {
	cfg, err := newConfigBuilder().withFlags([]string{"-a", "bad"}).withDefaults().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}
