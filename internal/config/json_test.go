// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"password_min_length": 7, "password_hash_cost": 4, "log_level": "error", "version": "0.9.0"},
		"storage": {"db": {"dsn": "sqlite://wallet.db", "name": "w", "connect_timeout": "2s"}},
		"server": {"http_address": ":9000", "request_timeout": "1m", "cors_origin": "*"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.App.PasswordMinLength)
	assert.Equal(t, 4, cfg.App.PasswordHashCost)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "sqlite://wallet.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "w", cfg.Storage.DB.Name)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, `{"app": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempFile(t, `{"server": {"request_timeout": "soon"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeTempFile(t, `{}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	out, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(out))
}
