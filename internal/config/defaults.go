// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to every field left empty by the other sources.
const (
	DefaultPasswordMinLength = 6
	DefaultPasswordHashCost  = 10
	DefaultLogLevel          = "debug"
	DefaultVersion           = "dev"
	DefaultDSN               = "sqlite://my-wallet.db"
	DefaultDatabaseName      = "my-wallet"
	DefaultConnectTimeout    = 10 * time.Second
	DefaultHTTPAddress       = ":5000"
	DefaultCORSOrigin        = "*"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordMinLength: DefaultPasswordMinLength,
			PasswordHashCost:  DefaultPasswordHashCost,
			LogLevel:          DefaultLogLevel,
			Version:           DefaultVersion,
		},
		Storage: Storage{
			DB: DB{
				DSN:            DefaultDSN,
				Name:           DefaultDatabaseName,
				ConnectTimeout: DefaultConnectTimeout,
			},
		},
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
			CORSOrigin:  DefaultCORSOrigin,
		},
	}
}

// applyFallbacks maps the variables of earlier deployments onto their
// structured counterparts when the structured field is empty.
func (cfg *StructuredConfig) applyFallbacks() {
	if cfg.Storage.DB.DSN == "" && cfg.MongoURI != "" {
		cfg.Storage.DB.DSN = cfg.MongoURI
	}

	if cfg.Server.HTTPAddress == "" && cfg.Port != "" {
		cfg.Server.HTTPAddress = ":" + cfg.Port
	}
}
