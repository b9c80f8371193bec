// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the wallet: registration and
// sign-in, bearer token resolution and per-user transaction bookkeeping.
package service

import (
	"github.com/MKhiriev/go-wallet/internal/config"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/store"
	"github.com/MKhiriev/go-wallet/internal/validators"
)

type Services struct {
	AuthService        AuthService
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator(cfg.PasswordMinLength)

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	transactionService := NewTransactionValidationService(validator).
		Wrap(NewTransactionService(storages.TransactionRepository, logger))

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, storages.SessionRepository, validator, cfg, logger),
		TransactionService: transactionService,
		AppInfoService:     appInfoService,
	}, nil
}
