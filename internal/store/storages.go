// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/utils"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository        UserRepository
	SessionRepository     SessionRepository
	TransactionRepository TransactionRepository
}

// NewStorages builds every repository over the collections of db.
func NewStorages(db Database, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		UserRepository:        NewUserRepository(db.Collection(UsersCollection), ids, log),
		SessionRepository:     NewSessionRepository(db.Collection(SessionsCollection), ids, log),
		TransactionRepository: NewTransactionRepository(db.Collection(TransactionsCollection), ids, log),
	}
}
