// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-wallet/models"
)

// AuthService registers users, signs them in and resolves bearer tokens.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) error
	SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error)
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// TransactionService manages the transactions of an authenticated user.
// Every operation is scoped to user.
type TransactionService interface {
	CreateTransaction(ctx context.Context, user models.User, req models.CreateTransactionRequest) (models.Transaction, error)
	ListTransactions(ctx context.Context, user models.User) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, user models.User, req models.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, user models.User, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TransactionServiceWrapper defines middleware composition for TransactionService.
// Implementations wrap an existing TransactionService to add behavior such as
// validating.
type TransactionServiceWrapper interface {
	Wrap(TransactionService) TransactionService // returns a decorated TransactionService applying additional behavior
}
