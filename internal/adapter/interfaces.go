// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client of the wallet REST API.
//
// [WalletAdapter] hides the HTTP details: JSON bodies, the bearer token
// header and the "id" header used by deletion. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
// Validation failures are returned as [*ValidationError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wallet/models"
)

// WalletAdapter talks to a wallet server on behalf of one user.
type WalletAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before sign-in.
	Token() string

	// SignUp registers a new user.
	SignUp(ctx context.Context, req models.SignUpRequest) error

	// SignIn opens a session and stores its token via SetToken.
	SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error)

	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) error
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, req models.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, id string) error

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
