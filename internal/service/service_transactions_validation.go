// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet/internal/validators"
	"github.com/MKhiriev/go-wallet/models"
)

// TransactionValidationService checks request schemas before handing them
// to the wrapped TransactionService.
type TransactionValidationService struct {
	inner     TransactionService
	validator validators.Validator
}

func NewTransactionValidationService(validator validators.Validator) TransactionServiceWrapper {
	return &TransactionValidationService{
		validator: validator,
	}
}

func (v *TransactionValidationService) CreateTransaction(ctx context.Context, user models.User, req models.CreateTransactionRequest) (models.Transaction, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Transaction{}, fmt.Errorf("error during transaction validation before saving: %w", err)
	}

	return v.inner.CreateTransaction(ctx, user, req)
}

func (v *TransactionValidationService) ListTransactions(ctx context.Context, user models.User) ([]models.Transaction, error) {
	return v.inner.ListTransactions(ctx, user)
}

func (v *TransactionValidationService) UpdateTransaction(ctx context.Context, user models.User, req models.UpdateTransactionRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during transaction validation before updating: %w", err)
	}

	return v.inner.UpdateTransaction(ctx, user, req)
}

func (v *TransactionValidationService) DeleteTransaction(ctx context.Context, user models.User, id string) error {
	return v.inner.DeleteTransaction(ctx, user, id)
}

func (v *TransactionValidationService) Wrap(wrapped TransactionService) TransactionService {
	v.inner = wrapped
	return v
}
