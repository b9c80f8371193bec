// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/store"
	"github.com/MKhiriev/go-wallet/models"
)

type transactionService struct {
	transactionRepository store.TransactionRepository
	logger                *logger.Logger
}

// NewTransactionService constructs the TransactionService core. It expects
// requests that were already validated; see NewTransactionValidationService.
func NewTransactionService(transactionRepository store.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		logger:                logger,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, user models.User, req models.CreateTransactionRequest) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	var value models.Amount
	if req.Value != nil {
		value = *req.Value
	}

	transaction, err := s.transactionRepository.CreateTransaction(ctx, models.Transaction{
		UserID:      user.ID,
		Type:        req.Type,
		Date:        req.Date,
		Description: req.Description,
		Value:       value,
	})
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("transaction creation failed")
		return models.Transaction{}, fmt.Errorf("transaction creation failed: %w", err)
	}

	return transaction, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, user models.User) ([]models.Transaction, error) {
	transactions, err := s.transactionRepository.FindUserTransactions(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("listing transactions failed")
		return nil, fmt.Errorf("listing transactions failed: %w", err)
	}

	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, user models.User, req models.UpdateTransactionRequest) error {
	if req.ID == "" {
		return store.ErrTransactionNotFound
	}

	var value models.Amount
	if req.Value != nil {
		value = *req.Value
	}

	err := s.transactionRepository.UpdateTransaction(ctx, models.TransactionUpdate{
		ID:          req.ID,
		UserID:      user.ID,
		Description: req.Description,
		Value:       value,
	})
	if err != nil {
		return fmt.Errorf("transaction update failed: %w", err)
	}

	return nil
}

// DeleteTransaction removes the entry id of user. An empty id never matches.
func (s *transactionService) DeleteTransaction(ctx context.Context, user models.User, id string) error {
	if id == "" {
		return store.ErrTransactionNotFound
	}

	if err := s.transactionRepository.DeleteTransaction(ctx, user.ID, id); err != nil {
		return fmt.Errorf("transaction deletion failed: %w", err)
	}

	return nil
}
