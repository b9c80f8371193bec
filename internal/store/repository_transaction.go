// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/models"
)

// transactionRepository is the [TransactionRepository] implementation over
// the "transactions" collection. Every lookup by id is scoped to the owner,
// so a user can never reach another user's entries.
type transactionRepository struct {
	logger     *logger.Logger
	collection Collection
	ids        IDGenerator
}

func NewTransactionRepository(collection Collection, ids IDGenerator, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		collection: collection,
		ids:        ids,
		logger:     logger,
	}
}

// CreateTransaction stores transaction with a fresh ID and returns it.
func (r *transactionRepository) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	transaction.ID = r.ids.Generate()
	if err := r.collection.InsertOne(ctx, newTransactionDocument(transaction)); err != nil {
		log.Err(err).Str("func", "*transactionRepository.CreateTransaction").Msg("error inserting transaction")
		return models.Transaction{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return transaction, nil
}

// FindUserTransactions returns every entry owned by userID in insertion
// order. The result is never nil.
func (r *transactionRepository) FindUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	var docs []transactionDocument
	if err := r.collection.Find(ctx, Filter{fieldUserID: userID}, &docs); err != nil {
		log.Err(err).Str("func", "*transactionRepository.FindUserTransactions").Msg("error listing transactions")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(docs))
	for _, doc := range docs {
		transactions = append(transactions, doc.model())
	}

	return transactions, nil
}

// UpdateTransaction overwrites description and value of the entry selected
// by update.ID and update.UserID. Returns [ErrTransactionNotFound] when the
// user owns no such entry.
func (r *transactionRepository) UpdateTransaction(ctx context.Context, update models.TransactionUpdate) error {
	log := logger.FromContext(ctx)

	fields := Fields{
		fieldDescription: update.Description,
		fieldValue:       decimalValue{update.Value.Decimal},
	}

	matched, err := r.collection.UpdateOne(ctx, ownedBy(update.UserID, update.ID), fields)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.UpdateTransaction").Msg("error updating transaction")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if !matched {
		return ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes the entry id owned by userID. Returns
// [ErrTransactionNotFound] when the user owns no such entry.
func (r *transactionRepository) DeleteTransaction(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	deleted, err := r.collection.DeleteOne(ctx, ownedBy(userID, id))
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.DeleteTransaction").Msg("error deleting transaction")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if !deleted {
		return ErrTransactionNotFound
	}

	return nil
}

func ownedBy(userID, id string) Filter {
	return Filter{IDField: id, fieldUserID: userID}
}
