// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/mock"
	"github.com/MKhiriev/go-wallet/internal/store"
	"github.com/MKhiriev/go-wallet/internal/validators"
	"github.com/MKhiriev/go-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var alice = models.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}

func amount(s string) *models.Amount {
	a := models.MustAmount(s)
	return &a
}

// newTestTransactionSvc returns the validating service over a mocked repository.
func newTestTransactionSvc(t *testing.T) (TransactionService, *mock.MockTransactionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTransactionRepository(ctrl)

	svc := NewTransactionValidationService(validators.NewRequestValidator(6)).
		Wrap(NewTransactionService(repo, logger.Nop()))

	return svc, repo
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestTransactionService_Create_Success(t *testing.T) {
	svc, repo := newTestTransactionSvc(t)
	req := models.CreateTransactionRequest{
		Type: models.Income, Date: "2024-03-01", Description: "salary", Value: amount("1500.00"),
	}

	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx models.Transaction) (models.Transaction, error) {
			assert.Equal(t, "u1", tx.UserID, "owner comes from the authenticated user")
			assert.Equal(t, models.Income, tx.Type)
			assert.Equal(t, "2024-03-01", tx.Date)
			assert.Equal(t, "salary", tx.Description)
			assert.True(t, tx.Value.Equal(models.MustAmount("1500").Decimal))
			tx.ID = "t1"
			return tx, nil
		})

	tx, err := svc.CreateTransaction(context.Background(), alice, req)

	require.NoError(t, err)
	assert.Equal(t, "t1", tx.ID)
}

func TestTransactionService_Create_ZeroValueAllowed(t *testing.T) {
	svc, repo := newTestTransactionSvc(t)

	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(models.Transaction{ID: "t1"}, nil)

	_, err := svc.CreateTransaction(context.Background(), alice, models.CreateTransactionRequest{
		Type: models.Expense, Date: "2024-03-01", Description: "free", Value: amount("0"),
	})

	assert.NoError(t, err)
}

func TestTransactionService_Create_NegativeValueRejected(t *testing.T) {
	svc, _ := newTestTransactionSvc(t)

	_, err := svc.CreateTransaction(context.Background(), alice, models.CreateTransactionRequest{
		Type: models.Expense, Date: "2024-03-01", Description: "refund", Value: amount("-1"),
	})

	var verr validators.ValidationErrors
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, validators.ValidationErrors{`"value" must be greater than or equal to 0`}, verr)
}

func TestTransactionService_Create_RepositoryError(t *testing.T) {
	svc, repo := newTestTransactionSvc(t)

	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(models.Transaction{}, errors.New("db down"))

	_, err := svc.CreateTransaction(context.Background(), alice, models.CreateTransactionRequest{
		Type: models.Expense, Date: "2024-03-01", Description: "x", Value: amount("1"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestTransactionService_List(t *testing.T) {
	svc, repo := newTestTransactionSvc(t)
	want := []models.Transaction{{ID: "t1", UserID: "u1"}, {ID: "t2", UserID: "u1"}}

	repo.EXPECT().FindUserTransactions(gomock.Any(), "u1").Return(want, nil)

	got, err := svc.ListTransactions(context.Background(), alice)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTransactionService_List_Error(t *testing.T) {
	svc, repo := newTestTransactionSvc(t)

	repo.EXPECT().FindUserTransactions(gomock.Any(), "u1").Return(nil, errors.New("db down"))

	_, err := svc.ListTransactions(context.Background(), alice)

	assert.Error(t, err)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestTransactionService_Update_Success(t *testing.T) {
	svc, repo := newTestTransactionSvc(t)

	repo.EXPECT().UpdateTransaction(gomock.Any(), models.TransactionUpdate{
		ID: "t1", UserID: "u1", Description: "rent", Value: models.MustAmount("900"),
	}).Return(nil)

	err := svc.UpdateTransaction(context.Background(), alice, models.UpdateTransactionRequest{
		ID: "t1", Description: "rent", Value: amount("900"),
	})

	assert.NoError(t, err)
}

func TestTransactionService_Update_NotFound(t *testing.T) {
	svc, repo := newTestTransactionSvc(t)

	repo.EXPECT().UpdateTransaction(gomock.Any(), gomock.Any()).Return(store.ErrTransactionNotFound)

	err := svc.UpdateTransaction(context.Background(), alice, models.UpdateTransactionRequest{
		ID: "t-of-bob", Description: "rent", Value: amount("900"),
	})

	assert.ErrorIs(t, err, store.ErrTransactionNotFound)
}

func TestTransactionService_Update_Invalid(t *testing.T) {
	svc, _ := newTestTransactionSvc(t)

	err := svc.UpdateTransaction(context.Background(), alice, models.UpdateTransactionRequest{})

	var verr validators.ValidationErrors
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr, 3)
}

func TestTransactionService_Update_EmptyIDUnvalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewTransactionService(mock.NewMockTransactionRepository(ctrl), logger.Nop())

	err := svc.UpdateTransaction(context.Background(), alice, models.UpdateTransactionRequest{Description: "x", Value: amount("1")})

	assert.ErrorIs(t, err, store.ErrTransactionNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestTransactionService_Delete(t *testing.T) {
	svc, repo := newTestTransactionSvc(t)

	gomock.InOrder(
		repo.EXPECT().DeleteTransaction(gomock.Any(), "u1", "t1").Return(nil),
		repo.EXPECT().DeleteTransaction(gomock.Any(), "u1", "t1").Return(store.ErrTransactionNotFound),
	)

	require.NoError(t, svc.DeleteTransaction(context.Background(), alice, "t1"))
	assert.ErrorIs(t, svc.DeleteTransaction(context.Background(), alice, "t1"), store.ErrTransactionNotFound)
}

func TestTransactionService_Delete_EmptyID(t *testing.T) {
	svc, _ := newTestTransactionSvc(t)

	err := svc.DeleteTransaction(context.Background(), alice, "")

	assert.ErrorIs(t, err, store.ErrTransactionNotFound)
}
