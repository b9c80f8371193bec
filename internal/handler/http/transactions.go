// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/service"
	"github.com/MKhiriev/go-wallet/internal/utils"
	"github.com/MKhiriev/go-wallet/models"
)

// transactionIDHeader carries the identifier of the entry to delete.
const transactionIDHeader = "id"

// currentUser returns the user put into the context by the auth middleware.
// Its absence means the route was registered without that middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
	}
	return user, ok
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CreateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ResolveType()

	transaction, err := h.services.TransactionService.CreateTransaction(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().
		Str("user_id", user.ID).
		Str("transaction_id", transaction.ID).
		Msg("transaction created")
	utils.WriteStatus(w, outcomeCreated.status())
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	transactions, err := h.services.TransactionService.ListTransactions(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	utils.WriteJSON(w, transactions, outcomeOK.status())
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.UpdateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TransactionService.UpdateTransaction(r.Context(), user, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteStatus(w, outcomeOK.status())
}

// deleteTransaction reads the entry id from the "id" request header.
func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	id := r.Header.Get(transactionIDHeader)
	if err := h.services.TransactionService.DeleteTransaction(r.Context(), user, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteStatus(w, outcomeOK.status())
}
