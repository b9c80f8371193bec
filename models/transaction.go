// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TransactionType is the kind of ledger entry.
type TransactionType string

const (
	// Expense is money that left the wallet.
	Expense TransactionType = "expense"

	// Income is money that entered the wallet.
	Income TransactionType = "income"
)

// Transaction is a single income or expense entry owned by one user.
type Transaction struct {
	// ID is the unique identifier of the entry.
	ID string `json:"_id"`

	// UserID references the owning [User].
	UserID string `json:"userId"`

	// Type is either [Expense] or [Income].
	Type TransactionType `json:"type"`

	// Date is the date of the entry exactly as the client sent it.
	Date string `json:"date"`

	// Description is a free-text, non-empty label.
	Description string `json:"description"`

	// Value is the non-negative amount of the entry.
	Value Amount `json:"value"`
}

// TransactionUpdate carries the mutable part of a [Transaction].
// ID and UserID select the entry; Description and Value are written.
type TransactionUpdate struct {
	ID          string
	UserID      string
	Description string
	Value       Amount
}
