// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest is the body of POST /auth/sign-up.
type SignUpRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,password"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required,eqfield=Password"`
}

// SignInRequest is the body of POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateTransactionRequest is the body of POST /transactions.
//
// Kind is accepted as an alias of Type; when both are sent Type wins.
type CreateTransactionRequest struct {
	Type        TransactionType `json:"type" validate:"required,oneof=expense income"`
	Kind        TransactionType `json:"kind,omitempty" validate:"-"`
	Date        string          `json:"date" validate:"required,date"`
	Description string          `json:"description" validate:"required"`
	Value       *Amount         `json:"value" validate:"required,amount"`
}

// ResolveType copies Kind into Type when only the alias was sent.
func (r *CreateTransactionRequest) ResolveType() {
	if r.Type == "" {
		r.Type = r.Kind
	}
}

// UpdateTransactionRequest is the body of PUT /transactions.
type UpdateTransactionRequest struct {
	ID          string  `json:"id" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Value       *Amount `json:"value" validate:"required,amount"`
}
