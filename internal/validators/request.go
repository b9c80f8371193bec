// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-wallet/models"
	"github.com/go-playground/validator/v10"
)

const (
	tagPassword = "password"
	tagDate     = "date"
	tagAmount   = "amount"
)

// dateLayouts lists the accepted transaction date formats. Slash dates are
// month first, so 15/01/2024 is rejected.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/1/2",
	"1/2/2006",
	"1/2",
}

// RequestValidator implements the Validator interface for the wallet's
// request bodies: SignUpRequest, SignInRequest, CreateTransactionRequest
// and UpdateTransactionRequest.
//
// Rules are declared with `validate` struct tags on the models and enforced
// by go-playground/validator. Field names in messages are taken from the
// `json` tags.
type RequestValidator struct {
	validate          *validator.Validate
	passwordMinLength int

	// refNames maps struct field names used in cross-field tags to their
	// json names.
	refNames map[string]string
}

// NewRequestValidator constructs a RequestValidator whose password rule
// requires at least passwordMinLength characters.
func NewRequestValidator(passwordMinLength int) *RequestValidator {
	v := &RequestValidator{
		validate:          validator.New(validator.WithRequiredStructEnabled()),
		passwordMinLength: passwordMinLength,
		refNames: map[string]string{
			"Password": "password",
		},
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// amounts are checked by sign only
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if amount, ok := field.Interface().(models.Amount); ok {
			return amount.Sign()
		}
		return nil
	}, models.Amount{})

	// registration only fails for empty tags or nil funcs
	_ = v.validate.RegisterValidation(tagPassword, v.validPassword)
	_ = v.validate.RegisterValidation(tagDate, validDate)
	_ = v.validate.RegisterValidation(tagAmount, nonNegativeAmount)

	return v
}

// Validate dispatches validation based on the dynamic type of obj. Both
// value and pointer forms of each supported request are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known request and
// ValidationErrors if any field rule is violated.
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.SignUpRequest, *models.SignUpRequest,
		models.SignInRequest, *models.SignInRequest,
		models.CreateTransactionRequest, *models.CreateTransactionRequest,
		models.UpdateTransactionRequest, *models.UpdateTransactionRequest:
		return v.validateStruct(ctx, value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make(ValidationErrors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, v.message(fe))
	}

	return messages
}

func (v *RequestValidator) validPassword(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(fl.Field().String()) >= v.passwordMinLength
}

func validDate(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// nonNegativeAmount receives the sign of a models.Amount.
func nonNegativeAmount(fl validator.FieldLevel) bool {
	return fl.Field().Int() >= 0
}
