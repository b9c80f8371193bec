// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationErrors is a list of human-readable schema violations, one per
// offending field, in field order. It is sent to clients as a JSON array.
type ValidationErrors []string

func (e ValidationErrors) Error() string {
	return strings.Join(e, "; ")
}

// NewValidationErrors is a shorthand for building a single-message list.
func NewValidationErrors(messages ...string) ValidationErrors {
	return ValidationErrors(messages)
}
