// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of request schemas across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//   - ValidationErrors: the ordered list of human-readable messages produced
//     when one or more field rules are violated.
//
// Usage patterns:
//  1. Construct a Validator with NewRequestValidator.
//  2. Inject it into services.
//  3. Call Validate with context and the decoded request.
//
// Every field rule is checked; the result carries one message per violated
// field in declaration order.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks and
// cross-field rules.
type Validator interface {

	// Validate validates the provided input. A nil error means the value is
	// acceptable; schema violations are reported as ValidationErrors.
	Validate(context.Context, any) error
}
