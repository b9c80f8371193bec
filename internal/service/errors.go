// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is returned by sign-in for an unknown email and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a bearer token does not resolve to a
	// session and its user.
	ErrUnauthorized = errors.New("unauthorized")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
