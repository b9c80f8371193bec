// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when nothing is left of the "Authorization"
	// header once the "Bearer " prefix is removed.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// errInvalidJSON marks a request body that is not valid JSON.
	errInvalidJSON = errors.New("invalid JSON was passed")

	// errBodyTooLarge marks a request body above maxBodySize, counted after
	// gzip decompression.
	errBodyTooLarge = errors.New("request body is too large")
)
