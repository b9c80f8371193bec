// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// outcome is the symbolic result of a request. Handlers and the error mapper
// answer with outcomes, and statusCodes fixes the HTTP status of each.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeCreated
	outcomeNoContent
	outcomeBadRequest
	outcomeUnauthorized
	outcomeNotFound
	outcomeConflict
	outcomePayloadTooLarge
	outcomeUnprocessableEntity
	outcomeServerError
)

var statusCodes = map[outcome]int{
	outcomeOK:                  http.StatusOK,
	outcomeCreated:             http.StatusCreated,
	outcomeNoContent:           http.StatusNoContent,
	outcomeBadRequest:          http.StatusBadRequest,
	outcomeUnauthorized:        http.StatusUnauthorized,
	outcomeNotFound:            http.StatusNotFound,
	outcomeConflict:            http.StatusConflict,
	outcomePayloadTooLarge:     http.StatusRequestEntityTooLarge,
	outcomeUnprocessableEntity: http.StatusUnprocessableEntity,
	outcomeServerError:         http.StatusInternalServerError,
}

// status returns the HTTP status code of o. Unknown outcomes are server errors.
func (o outcome) status() int {
	if code, ok := statusCodes[o]; ok {
		return code
	}
	return http.StatusInternalServerError
}
