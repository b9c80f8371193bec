// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/service"
	"github.com/MKhiriev/go-wallet/internal/store"
	"github.com/MKhiriev/go-wallet/internal/utils"
	"github.com/MKhiriev/go-wallet/internal/validators"
)

// errorOutcomes maps sentinel errors onto request outcomes. Anything not
// listed here is a server error answered with the raw error text.
var errorOutcomes = []struct {
	target  error
	outcome outcome
}{
	{errInvalidJSON, outcomeBadRequest},
	{errBodyTooLarge, outcomePayloadTooLarge},
	{service.ErrUnauthorized, outcomeUnauthorized},
	{service.ErrInvalidCredentials, outcomeNotFound},
	{store.ErrEmailAlreadyExists, outcomeConflict},
	{store.ErrTransactionNotFound, outcomeNotFound},
}

func outcomeFromError(err error) outcome {
	for _, eo := range errorOutcomes {
		if errors.Is(err, eo.target) {
			return eo.outcome
		}
	}
	return outcomeServerError
}

// writeError answers the request according to err: validation failures as a
// JSON list with 422, known sentinels with their status text, the rest with
// 500 and the error message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verr validators.ValidationErrors
	if errors.As(err, &verr) {
		log.Debug().Strs("errors", verr).Msg("request rejected by validation")
		utils.WriteJSON(w, []string(verr), outcomeUnprocessableEntity.status())
		return
	}

	result := outcomeFromError(err)
	if result == outcomeServerError {
		log.Err(err).Msg("request failed")
		utils.WriteText(w, err.Error(), result.status())
		return
	}

	log.Debug().Err(err).Int("status", result.status()).Msg("request refused")
	utils.WriteStatus(w, result.status())
}
