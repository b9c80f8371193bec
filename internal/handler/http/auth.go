// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/utils"
	"github.com/MKhiriev/go-wallet/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.SignUp(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("email", req.Email).Msg("user signed up")
	utils.WriteStatus(w, outcomeCreated.status())
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.SignIn(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("email", req.Email).Msg("user signed in")
	utils.WriteJSON(w, resp, outcomeOK.status())
}
