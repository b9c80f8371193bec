// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/utils"
)

const bearerPrefix = "Bearer "

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves it via
// [service.AuthService.Authenticate] and, on success, stores the resolved
// user in the request context under [utils.UserCtxKey] before delegating to
// the next handler.
//
// The middleware answers 401 Unauthorized when the header is absent, when the
// token is empty, or when the token does not lead to a session and its user.
// Storage failures are answered with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteStatus(w, outcomeUnauthorized.status())
			return
		}

		token := getTokenFromAuthHeader(authHeader)
		if token == "" {
			log.Debug().Err(ErrEmptyToken).Send()
			utils.WriteStatus(w, outcomeUnauthorized.status())
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := utils.WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader removes the first "Bearer " from the raw
// "Authorization" header value. A header without the prefix is taken as the
// token itself.
func getTokenFromAuthHeader(authHeader string) string {
	return strings.TrimSpace(strings.Replace(authHeader, bearerPrefix, "", 1))
}
