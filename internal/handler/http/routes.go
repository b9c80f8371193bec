// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withCORS, withGZip, withBodyLimit)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Post("/auth/sign-up", h.signUp)
		r.Post("/auth/sign-in", h.signIn)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/transactions", h.createTransaction)
		r.Get("/transactions", h.listTransactions)
		r.Put("/transactions", h.updateTransaction)
		r.Delete("/transactions", h.deleteTransaction)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
