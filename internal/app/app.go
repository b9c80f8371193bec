// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the wallet server from its configuration: document
// store, repositories, services, HTTP handler and server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-wallet/internal/config"
	handlerhttp "github.com/MKhiriev/go-wallet/internal/handler/http"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/server"
	"github.com/MKhiriev/go-wallet/internal/service"
	"github.com/MKhiriev/go-wallet/internal/store"
)

type App struct {
	db      store.Database
	handler http.Handler
	server  server.Server

	logger *logger.Logger
}

// New opens the database named by cfg.Storage.DB and wires every layer on
// top of it. The database is closed again if wiring fails.
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewDatabase(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating database: %w", err)
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg.App, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("error creating services: %w", err), db.Close())
	}

	handler := handlerhttp.NewHandler(services, cfg.Server, log).Init()

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("error creating server: %w", err), db.Close())
	}

	return &App{
		db:      db,
		handler: handler,
		server:  srv,
		logger:  log,
	}, nil
}

// Handler returns the fully wired HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run serves until SIGTERM, SIGINT or SIGQUIT and then closes the database.
func (a *App) Run() {
	a.server.RunServer()

	if err := a.db.Close(); err != nil {
		a.logger.Err(err).Msg("error closing database")
	}
}

// Shutdown stops the server and closes the database.
func (a *App) Shutdown(ctx context.Context) error {
	return errors.Join(a.server.Shutdown(ctx), a.db.Close())
}
