// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wallet/internal/config"
	"github.com/MKhiriev/go-wallet/internal/logger"
)

// NewDatabase selects the backend by the DSN scheme:
//
//	postgres://, postgresql://        PostgreSQL (JSONB tables)
//	sqlite://path, file:path, *.db    SQLite (JSON text tables)
//	mongodb://, mongodb+srv://        MongoDB
//
// Only an unusable DSN is an error. A database that cannot be reached or
// migrated is logged and returned anyway, so the server starts and answers
// storage-backed requests with 500 until the database comes back. The schema
// is then prepared by the first request that reaches it.
func NewDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (Database, error) {
	dsn := strings.ToLower(cfg.DSN)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(cfg, log)
		if err != nil {
			return nil, err
		}
		prepare(ctx, db, log)
		return db, nil

	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"):
		db, err := NewConnectSQLite(cfg, log)
		if err != nil {
			return nil, err
		}
		prepare(ctx, db, log)
		return db, nil

	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		db, err := NewConnectMongo(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		prepare(ctx, db, log)
		return db, nil

	default:
		return nil, fmt.Errorf("%w: unknown scheme", ErrUnsupportedDSN)
	}
}

// preparer is a backend whose schema can be set up ahead of the first
// request.
type preparer interface {
	Prepare(ctx context.Context) error
}

func prepare(ctx context.Context, db preparer, log *logger.Logger) {
	if err := db.Prepare(ctx); err != nil {
		log.Err(err).Str("func", "prepare").Msg("database is not ready, retrying on the next request")
		return
	}
	log.Info().Str("func", "prepare").Msg("connected to database successfully")
}
