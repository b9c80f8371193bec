// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-wallet/internal/config"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// postgresDialect stores documents in JSONB columns.
type postgresDialect struct{}

func (postgresDialect) fieldExpr(name string) string {
	return "doc->>'" + name + "'"
}

func (postgresDialect) docExpr() string {
	return "?::jsonb"
}

func (postgresDialect) patchExpr() string {
	return "doc || ?::jsonb"
}

func (postgresDialect) placeholder() sq.PlaceholderFormat {
	return sq.Dollar
}

func (postgresDialect) isUniqueViolation(err error) bool {
	return isPostgresUniqueViolation(err)
}

func (postgresDialect) migrationDialect() migrations.Dialect {
	return migrations.Postgres
}

// NewConnectPostgres opens a pgx-backed pool. The connection itself is
// verified later by Ping.
func NewConnectPostgres(cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	return newDB(conn, postgresDialect{}, cfg.ConnectTimeout, log), nil
}
