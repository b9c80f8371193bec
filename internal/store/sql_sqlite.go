// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-wallet/internal/config"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/migrations"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const sqliteBusyTimeout = "_pragma=busy_timeout(5000)"

// sqliteDialect stores documents as JSON text handled by the JSON1 functions.
type sqliteDialect struct{}

func (sqliteDialect) fieldExpr(name string) string {
	return "json_extract(doc, '$." + name + "')"
}

func (sqliteDialect) docExpr() string {
	return "json(?)"
}

func (sqliteDialect) patchExpr() string {
	return "json_patch(doc, ?)"
}

func (sqliteDialect) placeholder() sq.PlaceholderFormat {
	return sq.Question
}

func (sqliteDialect) isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// extended codes disabled
		return strings.Contains(sqliteErr.Error(), "UNIQUE")
	}
	return false
}

func (sqliteDialect) migrationDialect() migrations.Dialect {
	return migrations.SQLite
}

// NewConnectSQLite opens the database file named by the DSN, creating it if
// needed. A single connection is used so writers never contend.
func NewConnectSQLite(cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	return newDB(conn, sqliteDialect{}, cfg.ConnectTimeout, log), nil
}

// sqliteDSN strips the sqlite:// scheme and adds a busy timeout.
func sqliteDSN(dsn string) string {
	path := strings.TrimPrefix(dsn, "sqlite://")

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return path + separator + sqliteBusyTimeout
}
