// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/migrations"
)

// sqlDialect captures the differences between the SQL engines that store
// JSON documents in a (seq, id, doc) table.
type sqlDialect interface {
	// fieldExpr returns the SQL expression reading a top-level document field
	// as text. name is already validated.
	fieldExpr(name string) string

	// docExpr wraps the placeholder of a serialized document.
	docExpr() string

	// patchExpr merges the placeholder of a serialized patch into doc.
	patchExpr() string

	placeholder() sq.PlaceholderFormat

	isUniqueViolation(err error) bool

	migrationDialect() migrations.Dialect
}

// DB is a [Database] backed by a database/sql connection pool.
type DB struct {
	*sql.DB
	dialect sqlDialect
	schema  *schemaState
	logger  *logger.Logger
}

func newDB(conn *sql.DB, dialect sqlDialect, connectTimeout time.Duration, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}
	db.schema = newSchemaState(connectTimeout, func(ctx context.Context) error {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return db.Migrate(ctx)
	})

	return db
}

// Migrate creates the collection tables.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect.migrationDialect())
}

// Prepare pings the database and applies the migrations unless that already
// succeeded. Collections retry it on every call until it does.
func (db *DB) Prepare(ctx context.Context) error {
	return db.schema.ensure(ctx)
}

// Ping verifies the connection.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("error connecting database (ping): %w", err)
	}
	return nil
}

// Collection returns the table-backed collection called name.
func (db *DB) Collection(name string) Collection {
	return &sqlCollection{
		db:      db.DB,
		table:   name,
		dialect: db.dialect,
		schema:  db.schema,
		err:     validateCollection(name),
	}
}
