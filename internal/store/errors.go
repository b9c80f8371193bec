// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrSessionNotFound is returned when no session carries the given token.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrTransactionNotFound is returned when a query, update or delete targets
	// a transaction (identified by id and owner) that does not exist.
	ErrTransactionNotFound = errors.New("transaction was not found")
)

// Gateway errors. Every backend maps its native conditions onto these.
var (
	// ErrDocumentNotFound is returned by FindOne when nothing matches.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDuplicateDocument is returned by InsertOne on a unique-index conflict.
	ErrDuplicateDocument = errors.New("duplicate document")

	// ErrInvalidField is returned when a filter or update names a field that
	// cannot be used in a query.
	ErrInvalidField = errors.New("invalid document field")

	// ErrUnsupportedDSN is returned by NewDatabase for an unknown DSN scheme.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrUnknownCollection is returned for a collection name outside the schema.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrSchemaNotReady is returned while the database cannot be reached or
	// its tables and indexes cannot be created.
	ErrSchemaNotReady = errors.New("database schema is not ready")
)

// Low-level database operation errors. These wrap driver errors when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single document fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when scanning fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan document rows")

	// ErrEncodingDocument is returned when a document or patch cannot be
	// serialized for storage.
	ErrEncodingDocument = errors.New("failed to encode document")

	// ErrDecodingDocument is returned when stored data cannot be decoded into
	// the destination.
	ErrDecodingDocument = errors.New("failed to decode document")
)
