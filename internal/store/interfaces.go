// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-wallet/models"
)

// Collection names of the wallet schema.
const (
	UsersCollection        = "users"
	SessionsCollection     = "sessions"
	TransactionsCollection = "transactions"
)

// IDField is the document field holding the document identifier.
const IDField = "_id"

// Filter selects documents by field equality. An empty filter matches every
// document of the collection.
type Filter map[string]any

// Fields is a shallow set of fields written by UpdateOne.
type Fields map[string]any

// Document is anything that can be inserted into a Collection.
type Document interface {
	DocumentID() string
}

// Database is a document store holding named collections.
type Database interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close() error
}

// Collection is the minimal document API used by the repositories.
type Collection interface {
	// FindOne decodes the first matching document into dst.
	// Returns ErrDocumentNotFound when nothing matches.
	FindOne(ctx context.Context, filter Filter, dst any) error

	// Find decodes every matching document, in insertion order, into dst,
	// which must point to a slice.
	Find(ctx context.Context, filter Filter, dst any) error

	// InsertOne stores doc. Returns ErrDuplicateDocument on a unique conflict.
	InsertOne(ctx context.Context, doc Document) error

	// UpdateOne merges fields into the first matching document and reports
	// whether one matched.
	UpdateOne(ctx context.Context, filter Filter, fields Fields) (bool, error)

	// DeleteOne removes the first matching document and reports whether one
	// was removed.
	DeleteOne(ctx context.Context, filter Filter) (bool, error)
}

// IDGenerator produces new document identifiers.
type IDGenerator interface {
	Generate() string
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	FindUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, update models.TransactionUpdate) error
	DeleteTransaction(ctx context.Context, userID, id string) error
}
