// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/models"
)

// userRepository is the [UserRepository] implementation over the "users"
// collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger     *logger.Logger
	collection Collection
	ids        IDGenerator
}

// NewUserRepository constructs a [UserRepository] over collection. New
// users get their identifier from ids.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(collection Collection, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		collection: collection,
		ids:        ids,
		logger:     logger,
	}
}

// CreateUser persists a new user and returns it with its assigned ID.
//
// Error handling:
//   - unique-index conflict on email → [ErrEmailAlreadyExists].
//   - any other error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.Generate()
	if err := r.collection.InsertOne(ctx, newUserDocument(user)); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if errors.Is(err, ErrDuplicateDocument) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user registered with email.
// Returns [ErrUserNotFound] when there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, Filter{fieldEmail: email})
}

// FindUserByID retrieves the user with identifier id.
// Returns [ErrUserNotFound] when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, Filter{IDField: id})
}

func (r *userRepository) findUser(ctx context.Context, filter Filter) (models.User, error) {
	log := logger.FromContext(ctx)

	var doc userDocument
	if err := r.collection.FindOne(ctx, filter, &doc); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return doc.model(), nil
}
