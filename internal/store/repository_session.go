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

type sessionRepository struct {
	logger     *logger.Logger
	collection Collection
	ids        IDGenerator
}

func NewSessionRepository(collection Collection, ids IDGenerator, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		collection: collection,
		ids:        ids,
		logger:     logger,
	}
}

// CreateSession stores session with a fresh ID.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	session.ID = r.ids.Generate()
	if err := r.collection.InsertOne(ctx, newSessionDocument(session)); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// FindSessionByToken returns the session carrying exactly token.
func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var doc sessionDocument
	if err := r.collection.FindOne(ctx, Filter{fieldToken: token}, &doc); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error finding session")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return doc.model(), nil
}
