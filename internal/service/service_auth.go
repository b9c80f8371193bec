// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet/internal/config"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/internal/store"
	"github.com/MKhiriev/go-wallet/internal/utils"
	"github.com/MKhiriev/go-wallet/internal/validators"
	"github.com/MKhiriev/go-wallet/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgEmptyName       = `"name" is not allowed to be empty`
	msgPasswordTooLong = `"password" length must be less than or equal to 72 bytes long`
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; sessions carry opaque random
// tokens that never expire.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	validator         validators.Validator

	// passwordHashCost is the bcrypt cost used for new hashes.
	passwordHashCost int

	// newToken produces session tokens.
	newToken func() string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with the password policy from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionRepository store.SessionRepository,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		validator:         validator,
		passwordHashCost:  cfg.PasswordHashCost,
		newToken:          utils.NewSessionToken,
		logger:            logger,
	}
}

// SignUp registers a new user.
//
// Returns:
//   - validators.ValidationErrors if the request breaks the schema or the
//     name is empty once markup is removed.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - a wrapped storage or hashing error otherwise.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("sign-up request is invalid: %w", err)
	}

	name := utils.StripHTML(req.Name)
	if name == "" {
		return validators.NewValidationErrors(msgEmptyName)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Debug().Str("email", req.Email).Msg("email is already registered")
		return store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.passwordHashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return validators.NewValidationErrors(msgPasswordTooLong)
		}
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    req.Email,
		Password: string(hash),
	}
	if _, err := a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	return nil
}

// SignIn verifies the credentials and opens a new session.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.SignInResponse{}, fmt.Errorf("sign-in request is invalid: %w", err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.SignInResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.SignInResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.SignInResponse{}, ErrInvalidCredentials
	}

	session, err := a.sessionRepository.CreateSession(ctx, models.Session{
		UserID: user.ID,
		Token:  a.newToken(),
	})
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("session creation failed")
		return models.SignInResponse{}, fmt.Errorf("session creation failed: %w", err)
	}

	return models.SignInResponse{Token: session.Token, Name: user.Name}, nil
}

// Authenticate resolves token to its session and then to the owning user.
// A token without a session, or a session without a user, yields
// ErrUnauthorized. Storage failures are returned wrapped.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	session, err := a.sessionRepository.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, fmt.Errorf("%w: unknown token", ErrUnauthorized)
		}
		log.Err(err).Msg("session search failed")
		return models.User{}, fmt.Errorf("session search failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%w: session user is gone", ErrUnauthorized)
		}
		log.Err(err).Str("user_id", session.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
