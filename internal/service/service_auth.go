// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-summarizer/internal/config"
	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/store"
	"github.com/MKhiriev/go-notes-summarizer/internal/utils"
	"github.com/MKhiriev/go-notes-summarizer/internal/validators"
	"github.com/MKhiriev/go-notes-summarizer/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenAlgorithm is the HMAC variant (HS256, HS384 or HS512).
	tokenAlgorithm string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenAlgorithm: cfg.TokenAlgorithm,
		tokenDuration:  cfg.TokenDuration(),
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The checks run in a fixed order: email and password are validated, then the
// email is checked for uniqueness, then the role. An empty role defaults to
// AGENT.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if email or password is malformed.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - ErrInvalidRole if the role is neither ADMIN nor AGENT.
func (a *authService) RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req, validators.FieldEmail, validators.FieldPassword); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Info().Str("email", req.Email).Msg("email already registered")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists)
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.validator.Validate(ctx, req, validators.FieldRole); err != nil {
		log.Info().Err(err).Str("role", req.Role.String()).Msg("invalid role provided")
		return models.User{}, ErrInvalidRole
	}

	role := req.Role
	if role == "" {
		role = models.RoleAgent
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the email is unknown or the password is wrong.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", req.Email).Msg("login with unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user. The subject is the
// user's email and the role travels as a private claim.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.Email, user.Role, a.tokenDuration, a.tokenSignKey, a.tokenAlgorithm)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, bad signature, wrong algorithm,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenAlgorithm)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate parses tokenString and loads the user named by its subject.
// A valid token for a user that no longer exists yields ErrUnauthorized.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Email())
	if errors.Is(err, store.ErrNoUserWasFound) {
		logger.FromContext(ctx).Info().Str("email", token.Email()).Msg("token subject no longer exists")
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}
