// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both postgres and sqlite connections.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user, time.Now().UTC())
	if err != nil {
		return models.User{}, err
	}

	var created models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.UserID, &created.Email, &created.PasswordHash, &created.Role, &created.CreatedAt)
	switch {
	case err == nil:
		return created, nil
	case isUniqueViolation(err):
		return models.User{}, ErrEmailAlreadyExists
	default:
		log.Err(err).Str("email", user.Email).Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// FindUserByEmail retrieves the user whose email matches.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.db.builder, email)
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.UserID, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt)
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("email", email).Msg("error finding user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
