// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-notes-summarizer/models"
)

// UserRepository persists user accounts (the credential store).
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// Returns ErrEmailAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository persists notes and their processing status.
type NoteRepository interface {
	// CreateNote inserts note and returns it with server-assigned fields.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNoteByID returns the note or ErrNoteNotFound.
	GetNoteByID(ctx context.Context, noteID int64) (models.Note, error)

	// UpdateNote writes status, summary and failure reason of note and
	// refreshes its update timestamp. Returns ErrNoteNotFound if the note
	// is gone.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// ListNoteIDsByStatus returns ids of notes in status, ordered by id.
	ListNoteIDsByStatus(ctx context.Context, status models.NoteStatus) ([]int64, error)
}
