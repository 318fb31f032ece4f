// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-summarizer/models"
)

// AuthService registers and authenticates users and issues their tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// NoteService accepts notes for summarization and serves them back to their
// owners.
type NoteService interface {
	// CreateNote stores a queued note owned by owner and hands it to the
	// processing queue.
	CreateNote(ctx context.Context, owner models.User, req models.CreateNoteRequest) (models.Note, error)

	// GetNote returns the note if requester owns it or is an admin.
	GetNote(ctx context.Context, requester models.User, noteID int64) (models.Note, error)
}

// AppInfoService reports static information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
