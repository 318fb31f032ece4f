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

// noteRepository is the SQL implementation of [NoteRepository] over the
// "notes" table.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.OwnerID,
		&note.RawText,
		&note.Summary,
		&note.Status,
		&note.FailureReason,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	return note, err
}

// noteWriteError maps constraint failures of INSERT/UPDATE statements.
func noteWriteError(err error) error {
	switch {
	case isForeignKeyViolation(err):
		return ErrOwnerNotFound
	case isCheckViolation(err):
		return fmt.Errorf("%w: %w", ErrInvalidNoteState, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// CreateNote inserts note and returns it with its id and timestamps.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(r.db.builder, note, time.Now().UTC())
	if err != nil {
		return models.Note{}, err
	}

	created, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Int64("owner_id", note.OwnerID).Msg("error creating note")
		return models.Note{}, noteWriteError(err)
	}

	return created, nil
}

// GetNoteByID returns the note with the given id or [ErrNoteNotFound].
func (r *noteRepository) GetNoteByID(ctx context.Context, noteID int64) (models.Note, error) {
	query, args, err := buildGetNoteByIDQuery(r.db.builder, noteID)
	if err != nil {
		return models.Note{}, err
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return note, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	default:
		logger.FromContext(ctx).Err(err).Int64("note_id", noteID).Msg("error getting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// UpdateNote persists the mutable fields of note and returns the stored row.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := buildUpdateNoteQuery(r.db.builder, note, time.Now().UTC())
	if err != nil {
		return models.Note{}, err
	}

	updated, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	default:
		logger.FromContext(ctx).Err(err).
			Int64("note_id", note.ID).
			Str("status", note.Status.String()).
			Msg("error updating note")
		return models.Note{}, noteWriteError(err)
	}
}

// ListNoteIDsByStatus returns the ids of all notes in status, oldest first.
func (r *noteRepository) ListNoteIDsByStatus(ctx context.Context, status models.NoteStatus) ([]int64, error) {
	query, args, err := buildListNoteIDsByStatusQuery(r.db.builder, status)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
