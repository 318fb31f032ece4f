// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/metrics"
	"github.com/MKhiriev/go-notes-summarizer/internal/store"
	"github.com/MKhiriev/go-notes-summarizer/internal/validators"
	"github.com/MKhiriev/go-notes-summarizer/internal/workers"
	"github.com/MKhiriev/go-notes-summarizer/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	queue          workers.Queue
	validator      validators.Validator
	metrics        *metrics.NotesMetrics
	logger         *logger.Logger
}

// NewNoteService returns a NoteService that stores notes in noteRepository and
// hands their ids to queue.
func NewNoteService(
	noteRepository store.NoteRepository,
	queue workers.Queue,
	validator validators.Validator,
	m *metrics.NotesMetrics,
	logger *logger.Logger,
) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		queue:          queue,
		validator:      validator,
		metrics:        m,
		logger:         logger,
	}
}

// CreateNote stores the note as queued and enqueues its id. The returned note
// is the stored row, so it is readable as queued with no summary before the
// worker touches it.
func (s *noteService) CreateNote(ctx context.Context, owner models.User, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note, err := s.noteRepository.CreateNote(ctx, models.Note{
		OwnerID: owner.UserID,
		RawText: *req.RawText,
		Status:  models.NoteStatusQueued,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", owner.UserID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	if err = s.queue.Enqueue(ctx, note.ID); err != nil {
		log.Err(err).Int64("note_id", note.ID).Msg("failed to enqueue note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrEnqueueFailed, err)
	}

	s.metrics.IncNotesSubmitted()
	log.Info().Int64("note_id", note.ID).Int64("owner_id", owner.UserID).Msg("note queued")

	return note, nil
}

// GetNote loads a note and enforces ownership. A missing note is reported
// before ownership, so agents can tell an unknown id from a foreign one.
func (s *noteService) GetNote(ctx context.Context, requester models.User, noteID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNoteByID(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("note search by id failed: %w", err)
	}

	if !requester.IsAdmin() && note.OwnerID != requester.UserID {
		logger.FromContext(ctx).Info().
			Int64("note_id", noteID).
			Int64("requester_id", requester.UserID).
			Msg("note read denied")
		return models.Note{}, ErrForbidden
	}

	return note, nil
}
