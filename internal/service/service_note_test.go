// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/metrics"
	"github.com/MKhiriev/go-notes-summarizer/internal/mock"
	"github.com/MKhiriev/go-notes-summarizer/internal/store"
	"github.com/MKhiriev/go-notes-summarizer/internal/validators"
	"github.com/MKhiriev/go-notes-summarizer/models"
)

var (
	agentA = models.User{UserID: 1, Email: "a@x.com", Role: models.RoleAgent}
	agentB = models.User{UserID: 2, Email: "b@x.com", Role: models.RoleAgent}
	admin  = models.User{UserID: 3, Email: "root@x.com", Role: models.RoleAdmin}
)

func strPtr(s string) *string { return &s }

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller, m *metrics.NotesMetrics) (NoteService, *mock.MockNoteRepository, *mock.MockQueue) {
	t.Helper()
	repo := mock.NewMockNoteRepository(ctrl)
	queue := mock.NewMockQueue(ctrl)
	return NewNoteService(repo, queue, validators.NewRequestValidator(), m, logger.Nop()), repo, queue
}

// ── CreateNote ───────────────────────────────────────────────────────────────

func TestNoteService_CreateNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, err := metrics.NewNotesMetrics(metrics.NewRegistry())
	require.NoError(t, err)
	svc, repo, queue := newTestNoteSvc(t, ctrl, m)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().CreateNote(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n models.Note) (models.Note, error) {
				assert.Equal(t, agentA.UserID, n.OwnerID)
				assert.Equal(t, "One. Two. Three.", n.RawText)
				assert.Equal(t, models.NoteStatusQueued, n.Status)
				assert.Nil(t, n.Summary)
				n.ID = 10
				return n, nil
			}),
		queue.EXPECT().Enqueue(ctx, int64(10)).Return(nil),
	)

	note, err := svc.CreateNote(ctx, agentA, models.CreateNoteRequest{RawText: strPtr("One. Two. Three.")})
	require.NoError(t, err)
	assert.Equal(t, int64(10), note.ID)
	assert.Equal(t, models.NoteStatusQueued, note.Status)
	assert.Nil(t, note.Summary)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotesSubmitted))
}

func TestNoteService_CreateNote_MissingText(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestNoteSvc(t, ctrl, nil)

	_, err := svc.CreateNote(context.Background(), agentA, models.CreateNoteRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteService_CreateNote_StoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestNoteSvc(t, ctrl, nil)
	ctx := context.Background()

	repo.EXPECT().CreateNote(ctx, gomock.Any()).Return(models.Note{}, store.ErrOwnerNotFound)
	// nothing is enqueued

	_, err := svc.CreateNote(ctx, agentA, models.CreateNoteRequest{RawText: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrOwnerNotFound)
}

func TestNoteService_CreateNote_EnqueueFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, err := metrics.NewNotesMetrics(metrics.NewRegistry())
	require.NoError(t, err)
	svc, repo, queue := newTestNoteSvc(t, ctrl, m)
	ctx := context.Background()

	repo.EXPECT().CreateNote(ctx, gomock.Any()).Return(models.Note{ID: 5, Status: models.NoteStatusQueued}, nil)
	queue.EXPECT().Enqueue(ctx, int64(5)).Return(errors.New("redis down"))

	_, err = svc.CreateNote(ctx, agentA, models.CreateNoteRequest{RawText: strPtr("x")})
	assert.ErrorIs(t, err, ErrEnqueueFailed)
	assert.Zero(t, testutil.ToFloat64(m.NotesSubmitted))
}

// ── GetNote ──────────────────────────────────────────────────────────────────

func TestNoteService_GetNote(t *testing.T) {
	owned := models.Note{ID: 7, OwnerID: agentA.UserID, RawText: "x", Status: models.NoteStatusQueued}

	tests := []struct {
		name      string
		requester models.User
		wantErr   error
	}{
		{name: "owner", requester: agentA},
		{name: "admin reads any note", requester: admin},
		{name: "other agent is forbidden", requester: agentB, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, _ := newTestNoteSvc(t, ctrl, nil)
			repo.EXPECT().GetNoteByID(gomock.Any(), int64(7)).Return(owned, nil)

			got, err := svc.GetNote(context.Background(), tt.requester, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, owned, got)
		})
	}
}

func TestNoteService_GetNote_NotFoundBeforeOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestNoteSvc(t, ctrl, nil)

	repo.EXPECT().GetNoteByID(gomock.Any(), int64(404)).Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.GetNote(context.Background(), agentB, 404)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
}
