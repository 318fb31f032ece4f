// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-summarizer/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildCreateUserQuery(t *testing.T) {
	now := time.Now()
	user := models.User{Email: "a@x.com", PasswordHash: "hash", Role: models.RoleAgent}

	query, args, err := buildCreateUserQuery(dollar, user, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into users")
	assert.Contains(t, q, "returning user_id, email, password_hash, role, created_at")
	assert.Contains(t, query, "$4")
	assert.Equal(t, []any{"a@x.com", "hash", models.RoleAgent, now}, args)
}

func Test_buildFindUserByEmailQuery(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "postgres", builder: dollar, placeholder: "$1"},
		{name: "sqlite", builder: question, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindUserByEmailQuery(tt.builder, "a@x.com")
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Contains(t, q, "select user_id, email, password_hash, role, created_at")
			assert.Contains(t, q, "from users")
			assert.Contains(t, query, "email = "+tt.placeholder)
			assert.Equal(t, []any{"a@x.com"}, args)
		})
	}
}

func Test_buildCreateNoteQuery(t *testing.T) {
	now := time.Now()
	note := models.Note{OwnerID: 7, RawText: "One. Two.", Status: models.NoteStatusQueued}

	query, args, err := buildCreateNoteQuery(question, note, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into notes")
	assert.Contains(t, q, "returning note_id")
	assert.NotContains(t, query, "$")
	require.Len(t, args, 7)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "One. Two.", args[1])
	assert.Equal(t, models.NoteStatusQueued, args[3])
	assert.Equal(t, now, args[5])
	assert.Equal(t, now, args[6])
}

func Test_buildGetNoteByIDQuery(t *testing.T) {
	query, args, err := buildGetNoteByIDQuery(dollar, 42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range noteColumns {
		assert.Contains(t, q, col)
	}
	assert.Contains(t, q, "from notes")
	assert.Contains(t, query, "note_id = $1")
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_buildUpdateNoteQuery(t *testing.T) {
	now := time.Now()
	summary := "One. Two"
	note := models.Note{ID: 3, Status: models.NoteStatusDone, Summary: &summary}

	query, args, err := buildUpdateNoteQuery(dollar, note, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "update notes set status = $1, summary = $2, failure_reason = $3, updated_at = $4")
	assert.Contains(t, q, "where note_id = $5")
	assert.Contains(t, q, "returning")
	require.Len(t, args, 5)
	assert.Equal(t, models.NoteStatusDone, args[0])
	assert.Equal(t, &summary, args[1])
	assert.Equal(t, int64(3), args[4])
}

func Test_buildListNoteIDsByStatusQuery(t *testing.T) {
	query, args, err := buildListNoteIDsByStatusQuery(question, models.NoteStatusQueued)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select note_id from notes where status = ?")
	assert.Contains(t, q, "order by note_id asc")
	assert.Equal(t, []any{models.NoteStatusQueued}, args)
}
