// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/migrations"
)

func Test_newDB_PlaceholderFollowsDialect(t *testing.T) {
	tests := []struct {
		name    string
		dialect migrations.Dialect
		want    string
	}{
		{name: "postgres", dialect: migrations.DialectPostgres, want: "email = $1"},
		{name: "sqlite", dialect: migrations.DialectSQLite, want: "email = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(nil, tt.dialect, logger.Nop())
			assert.Equal(t, tt.dialect, db.Dialect())

			query, _, err := buildFindUserByEmailQuery(db.builder, "a@x.com")
			require.NoError(t, err)
			assert.Contains(t, query, tt.want)
		})
	}
}
