// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-summarizer/internal/app"
	"github.com/MKhiriev/go-notes-summarizer/internal/service"
	"github.com/MKhiriev/go-notes-summarizer/internal/store"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"email exists", fmt.Errorf("%w: a@x.io", store.ErrEmailAlreadyExists), http.StatusBadRequest, app.MsgEmailExists},
		{"invalid role", service.ErrInvalidRole, http.StatusUnprocessableEntity, app.MsgInvalidRole},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},
		{"unknown subject", service.ErrUnauthorized, http.StatusUnauthorized, app.MsgUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, app.MsgForbidden},
		{"not found", fmt.Errorf("%w: id 9", store.ErrNoteNotFound), http.StatusNotFound, app.MsgNotFound},
		{"bad note id", ErrInvalidNoteID, http.StatusUnprocessableEntity, app.MsgInvalidNoteID},
		{"enqueue", service.ErrEnqueueFailed, http.StatusInternalServerError, app.MsgInternalServerError},
		{"query", fmt.Errorf("%w: timeout", store.ErrExecutingQuery), http.StatusInternalServerError, app.MsgInternalServerError},
		{"statement", fmt.Errorf("%w: broken pipe", store.ErrExecutingStatement), http.StatusInternalServerError, app.MsgInternalServerError},
		{"scan rows", fmt.Errorf("%w: bad column", store.ErrScanningRows), http.StatusInternalServerError, app.MsgInternalServerError},
		{"unmapped", errors.New("mystery"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestResponseFromError_ValidationReportsCause(t *testing.T) {
	err := fmt.Errorf("%w: email: must be a valid email address", service.ErrInvalidDataProvided)

	status, message := responseFromError(err)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, err.Error(), message)
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notes/1", nil)

	writeError(rr, req, service.ErrForbidden)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"Forbidden!"}`, rr.Body.String())
}
