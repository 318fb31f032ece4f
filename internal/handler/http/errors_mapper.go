// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-summarizer/internal/app"
	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/service"
	"github.com/MKhiriev/go-notes-summarizer/internal/store"
	"github.com/MKhiriev/go-notes-summarizer/internal/utils"
)

// apiError is the response written for a known error. An empty message means
// the error text itself is reported.
type apiError struct {
	status  int
	message string
}

var errorStatusMap = map[error]apiError{
	service.ErrInvalidDataProvided:     {http.StatusUnprocessableEntity, ""},
	service.ErrInvalidRole:             {http.StatusUnprocessableEntity, app.MsgInvalidRole},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrUnauthorized:            {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrForbidden:               {http.StatusForbidden, app.MsgForbidden},
	service.ErrTokenCreationFailed:     {http.StatusInternalServerError, app.MsgInternalServerError},
	service.ErrEnqueueFailed:           {http.StatusInternalServerError, app.MsgInternalServerError},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, app.MsgUnauthorized},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgInvalidToken},
	ErrUserMissingFromContext:     {http.StatusUnauthorized, app.MsgUnauthorized},
	ErrInvalidJSON:                {http.StatusUnprocessableEntity, app.MsgInvalidDataProvided},
	ErrInvalidNoteID:              {http.StatusUnprocessableEntity, app.MsgInvalidNoteID},

	store.ErrEmailAlreadyExists: {http.StatusBadRequest, app.MsgEmailExists},
	store.ErrNoteNotFound:       {http.StatusNotFound, app.MsgNotFound},
	store.ErrOwnerNotFound:      {http.StatusUnauthorized, app.MsgUnauthorized},
	store.ErrInvalidNoteState:   {http.StatusInternalServerError, app.MsgInternalServerError},

	store.ErrBuildingSQLQuery:   {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrExecutingQuery:     {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrExecutingStatement: {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrScanningRows:       {http.StatusInternalServerError, app.MsgInternalServerError},
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

func responseFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			if resp.message == "" {
				return resp.status, err.Error()
			}
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request-scoped logger and writes the mapped
// {"detail": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
