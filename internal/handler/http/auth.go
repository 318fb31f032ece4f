// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-notes-summarizer/internal/app"
	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/service"
	"github.com/MKhiriev/go-notes-summarizer/internal/utils"
	"github.com/MKhiriev/go-notes-summarizer/models"
)

// signupBody tells an omitted role apart from an empty one.
type signupBody struct {
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     *models.Role `json:"role"`
}

func (b signupBody) request() models.SignupRequest {
	req := models.SignupRequest{Email: b.Email, Password: b.Password}
	if b.Role != nil {
		req.Role = *b.Role
	}
	return req
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body signupBody
	if err := bindCredentials(r, &body, func(q url.Values) {
		body.Email = q.Get("email")
		body.Password = q.Get("password")
		if q.Has("role") {
			role := models.Role(q.Get("role"))
			body.Role = &role
		}
	}); err != nil {
		writeError(w, r, err)
		return
	}

	// a role that is present must name one; only an absent role defaults
	if body.Role != nil && *body.Role == "" {
		writeError(w, r, service.ErrInvalidRole)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, body.request())
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := bindCredentials(r, &req, func(q url.Values) {
		req.Email = q.Get("email")
		req.Password = q.Get("password")
	}); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeToken(w, r, foundUser)
}

// writeToken issues a token for user and writes it both as the response body
// and as the Authorization header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   app.TokenTypeBearer,
	}, http.StatusOK)
}

// bindCredentials fills dst from the query string when it carries an email
// or password, and from a JSON body otherwise.
func bindCredentials(r *http.Request, dst any, fromQuery func(url.Values)) error {
	q := r.URL.Query()
	if q.Has("email") || q.Has("password") {
		fromQuery(q)
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			// no body and no query: let validation report the missing fields
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
