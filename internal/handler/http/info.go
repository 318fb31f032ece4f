// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-summarizer/internal/app"
	"github.com/MKhiriev/go-notes-summarizer/internal/utils"
	"github.com/MKhiriev/go-notes-summarizer/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RootResponse{
		OK:      true,
		Message: app.MsgServiceUp,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusOK}, http.StatusOK)
}

func (h *Handler) adminPing(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrUserMissingFromContext)
		return
	}

	if !user.IsAdmin() {
		utils.WriteError(w, app.MsgAdminsOnly, http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, models.AdminPingResponse{
		OK:   true,
		Who:  user.Email,
		Role: user.Role,
	}, http.StatusOK)
}
