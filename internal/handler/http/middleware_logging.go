// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
)

// maskedQueryParams are replaced before the request URI is logged.
// /auth/signup and /auth/login accept credentials in the query string.
var maskedQueryParams = []string{"password"}

// withLogging writes one access log line per request. Server errors are
// logged at error level and client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		uri := loggedURI(r.URL)

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)
		if lw.status == 0 {
			lw.status = http.StatusOK
		}

		logger.FromRequest(r).WithLevel(accessLogLevel(lw.status)).
			Str("method", r.Method).
			Str("uri", uri).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// loggedURI returns the request path and query with credentials masked.
func loggedURI(u *url.URL) string {
	q := u.Query()
	masked := false
	for _, name := range maskedQueryParams {
		if q.Has(name) {
			q.Set(name, redactedQueryValue)
			masked = true
		}
	}
	if !masked {
		return u.RequestURI()
	}

	out := *u
	out.RawQuery = q.Encode()
	return out.RequestURI()
}

const redactedQueryValue = "xxxxx"
