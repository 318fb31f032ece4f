// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		logger.FromRequest(r).Info().Msg("inside handler")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr, captured := executeWithTraceID(h, "my-custom-trace-id")

	require.NotNil(t, captured)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr, _ := executeWithTraceID(h, "")

	traceID := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	parsed, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	executeWithTraceID(h, "abc-123")

	assert.Contains(t, buf.String(), `"trace_id":"abc-123"`)
	assert.Contains(t, buf.String(), "inside handler")
}

func TestWithTraceID_DoesNotLeakIntoParentLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	executeWithTraceID(h, "first")
	buf.Reset()
	h.logger.Info().Msg("parent")

	assert.NotContains(t, buf.String(), "trace_id")
}

func TestWithTraceID_UniqueAcrossConcurrentRequests(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	const n = 50
	var (
		mu  sync.Mutex
		ids = make(map[string]struct{}, n)
		wg  sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr, _ := executeWithTraceID(h, "")
			mu.Lock()
			ids[rr.Header().Get(traceIDHeader)] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, n)
}
