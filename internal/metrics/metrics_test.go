// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotesMetrics_RegistersOnce(t *testing.T) {
	registry := prometheus.NewRegistry()

	_, err := NewNotesMetrics(registry)
	require.NoError(t, err)

	_, err = NewNotesMetrics(registry)
	assert.Error(t, err, "registering the same collectors twice must fail")
}

func TestNotesMetrics_Record(t *testing.T) {
	m, err := NewNotesMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.IncNotesSubmitted()
	m.IncNotesSubmitted()
	m.RecordNoteProcessed("done")
	m.RecordNoteProcessed("failed")
	m.RecordNoteProcessed("done")
	m.SetQueueDepth(3)
	m.IncWorkerRestarts()
	m.RecordFallback("disabled")
	m.IncSummaryCacheHits()
	m.ObserveSummarize(SourceLocal, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.NotesSubmitted))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.NotesProcessed.WithLabelValues("done")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotesProcessed.WithLabelValues("failed")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.QueueDepth))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.WorkerRestarts))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SummaryFallbacks.WithLabelValues("disabled")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SummaryCacheHits))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SummarizeDuration))
}

func TestNotesMetrics_NilIsNoop(t *testing.T) {
	var m *NotesMetrics

	assert.NotPanics(t, func() {
		m.IncNotesSubmitted()
		m.RecordNoteProcessed("done")
		m.SetQueueDepth(1)
		m.IncWorkerRestarts()
		m.ObserveSummarize(SourceModel, time.Second)
		m.RecordFallback("error")
		m.IncSummaryCacheHits()
	})
}

func TestHandler_ServesRegisteredMetrics(t *testing.T) {
	registry := NewRegistry()
	m, err := NewNotesMetrics(registry)
	require.NoError(t, err)
	m.IncNotesSubmitted()

	srv := httptest.NewServer(Handler(registry))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "notes_submitted_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
