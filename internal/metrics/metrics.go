// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics provides the Prometheus collectors of the notes service:
// queue, worker and summarizer counters exposed on GET /metrics.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Summary sources reported by [NotesMetrics.ObserveSummarize].
const (
	SourceModel = "model"
	SourceLocal = "local"
)

// NotesMetrics contains all Prometheus metrics related to note processing.
//
// Every method is safe to call on a nil *NotesMetrics, which records nothing.
type NotesMetrics struct {
	NotesSubmitted    prometheus.Counter
	NotesProcessed    *prometheus.CounterVec
	QueueDepth        prometheus.Gauge
	WorkerRestarts    prometheus.Counter
	SummarizeDuration *prometheus.HistogramVec
	SummaryFallbacks  *prometheus.CounterVec
	SummaryCacheHits  prometheus.Counter
	registry          *prometheus.Registry
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// Handler serves the metrics of registry in the Prometheus text format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// NewNotesMetrics creates the note processing metrics and registers them on
// registry.
func NewNotesMetrics(registry *prometheus.Registry) (*NotesMetrics, error) {
	m := &NotesMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register notes metrics: %w", err)
	}
	return m, nil
}

func (m *NotesMetrics) initMetrics() {
	m.NotesSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notes_submitted_total",
		Help: "Total number of notes accepted and enqueued for processing",
	})

	m.NotesProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_processed_total",
		Help: "Total number of notes that reached a terminal status",
	}, []string{"status"})

	m.QueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "notes_queue_depth",
		Help: "Number of note identifiers waiting in the queue",
	})

	m.WorkerRestarts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notes_worker_restarts_total",
		Help: "Total number of times the note processor was restarted by its supervisor",
	})

	m.SummarizeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "notes_summarize_duration_seconds",
		Help:    "Time spent producing a summary, by source",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"source"})

	m.SummaryFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_summary_fallbacks_total",
		Help: "Total number of summaries produced by the local rule instead of the model, by reason",
	}, []string{"reason"})

	m.SummaryCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notes_summary_cache_hits_total",
		Help: "Total number of model summaries served from the cache",
	})
}

// IncNotesSubmitted counts an enqueued note.
func (m *NotesMetrics) IncNotesSubmitted() {
	if m == nil {
		return
	}
	m.NotesSubmitted.Inc()
}

// RecordNoteProcessed counts a note that reached the terminal status.
func (m *NotesMetrics) RecordNoteProcessed(status string) {
	if m == nil {
		return
	}
	m.NotesProcessed.WithLabelValues(status).Inc()
}

// SetQueueDepth records the current queue length.
func (m *NotesMetrics) SetQueueDepth(depth int64) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(depth))
}

// IncWorkerRestarts counts a supervisor restart.
func (m *NotesMetrics) IncWorkerRestarts() {
	if m == nil {
		return
	}
	m.WorkerRestarts.Inc()
}

// ObserveSummarize records how long producing a summary from source took.
func (m *NotesMetrics) ObserveSummarize(source string, d time.Duration) {
	if m == nil {
		return
	}
	m.SummarizeDuration.WithLabelValues(source).Observe(d.Seconds())
}

// RecordFallback counts a local-rule fallback.
func (m *NotesMetrics) RecordFallback(reason string) {
	if m == nil {
		return
	}
	m.SummaryFallbacks.WithLabelValues(reason).Inc()
}

// IncSummaryCacheHits counts a cached model summary.
func (m *NotesMetrics) IncSummaryCacheHits() {
	if m == nil {
		return
	}
	m.SummaryCacheHits.Inc()
}

// Describe implements the prometheus.Collector interface.
func (m *NotesMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.NotesSubmitted.Describe(ch)
	m.NotesProcessed.Describe(ch)
	m.QueueDepth.Describe(ch)
	m.WorkerRestarts.Describe(ch)
	m.SummarizeDuration.Describe(ch)
	m.SummaryFallbacks.Describe(ch)
	m.SummaryCacheHits.Describe(ch)
}

// Collect implements the prometheus.Collector interface.
func (m *NotesMetrics) Collect(ch chan<- prometheus.Metric) {
	m.NotesSubmitted.Collect(ch)
	m.NotesProcessed.Collect(ch)
	m.QueueDepth.Collect(ch)
	m.WorkerRestarts.Collect(ch)
	m.SummarizeDuration.Collect(ch)
	m.SummaryFallbacks.Collect(ch)
	m.SummaryCacheHits.Collect(ch)
}
