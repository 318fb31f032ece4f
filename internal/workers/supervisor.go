// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/metrics"
)

// Supervisor keeps a [Worker] alive. Whenever the worker returns before
// shutdown, or panics, it is restarted after a fixed delay.
type Supervisor struct {
	worker  Worker
	delay   time.Duration
	metrics *metrics.NotesMetrics
	logger  *logger.Logger

	restarts atomic.Int64
	running  atomic.Bool
}

// NewSupervisor returns a supervisor for worker. name tags its log entries.
func NewSupervisor(name string, worker Worker, delay time.Duration, m *metrics.NotesMetrics, log *logger.Logger) *Supervisor {
	return &Supervisor{
		worker:  worker,
		delay:   delay,
		metrics: m,
		logger:  log.Component(name),
	}
}

// Run implements [Worker]. It returns nil once ctx is cancelled and the
// supervised worker has returned.
func (s *Supervisor) Run(ctx context.Context) error {
	s.running.Store(true)
	defer s.running.Store(false)

	for {
		err := s.runOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			err = ErrWorkerStopped
		}

		n := s.restarts.Add(1)
		s.metrics.IncWorkerRestarts()
		s.logger.Error().
			Err(err).
			Int64("restarts", n).
			Dur("delay", s.delay).
			Msg("worker exited unexpectedly, restarting")

		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// Restarts returns how many times the worker has been restarted.
func (s *Supervisor) Restarts() int64 {
	return s.restarts.Load()
}

// Running reports whether the supervisor loop is active.
func (s *Supervisor) Running() bool {
	return s.running.Load()
}

func (s *Supervisor) runOnce(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanicked, r)
		}
	}()
	return s.worker.Run(ctx)
}
