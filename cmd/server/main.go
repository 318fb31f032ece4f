// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-summarizer/internal/config"
	"github.com/MKhiriev/go-notes-summarizer/internal/handler"
	"github.com/MKhiriev/go-notes-summarizer/internal/handler/http"
	"github.com/MKhiriev/go-notes-summarizer/internal/logger"
	"github.com/MKhiriev/go-notes-summarizer/internal/metrics"
	"github.com/MKhiriev/go-notes-summarizer/internal/server"
	"github.com/MKhiriev/go-notes-summarizer/internal/service"
	"github.com/MKhiriev/go-notes-summarizer/internal/store"
	"github.com/MKhiriev/go-notes-summarizer/internal/summarizer"
	"github.com/MKhiriev/go-notes-summarizer/internal/workers"
	"github.com/MKhiriev/go-notes-summarizer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := printBuildInfo()

	log := logger.NewLogger("notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if info.BuildVersion() != "N/A" && cfg.App.Version == config.DefaultAppVersion {
		cfg.App.Version = info.BuildVersion()
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("bye")
}

// run wires every component and blocks until ctx is cancelled. The HTTP
// server drains first, then the worker finishes its in-flight note.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	if err := storages.Ping(ctx); err != nil {
		return fmt.Errorf("error reaching database: %w", err)
	}

	registry := metrics.NewRegistry()
	notesMetrics, err := metrics.NewNotesMetrics(registry)
	if err != nil {
		return fmt.Errorf("error registering metrics: %w", err)
	}

	rawQueue, closeQueue, err := workers.NewQueue(ctx, cfg.Workers, log)
	if err != nil {
		return fmt.Errorf("error creating note queue: %w", err)
	}
	defer closeQueue()
	queue := workers.NewInstrumentedQueue(rawQueue, notesMetrics)

	if cfg.Workers.RequeueOnStart {
		if _, err := workers.RequeueQueued(ctx, storages.NoteRepository, queue, log); err != nil {
			return err
		}
	}

	engine := summarizer.NewEngineFromConfig(cfg.Summarizer, notesMetrics, log)
	processor := workers.NewNoteProcessor(queue, storages.NoteRepository, engine, notesMetrics, log)
	supervisor := workers.NewSupervisor("note-worker", processor, cfg.Workers.RestartDelay, notesMetrics, log)

	services, err := service.NewServices(storages, queue, *cfg, notesMetrics, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, supervisor, cfg.Server, log,
		http.WithMetricsHandler(metrics.Handler(registry)),
	)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	background := []workers.Worker{supervisor}
	if handlers.GRPC != nil {
		background = append(background, handlers.GRPC)
	}

	workersCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	workersDone := make(chan error, 1)
	go func() {
		workersDone <- workers.NewWorkers(background...).Run(workersCtx)
	}()

	serverErr := srv.RunServer(ctx)

	stopWorkers()
	return errors.Join(serverErr, <-workersDone)
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())

	return info
}
