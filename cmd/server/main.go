// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/moodwave/internal/api"
	"github.com/tomtom215/moodwave/internal/catalog"
	"github.com/tomtom215/moodwave/internal/config"
	"github.com/tomtom215/moodwave/internal/logging"
	"github.com/tomtom215/moodwave/internal/metrics"
	"github.com/tomtom215/moodwave/internal/recommend"
	"github.com/tomtom215/moodwave/internal/session"
	"github.com/tomtom215/moodwave/internal/supervisor"
	"github.com/tomtom215/moodwave/internal/supervisor/services"
)

func main() {
	if err := run(context.Background()); err != nil {
		logging.Fatal().Err(err).Msg("Moodwave failed to start")
	}
}

// run wires the application and serves until ctx is canceled or a shutdown
// signal arrives. Deferred cleanup runs on every return path.
//
//nolint:gocyclo // Initialization function with sequential setup steps
func run(parent context.Context) error {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("catalog", cfg.Catalog.Path).
		Str("measure", cfg.Recommend.Measure).
		Bool("feedback_enabled", cfg.Feedback.Enabled).
		Msg("Starting Moodwave")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS for production")
	}

	// Catalog and engine are immutable after this point.
	songs, err := catalog.NewLoader(cfg.Catalog.Path).Store()
	if err != nil {
		return fmt.Errorf("load song catalog %s: %w", cfg.Catalog.Path, err)
	}
	untiered := publishCatalogMetrics(songs)
	logging.Info().
		Int("songs", songs.Len()).
		Int("untiered", untiered).
		Msg("Song catalog loaded")

	engine, err := recommend.NewEngine(songs, cfg.RecommendEngineConfig())
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	sessions := session.NewStore(session.Config{
		Capacity: cfg.Session.Capacity,
		TTL:      cfg.Session.TTL,
	})

	fb, err := initFeedback(&cfg.Feedback)
	if err != nil {
		return fmt.Errorf("initialize feedback log: %w", err)
	}
	defer func() {
		if err := fb.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing feedback store")
		}
	}()

	handler := api.NewHandler(api.Dependencies{
		Catalog:        songs,
		Engine:         engine,
		Sessions:       sessions,
		Recorder:       fb.recorder,
		FeedbackReader: fb.reader,
		FeedbackHealth: fb.health,
	})

	chiCfg := api.DefaultChiMiddlewareConfig()
	chiCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	chiCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	chiCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	chiCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled
	chiCfg.MaxBodyBytes = cfg.Security.MaxBodyBytes
	router := api.NewRouter(handler, api.NewChiMiddleware(chiCfg))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureDecay:     cfg.Supervisor.FailureDecay,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	// === DATA LAYER ===
	httpService := services.NewHTTPServerService(server, cfg.Supervisor.ShutdownTimeout)
	if fb.pipeline != nil {
		fbService := services.NewFeedbackRouterService(fb.pipeline)
		tree.AddDataService(fbService)
		// gochannel drops messages published before the router subscribes.
		httpService.WaitFor(fbService.Ready())
	}
	tree.AddDataService(services.NewSessionSweeperService(sessions, cfg.Session.SweepInterval))

	// === API LAYER ===
	tree.AddAPIService(httpService)
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	watchLogLevel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}

// publishCatalogMetrics sets the catalog gauges and returns the number of
// songs outside every tier.
func publishCatalogMetrics(songs *catalog.Store) int {
	perTier := make(map[int]int, catalog.NumTiers)
	tiered := 0
	for tier, n := range songs.TierCounts() {
		perTier[int(tier)] = n
		tiered += n
	}
	untiered := songs.Len() - tiered
	metrics.SetCatalogSongs(perTier, untiered)
	return untiered
}

// watchLogLevel reloads the log level when the config file changes. Other
// settings need a restart.
func watchLogLevel() {
	path := config.FindConfigFile()
	if path == "" {
		return
	}
	err := config.WatchConfigFile(path, func() {
		next, err := config.LoadWithKoanf()
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Config reload failed, keeping current log level")
			return
		}
		logging.SetLevelString(next.Logging.Level)
		logging.Info().Str("level", next.Logging.Level).Msg("Log level reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
	}
}
