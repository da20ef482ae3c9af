// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

/*
Package supervisor provides process supervision for Moodwave using suture v4.

# Overview

Long-running services are grouped into two layers:

	RootSupervisor ("moodwave")
	├── DataSupervisor ("data-layer")
	│   ├── FeedbackRouterService (if FEEDBACK_ENABLED)
	│   └── SessionSweeperService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures independently, so a failing feedback store does
not stop the HTTP server.

Supervisor events (service start, panic, backoff, restart) are logged via
sutureslog through the zerolog-backed slog handler from internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    FailureThreshold: cfg.Supervisor.FailureThreshold,
	    ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewFeedbackRouterService(pipeline))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)
	<-errCh

# Configuration

TreeConfig zero values take suture's defaults: FailureThreshold 5,
FailureDecay 30s, FailureBackoff 15s, ShutdownTimeout 10s.
*/
package supervisor
