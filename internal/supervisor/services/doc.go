// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

/*
Package services provides suture.Service wrappers for Moodwave components.

Each wrapper translates a component's lifecycle (ListenAndServe, Run/Close,
a ticker loop) into suture's context-aware Serve and names itself through
fmt.Stringer for supervisor logs.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - WaitFor delays listening until dependencies are ready

Feedback Router (FeedbackRouterService):
  - Runs the watermill router of the feedback pipeline
  - Closes the pipeline on shutdown
  - Runs once; an unexpected stop returns suture.ErrDoNotRestart
  - Ready closes when the router is subscribed or the service has stopped

Session Sweeper (SessionSweeperService):
  - Evicts expired sessions on an interval
  - Updates the moodwave_sessions_active gauge

# Usage

	fb := services.NewFeedbackRouterService(pipeline)
	tree.AddDataService(fb)
	tree.AddDataService(services.NewSessionSweeperService(sessions, 5*time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second).
		WaitFor(fb.Ready()))
*/
package services
