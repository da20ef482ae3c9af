// Moodwave - Emotion-Based Song Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodwave

/*
Package main is the entry point for the Moodwave server.

Moodwave recommends songs for how a listener feels: one or two emotions and
a popularity tier go in, a ranked list of songs from a CSV catalog comes
out. Listeners can rate what they heard, and both the recommendation and
the rating are appended to a feedback log.

# Application Architecture

	RootSupervisor ("moodwave")
	├── DataSupervisor ("data-layer")
	│   ├── Feedback router (watermill, if FEEDBACK_ENABLED)
	│   └── Session sweeper
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: CSV load; the process exits if the file is unusable
 4. Recommendation engine and session store
 5. Feedback log: BadgerDB behind a circuit breaker, fed by a watermill pipeline
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Priority: Environment variables > Config file > Defaults

	HTTP_PORT=8080
	CATALOG_PATH=data/songs.csv
	RECOMMEND_MEASURE=cosine          # cosine or inverse_distance
	RECOMMEND_DEFAULT_K=5
	FEEDBACK_ENABLED=true
	FEEDBACK_PATH=/data/feedback      # BadgerDB directory
	FEEDBACK_IN_MEMORY=false
	CORS_ORIGINS=https://app.example.com
	LOG_LEVEL=info                    # trace, debug, info, warn, error
	LOG_FORMAT=json                   # json or console

See internal/config for the complete list. When a config file is in use,
edits to logging.level take effect without a restart.

# Signal Handling

On SIGINT or SIGTERM the supervisor tree is canceled: the HTTP server
drains in-flight requests, the feedback router finishes the batch it is
storing, and the feedback store is closed last.

# Usage Examples

Development:

	LOG_FORMAT=console FEEDBACK_IN_MEMORY=true go run ./cmd/server

	curl -s localhost:8080/api/v1/recommendations \
	  -d '{"emotions":["happy","focus"],"pop_level":1}'
*/
package main
