// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor runs the long-lived parts of CineMatch under a suture v4
supervisor tree.

	RootSupervisor ("cinematch")
	├── DataSupervisor ("data-layer")
	│   └── GenreWarmupService (if WARMUP_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Data is loaded before the tree starts, so the data layer only holds work
that can run alongside serving. A crash there never takes the API down.

Supervisor events (restarts, backoff, panics) are logged through sutureslog,
bridged to zerolog by logging.NewSlogLogger.

# Shutdown

Canceling the context passed to Serve stops every service. Services that
do not return within TreeConfig.ShutdownTimeout are reported by
UnstoppedServiceReport.
*/
package supervisor
