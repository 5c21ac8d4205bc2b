// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging wraps zerolog with a process-wide logger for CineMatch.
//
// Init configures the global logger once from main. Packages that need a
// scoped logger derive one with WithComponent and hold it by value:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	engineLog := logging.WithComponent("recommend")
//	engineLog.Info().Int("movies", n).Msg("catalog loaded")
//
// Request-scoped logging goes through Ctx, which attaches the request and
// correlation ids that the HTTP middleware stores on the context:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("predict rejected")
//
// NewSlogLogger bridges to log/slog for suture's event hook.
package logging
