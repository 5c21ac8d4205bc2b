// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api serves the CineMatch JSON API over a Chi router.

Routes:

	GET  /api/v1/health                          overall health
	GET  /api/v1/health/live                     liveness
	GET  /api/v1/health/ready                    readiness (engine loaded)
	GET  /api/v1/genres                          distinct genre tags
	GET  /api/v1/movies/sample                   movies offered for rating
	GET  /api/v1/recommendations/genre/{genre}   popularity ranking
	GET  /api/v1/recommendations/genre?genre=    same, genre as a query value
	POST /api/v1/recommendations/predict         IBCF top-N
	POST /api/v1/recommendations/explain/{id}    neighbour contributions
	GET  /api/v1/recommendations/status          engine statistics
	GET  /metrics                                Prometheus

Predict and explain accept either JSON ({"ratings": {"260": 5}}) or a form
post whose fields are named rating_m<id> or rating_<id>. Blank form fields
are unrated.

Every response uses the models.APIResponse envelope. Engine errors map to
status codes in respondEngineError.
*/
package api
