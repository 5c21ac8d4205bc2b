// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import (
	"time"
)

// APIResponse is the envelope used by every HTTP endpoint.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"genre": "Comedy", "recommendations": [...]},
//	  "metadata": {
//	    "timestamp": "2026-10-16T12:00:00Z",
//	    "query_time_ms": 3,
//	    "cached": true
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "MISSING_GENRE",
//	    "message": "Please enter a genre"
//	  },
//	  "metadata": {"timestamp": "2026-10-16T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache information for a response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the structured error body.
//
// Codes:
//   - INVALID_INPUT: malformed body or unknown movie
//   - MISSING_GENRE: empty genre on the popularity endpoint
//   - VALIDATION_ERROR: request failed struct validation
//   - NO_PREDICTION: the explained movie has no rated neighbour
//   - NOT_READY: data is still loading
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeMissingGenre     = "MISSING_GENRE"
	CodeValidation       = "VALIDATION_ERROR"
	CodeNoPrediction     = "NO_PREDICTION"
	CodeNotReady         = "NOT_READY"
	CodeInternal         = "INTERNAL_ERROR"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotFound         = "NOT_FOUND"
)
