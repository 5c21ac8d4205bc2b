// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package validation checks API request structs with go-playground/validator v10.

A single validator instance is shared process-wide; it caches struct metadata
and is safe for concurrent use. Failures come back as *RequestValidationError,
which converts to the API's VALIDATION_ERROR shape:

	req := validation.PredictRequest{Ratings: ratings}
	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	    return
	}

Validation here is structural only: sizes, id signs and the star range. The
engine still decides whether a movie exists and whether a limit fits the
configured maximum.
*/
package validation
