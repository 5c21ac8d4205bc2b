// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// respondEngineError maps engine errors to HTTP responses.
//
//	ErrMissingGenre     -> 400 MISSING_GENRE
//	*InputError         -> 400 INVALID_INPUT (field in details)
//	ErrNoPrediction     -> 404 NO_PREDICTION
//	ErrDataUnavailable  -> 503 NOT_READY
//	deadline exceeded   -> 504 INTERNAL_ERROR
//	anything else       -> 500 INTERNAL_ERROR
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var inputErr *recommend.InputError
	switch {
	case errors.Is(err, recommend.ErrMissingGenre):
		respondError(w, r, http.StatusBadRequest, models.CodeMissingGenre, "Please enter a genre", nil)
	case errors.As(err, &inputErr):
		respondErrorWithDetails(w, r, http.StatusBadRequest, models.CodeInvalidInput, inputErr.Error(),
			map[string]interface{}{"field": inputErr.Field}, nil)
	case errors.Is(err, recommend.ErrNoPrediction):
		respondError(w, r, http.StatusNotFound, models.CodeNoPrediction,
			"No prediction is available for this movie with the given ratings", nil)
	case errors.Is(err, recommend.ErrDataUnavailable):
		respondError(w, r, http.StatusServiceUnavailable, models.CodeNotReady, "Recommendation data is not loaded", err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, models.CodeInternal, "Request timed out", err)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		return
	default:
		respondError(w, r, http.StatusInternalServerError, models.CodeInternal, "Internal server error", err)
	}
}
