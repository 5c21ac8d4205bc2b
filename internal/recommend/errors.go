// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/cinematch/internal/recommend/algorithms"
)

var (
	// ErrInvalidInput is matched by every input validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingGenre is returned for an empty genre. It also matches
	// ErrInvalidInput.
	ErrMissingGenre = &InputError{Field: "genre", Message: "missing genre", sentinel: algorithms.ErrMissingGenre}

	// ErrDataUnavailable means the catalog or similarity matrix is absent.
	ErrDataUnavailable = errors.New("recommendation data unavailable")

	// ErrNoPrediction means the requested movie has no defined prediction
	// for the given ratings.
	ErrNoPrediction = errors.New("no prediction for movie")
)

// InputError describes a rejected request field.
type InputError struct {
	Field   string
	Message string

	sentinel error
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is matches ErrInvalidInput and, for ErrMissingGenre, the algorithms
// sentinel as well.
func (e *InputError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	return e.sentinel != nil && target == e.sentinel
}

func invalidf(field, format string, args ...any) *InputError {
	return &InputError{Field: field, Message: fmt.Sprintf(format, args...)}
}
