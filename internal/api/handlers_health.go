// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
)

// ready reports whether the engine is loaded and the database answers.
func (h *Handler) ready(ctx context.Context) bool {
	if h.engine == nil {
		return false
	}
	if h.db == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return h.db.Ping(ctx) == nil
}

func (h *Handler) healthStatus(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Status:    "healthy",
		Version:   h.version,
		Ready:     h.ready(ctx),
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now().UTC(),
	}
	if !status.Ready {
		status.Status = "degraded"
	}
	if h.engine != nil {
		status.Movies = h.engine.Stats().Movies
	}
	return status
}

// Health handles GET /api/v1/health
//
// @Summary Get system health status
// @Description Returns readiness, catalog size and uptime.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     h.healthStatus(r.Context()),
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// HealthLive handles GET /api/v1/health/live. The process answering is
// enough.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// HealthReady handles GET /api/v1/health/ready. It answers 503 until the
// engine is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus(r.Context())
	if !health.Ready {
		respondError(w, r, http.StatusServiceUnavailable, models.CodeNotReady, "Service is not ready", nil)
		return
	}
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}
