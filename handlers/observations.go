// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/boswachter/observations/auth"
	"github.com/boswachter/observations/cliparse"
	"github.com/boswachter/observations/metrics"
	"github.com/boswachter/observations/middleware"
	"github.com/boswachter/observations/models"
	"github.com/boswachter/observations/store"
)

// EditKeyHeader authorizes PATCH and DELETE on a single observation
const EditKeyHeader = "X-Edit-Key"

type ObservationHandler struct {
	store   store.ObservationStore
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func NewObservationHandler(s store.ObservationStore, cfg cliparse.Config, m *metrics.Metrics) *ObservationHandler {
	return &ObservationHandler{store: s, cfg: cfg, metrics: m}
}

// CreateObservation handles POST /observations
func (h *ObservationHandler) CreateObservation(w http.ResponseWriter, r *http.Request) {
	var req models.ObservationCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	obs, err := h.store.Create(r.Context(), req)
	if err != nil {
		slog.Error("failed to insert observation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create observation")
		return
	}

	h.metrics.IncrementObservationsCreated(obs.Species)
	slog.Info("observation created", "observation_id", obs.ID, "species", obs.Species, "user", obs.User)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateObservationResponse{
		Observation: obs,
		EditKey:     auth.GenerateEditKey(obs.ID, h.cfg.EditKeySalt),
	})
}

// ListObservations handles GET /observations?offset=&limit=
func (h *ObservationHandler) ListObservations(w http.ResponseWriter, r *http.Request) {
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	limit, err := queryInt(r, "limit", models.DefaultListLimit)
	if err != nil || limit < 0 || limit > models.MaxListLimit {
		middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be an integer between 0 and 100")
		return
	}

	observations, err := h.store.List(r.Context(), offset, limit)
	if err != nil {
		slog.Error("failed to list observations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, observations)
}

// GetObservation handles GET /observations/{id}
func (h *ObservationHandler) GetObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	obs, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Observation not found")
		return
	}
	if err != nil {
		slog.Error("failed to query observation", "error", err, "observation_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, obs)
}

// UpdateObservation handles PATCH /observations/{id}
func (h *ObservationHandler) UpdateObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	// Validate edit key
	if err := auth.ValidateEditKey(id, r.Header.Get(EditKeyHeader), h.cfg.EditKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid edit key")
		return
	}

	// Parse request
	var req models.ObservationUpdate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	obs, err := h.store.Update(r.Context(), id, req)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Observation not found")
		return
	}
	if err != nil {
		slog.Error("failed to update observation", "error", err, "observation_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update observation")
		return
	}

	if !req.Empty() {
		h.metrics.ObservationsUpdated.Inc()
		slog.Info("observation updated", "observation_id", id)
	}

	middleware.JSONResponse(w, http.StatusOK, obs)
}

// DeleteObservation handles DELETE /observations/{id}
func (h *ObservationHandler) DeleteObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	// Validate edit key
	if err := auth.ValidateEditKey(id, r.Header.Get(EditKeyHeader), h.cfg.EditKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid edit key")
		return
	}

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Observation not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete observation", "error", err, "observation_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete observation")
		return
	}

	h.metrics.ObservationsDeleted.Inc()
	slog.Info("observation deleted", "observation_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path value, writing a 400 when it is not an integer
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
