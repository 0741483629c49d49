// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/boswachter/observations/cliparse"
	"github.com/boswachter/observations/handlers"
	"github.com/boswachter/observations/metrics"
	"github.com/boswachter/observations/middleware"
	"github.com/boswachter/observations/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	m := metrics.New()

	// Initialize handlers
	observationHandler := handlers.NewObservationHandler(store.NewSQLStore(db, cfg.DatabaseType), cfg, m)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(m, pattern, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", m.Handler())

	// Observations; the collection answers with and without trailing slash
	handle("POST /observations", observationHandler.CreateObservation)
	handle("POST /observations/{$}", observationHandler.CreateObservation)
	handle("GET /observations", observationHandler.ListObservations)
	handle("GET /observations/{$}", observationHandler.ListObservations)
	handle("GET /observations/{id}", observationHandler.GetObservation)
	handle("PATCH /observations/{id}", observationHandler.UpdateObservation)
	handle("DELETE /observations/{id}", observationHandler.DeleteObservation)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("boswachter observations API v1"))
	})

	return mux
}
