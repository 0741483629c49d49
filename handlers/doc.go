// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the observation API.

# Handler Types

ObservationHandler depends on a store, the config and the metrics:

	h := handlers.NewObservationHandler(store.NewSQLStore(db, cfg.DatabaseType), cfg, metrics.New())

# Submission and Listing

	POST /observations/  → CreateObservation (returns edit_key)
	GET  /observations   → ListObservations (?offset=&limit=)

Submissions are validated against the species, gender, age and health
catalogs; observed_count must be at least 1. Listings are ordered by id,
limit defaults to and is capped at 100.

# Corrections

	GET    /observations/{id} → GetObservation
	PATCH  /observations/{id} → UpdateObservation (partial)
	DELETE /observations/{id} → DeleteObservation

PATCH and DELETE require the X-Edit-Key header returned at creation. A
wrong key is 401 even for ids that do not exist.

# Errors

Failures are JSON {"error": "..."} bodies written by
middleware.ErrorResponse. Storage errors are logged with slog and
surfaced as 500 without detail.
*/
package handlers
