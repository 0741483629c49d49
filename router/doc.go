// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the observation API.

# Creating the Router

	mux := router.NewRouter(db, cfg)

Returns an http.ServeMux with all routes configured. Observation routes
are wrapped with request logging and per-route Prometheus timing.

# Routes

Health, metrics and root:

	GET  /health   → "OK"
	GET  /metrics  → Prometheus text format
	GET  /         → "boswachter observations API v1"

Observations (the collection accepts an optional trailing slash):

	POST   /observations       → CreateObservation (returns edit_key)
	GET    /observations       → ListObservations (?offset=&limit=, limit ≤ 100)
	GET    /observations/{id}  → GetObservation
	PATCH  /observations/{id}  → UpdateObservation (X-Edit-Key)
	DELETE /observations/{id}  → DeleteObservation (X-Edit-Key)

# Routing

Uses Go 1.22+ enhanced routing patterns with method matching and path
parameters. Path values are extracted via r.PathValue("id").
*/
package router
