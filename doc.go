// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the boswachter observation API.

Rangers submit wildlife sightings (species, count, gender, age, health,
location, time and remarks) from the field; the API stores them and lists
them back to the observation browser.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=observations.db EDIT_KEY_SALT=secret go run .

Or with flags:

	go run . -p 8000 -t pgx -d "postgres://..." -edit-salt secret

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - EDIT_KEY_SALT (-edit-salt): Secret for observation edit keys

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)

# Architecture

  - handlers: HTTP request handlers for observations
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, JSON helpers
  - store: Observation persistence over database/sql
  - models: Catalogs, request/response types, validation
  - auth: Edit keys and request IDs
  - metrics: Prometheus instrumentation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

The field client lives in cmd/observer and is built from the client,
identity, device, wizard and browser packages.
*/
package main
