// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open picks the database/sql driver for the configured type and pings it:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - sqlite: modernc.org/sqlite (pure Go). File databases get WAL
    journaling and a busy timeout; the pool is limited to one connection.
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

# Schema Creation

CreateSchema initializes all required tables for the dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - observation: one row per wildlife sighting. Catalog columns (species,
    gender, age, health) carry CHECK constraints mirroring the models
    package; observed_count must be positive; timestamp is Unix
    milliseconds.

# Placeholders

Queries are written with PostgreSQL $N placeholders. Rebind rewrites
them to ? for SQLite:

	row := conn.QueryRow(db.Rebind(dbType, "SELECT ... WHERE id = $1"), id)

# Indexes

Performance indexes on:

  - observation.species
  - observation.username
*/
package db
