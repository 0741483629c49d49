// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := postgresSchema
	if dbType == "sqlite" {
		schema = sqliteSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Observations
CREATE TABLE IF NOT EXISTS observation (
    id BIGSERIAL PRIMARY KEY,
    species TEXT NOT NULL CHECK (species IN ('Damhert', 'Edelhert', 'Ree', 'Wildzwijn', 'Schotse Hooglander', 'Wolf')),
    observed_count INTEGER NOT NULL CHECK (observed_count > 0),
    gender TEXT NOT NULL CHECK (gender IN ('Mannelijk', 'Vrouwelijk', 'Onbekend')),
    age TEXT NOT NULL CHECK (age IN ('Jong', 'Adolecent', 'Volwassen', 'Onbekend')),
    health TEXT NOT NULL DEFAULT '' CHECK (health IN ('', '1', '2', '3', '4', '5')),
    location TEXT NOT NULL DEFAULT '',
    timestamp BIGINT NOT NULL DEFAULT 0,
    username TEXT NOT NULL DEFAULT '',
    additional_description TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_observation_species ON observation(species);
CREATE INDEX IF NOT EXISTS idx_observation_username ON observation(username);
`

const sqliteSchema = `
-- Observations
CREATE TABLE IF NOT EXISTS observation (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    species TEXT NOT NULL CHECK (species IN ('Damhert', 'Edelhert', 'Ree', 'Wildzwijn', 'Schotse Hooglander', 'Wolf')),
    observed_count INTEGER NOT NULL CHECK (observed_count > 0),
    gender TEXT NOT NULL CHECK (gender IN ('Mannelijk', 'Vrouwelijk', 'Onbekend')),
    age TEXT NOT NULL CHECK (age IN ('Jong', 'Adolecent', 'Volwassen', 'Onbekend')),
    health TEXT NOT NULL DEFAULT '' CHECK (health IN ('', '1', '2', '3', '4', '5')),
    location TEXT NOT NULL DEFAULT '',
    timestamp INTEGER NOT NULL DEFAULT 0,
    username TEXT NOT NULL DEFAULT '',
    additional_description TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_observation_species ON observation(species);
CREATE INDEX IF NOT EXISTS idx_observation_username ON observation(username);
`
