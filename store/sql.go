// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/boswachter/observations/db"
	"github.com/boswachter/observations/models"
)

const observationColumns = `id, species, observed_count, gender, age, health, location, timestamp, username, additional_description`

// SQLStore implements ObservationStore on database/sql. Queries are
// written for PostgreSQL and rebound for SQLite.
type SQLStore struct {
	db     *sql.DB
	dbType string
}

func NewSQLStore(conn *sql.DB, dbType string) *SQLStore {
	return &SQLStore{db: conn, dbType: dbType}
}

func (s *SQLStore) q(query string) string {
	return db.Rebind(s.dbType, query)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanObservation(row rowScanner) (models.Observation, error) {
	var o models.Observation
	err := row.Scan(
		&o.ID,
		&o.Species,
		&o.ObservedCount,
		&o.Gender,
		&o.Age,
		&o.Health,
		&o.Location,
		&o.Timestamp,
		&o.User,
		&o.AdditionalDescription,
	)
	return o, err
}

func (s *SQLStore) Create(ctx context.Context, c models.ObservationCreate) (models.Observation, error) {
	row := s.db.QueryRowContext(ctx, s.q(`
		INSERT INTO observation (species, observed_count, gender, age, health, location, timestamp, username, additional_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`), c.Species, c.ObservedCount, c.Gender, c.Age, c.Health, c.Location, c.Timestamp, c.User, c.AdditionalDescription)

	o := models.Observation{ObservationCreate: c}
	if err := row.Scan(&o.ID); err != nil {
		return models.Observation{}, fmt.Errorf("failed to insert observation: %w", err)
	}
	return o, nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (models.Observation, error) {
	return s.get(ctx, s.db, id)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLStore) get(ctx context.Context, q querier, id int64) (models.Observation, error) {
	o, err := scanObservation(q.QueryRowContext(ctx, s.q(`
		SELECT `+observationColumns+`
		FROM observation
		WHERE id = $1
	`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Observation{}, ErrNotFound
	}
	if err != nil {
		return models.Observation{}, fmt.Errorf("failed to query observation %d: %w", id, err)
	}
	return o, nil
}

func (s *SQLStore) List(ctx context.Context, offset, limit int) ([]models.Observation, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT `+observationColumns+`
		FROM observation
		ORDER BY id
		LIMIT $1 OFFSET $2
	`), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	defer rows.Close()

	observations := []models.Observation{}
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		observations = append(observations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}

	return observations, nil
}

// Update applies the set fields of u inside a transaction and returns
// the resulting row.
func (s *SQLStore) Update(ctx context.Context, id int64, u models.ObservationUpdate) (models.Observation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Observation{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	o, err := s.get(ctx, tx, id)
	if err != nil {
		return models.Observation{}, err
	}
	o.Apply(u)

	_, err = tx.ExecContext(ctx, s.q(`
		UPDATE observation
		SET species = $1, observed_count = $2, gender = $3, age = $4, health = $5,
			location = $6, timestamp = $7, username = $8, additional_description = $9
		WHERE id = $10
	`), o.Species, o.ObservedCount, o.Gender, o.Age, o.Health, o.Location, o.Timestamp, o.User, o.AdditionalDescription, id)
	if err != nil {
		return models.Observation{}, fmt.Errorf("failed to update observation %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return models.Observation{}, fmt.Errorf("failed to commit update: %w", err)
	}
	return o, nil
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM observation WHERE id = $1`), id)
	if err != nil {
		return fmt.Errorf("failed to delete observation %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete observation %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
