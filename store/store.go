// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/boswachter/observations/models"
)

var ErrNotFound = errors.New("observation not found")

// ObservationStore persists observations.
type ObservationStore interface {
	Create(ctx context.Context, c models.ObservationCreate) (models.Observation, error)
	Get(ctx context.Context, id int64) (models.Observation, error)
	List(ctx context.Context, offset, limit int) ([]models.Observation, error)
	Update(ctx context.Context, id int64, u models.ObservationUpdate) (models.Observation, error)
	Delete(ctx context.Context, id int64) error
}
