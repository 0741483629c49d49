// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists observations behind the ObservationStore
// interface. SQLStore works on any database opened by package db;
// missing rows are reported as ErrNotFound.
package store
