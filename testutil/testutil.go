// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boswachter/observations/cliparse"
	"github.com/boswachter/observations/db"
	"github.com/boswachter/observations/models"
)

// TestDBType is the dialect used by tests: an in-memory SQLite database
const TestDBType = cliparse.DatabaseSQLite

// SetupTestDB creates a fresh in-memory database with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(TestDBType, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, TestDBType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  ":memory:",
		DatabaseType: TestDBType,
		EditKeySalt:  "test-edit-salt",
	}
}

// ValidObservation returns a create request that passes validation
func ValidObservation() models.ObservationCreate {
	return models.ObservationCreate{
		Species:               models.SpeciesWolf,
		ObservedCount:         2,
		Gender:                models.GenderMale,
		Age:                   models.AgeMature,
		Health:                models.HealthFour,
		Location:              "52.0907, 5.1214",
		Timestamp:             1718000000000,
		User:                  "ranger1",
		AdditionalDescription: "Tracks near the fen",
	}
}

// CreateTestObservation inserts an observation directly and returns its ID
func CreateTestObservation(t *testing.T, conn *sql.DB, species string) int64 {
	t.Helper()

	obs := ValidObservation()
	obs.Species = species

	var id int64
	err := conn.QueryRow(db.Rebind(TestDBType, `
		INSERT INTO observation (species, observed_count, gender, age, health, location, timestamp, username, additional_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`), obs.Species, obs.ObservedCount, obs.Gender, obs.Age, obs.Health, obs.Location, obs.Timestamp, obs.User, obs.AdditionalDescription).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test observation: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
