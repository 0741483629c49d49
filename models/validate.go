// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSpecies = errors.New("species must be one of: " + strings.Join(AllSpecies, ", "))
	ErrInvalidGender  = errors.New("gender must be one of: " + strings.Join(AllGenders, ", "))
	ErrInvalidAge     = errors.New("age must be one of: " + strings.Join(AllAges, ", "))
	ErrInvalidHealth  = errors.New("health must be one of: " + strings.Join(AllHealth, ", "))
	ErrInvalidCount   = errors.New("observed_count must be a positive integer")
	ErrInvalidTime    = errors.New("timestamp must not be negative")
)

// Validate checks every field of a new observation against its catalog.
func (c ObservationCreate) Validate() error {
	if !IsValidSpecies(c.Species) {
		return ErrInvalidSpecies
	}
	if c.ObservedCount < 1 {
		return ErrInvalidCount
	}
	if !IsValidGender(c.Gender) {
		return ErrInvalidGender
	}
	if !IsValidAge(c.Age) {
		return ErrInvalidAge
	}
	if !IsValidHealth(c.Health) {
		return ErrInvalidHealth
	}
	if c.Timestamp < 0 {
		return ErrInvalidTime
	}
	return nil
}

// Validate checks only the fields the update sets.
func (u ObservationUpdate) Validate() error {
	if u.Species != nil && !IsValidSpecies(*u.Species) {
		return ErrInvalidSpecies
	}
	if u.ObservedCount != nil && *u.ObservedCount < 1 {
		return ErrInvalidCount
	}
	if u.Gender != nil && !IsValidGender(*u.Gender) {
		return ErrInvalidGender
	}
	if u.Age != nil && !IsValidAge(*u.Age) {
		return ErrInvalidAge
	}
	if u.Health != nil && !IsValidHealth(*u.Health) {
		return ErrInvalidHealth
	}
	if u.Timestamp != nil && *u.Timestamp < 0 {
		return ErrInvalidTime
	}
	return nil
}

// FormatLocation renders a coordinate pair the way the field app stores it.
func FormatLocation(lat, lon float64) string {
	return fmt.Sprintf("%g, %g", lat, lon)
}
