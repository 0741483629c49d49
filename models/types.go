// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Species constants
const (
	SpeciesFallowDeer     = "Damhert"
	SpeciesRedDeer        = "Edelhert"
	SpeciesRoeDeer        = "Ree"
	SpeciesWildBoar       = "Wildzwijn"
	SpeciesHighlandCattle = "Schotse Hooglander"
	SpeciesWolf           = "Wolf"
)

// Gender constants
const (
	GenderMale    = "Mannelijk"
	GenderFemale  = "Vrouwelijk"
	GenderUnknown = "Onbekend"
)

// Age constants
const (
	AgeYoung      = "Jong"
	AgeAdolescent = "Adolecent"
	AgeMature     = "Volwassen"
	AgeUnknown    = "Onbekend"
)

// Health scores, 1 (poor) to 5 (excellent)
const (
	HealthOne   = "1"
	HealthTwo   = "2"
	HealthThree = "3"
	HealthFour  = "4"
	HealthFive  = "5"
)

// Listing limits
const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

var (
	AllSpecies = []string{SpeciesFallowDeer, SpeciesRedDeer, SpeciesRoeDeer, SpeciesWildBoar, SpeciesHighlandCattle, SpeciesWolf}
	AllGenders = []string{GenderMale, GenderFemale, GenderUnknown}
	AllAges    = []string{AgeYoung, AgeAdolescent, AgeMature, AgeUnknown}
	AllHealth  = []string{HealthOne, HealthTwo, HealthThree, HealthFour, HealthFive}
)

func IsValidSpecies(s string) bool { return contains(AllSpecies, s) }
func IsValidGender(s string) bool  { return contains(AllGenders, s) }
func IsValidAge(s string) bool     { return contains(AllAges, s) }

// IsValidHealth accepts the empty string; health is optional.
func IsValidHealth(s string) bool { return s == "" || contains(AllHealth, s) }

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// Request types

// ObservationCreate is the body of POST /observations.
type ObservationCreate struct {
	Species               string `json:"species"`
	ObservedCount         int    `json:"observed_count"`
	Gender                string `json:"gender"`
	Age                   string `json:"age"`
	Health                string `json:"health"`
	Location              string `json:"location"`
	Timestamp             int64  `json:"timestamp"` // Unix milliseconds
	User                  string `json:"user"`
	AdditionalDescription string `json:"additional_description"`
}

// ObservationUpdate is the body of PATCH /observations/{id}.
// Nil fields are left untouched.
type ObservationUpdate struct {
	Species               *string `json:"species,omitempty"`
	ObservedCount         *int    `json:"observed_count,omitempty"`
	Gender                *string `json:"gender,omitempty"`
	Age                   *string `json:"age,omitempty"`
	Health                *string `json:"health,omitempty"`
	Location              *string `json:"location,omitempty"`
	Timestamp             *int64  `json:"timestamp,omitempty"`
	User                  *string `json:"user,omitempty"`
	AdditionalDescription *string `json:"additional_description,omitempty"`
}

// Empty reports whether the update sets no fields.
func (u ObservationUpdate) Empty() bool {
	return u.Species == nil && u.ObservedCount == nil && u.Gender == nil &&
		u.Age == nil && u.Health == nil && u.Location == nil &&
		u.Timestamp == nil && u.User == nil && u.AdditionalDescription == nil
}

// Response types

type CreateObservationResponse struct {
	Observation
	EditKey string `json:"edit_key"`
}

// Domain types

// Observation is a stored wildlife sighting.
type Observation struct {
	ID int64 `json:"id"`
	ObservationCreate
}

// Apply copies the set fields of u onto o.
func (o *Observation) Apply(u ObservationUpdate) {
	if u.Species != nil {
		o.Species = *u.Species
	}
	if u.ObservedCount != nil {
		o.ObservedCount = *u.ObservedCount
	}
	if u.Gender != nil {
		o.Gender = *u.Gender
	}
	if u.Age != nil {
		o.Age = *u.Age
	}
	if u.Health != nil {
		o.Health = *u.Health
	}
	if u.Location != nil {
		o.Location = *u.Location
	}
	if u.Timestamp != nil {
		o.Timestamp = *u.Timestamp
	}
	if u.User != nil {
		o.User = *u.User
	}
	if u.AdditionalDescription != nil {
		o.AdditionalDescription = *u.AdditionalDescription
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
