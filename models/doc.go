// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - ObservationCreate: species, observed_count, gender, age, health,
    location, timestamp, user, additional_description
  - ObservationUpdate: the same fields, all optional (PATCH)

# Response Types

  - CreateObservationResponse: the stored observation plus edit_key
  - ErrorResponse: error, message

# Domain Types

  - Observation: a stored sighting with its server-assigned id

# Catalogs

Species:

	Damhert, Edelhert, Ree, Wildzwijn, Schotse Hooglander, Wolf

Gender:

	Mannelijk, Vrouwelijk, Onbekend

Age:

	Jong, Adolecent, Volwassen, Onbekend

Health (optional):

	1, 2, 3, 4, 5

# Validation

	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

Timestamps are Unix milliseconds. Locations are "lat, lon" text built
with FormatLocation.
*/
package models
