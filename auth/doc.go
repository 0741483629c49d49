// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides edit keys and request identifiers.

# Edit Keys

Anyone may submit and browse observations. Changing or deleting one
requires the edit key returned when it was created. Edit keys use
HMAC-SHA256 over the observation ID:

	editKey := auth.GenerateEditKey(observationID, salt)
	err := auth.ValidateEditKey(observationID, editKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same observation ID and salt always produce the same key, so nothing
needs to be stored in the database.

Clients send the key in the X-Edit-Key header.

# Request IDs

Random UUIDs (github.com/google/uuid) for correlating request log lines:

	id := auth.NewRequestID()
*/
package auth
