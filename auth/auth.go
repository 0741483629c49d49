// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidEditKey = errors.New("invalid edit key")

// GenerateEditKey creates an HMAC-based edit key for an observation
// This is deterministic and verifiable
func GenerateEditKey(observationID int64, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(strconv.FormatInt(observationID, 10)))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateEditKey checks if the provided edit key is valid for the observation
func ValidateEditKey(observationID int64, editKey, salt string) error {
	expected := GenerateEditKey(observationID, salt)
	if !hmac.Equal([]byte(editKey), []byte(expected)) {
		return ErrInvalidEditKey
	}
	return nil
}

// NewRequestID returns a random UUID for correlating log lines
func NewRequestID() string {
	return uuid.NewString()
}
