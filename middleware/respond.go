// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/boswachter/observations/models"
)

// MaxBodyBytes bounds request bodies. An observation is well under 1 KiB.
const MaxBodyBytes = 64 << 10

var (
	ErrBodyTooLarge = errors.New("request body too large")
	ErrTrailingData = errors.New("unexpected data after JSON value")
)

// JSONResponse writes data as JSON with the given status
func JSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "status", statusCode, "error", err)
	}
}

// ErrorResponse writes {"error": <status text>, "message": message}
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// ParseJSONBody decodes exactly one JSON value from the request body.
// Unknown fields are ignored so older field apps keep working.
func ParseJSONBody(r *http.Request, v any) error {
	defer r.Body.Close()

	body := io.LimitReader(r.Body, MaxBodyBytes+1)
	counted := &countingReader{r: body}
	dec := json.NewDecoder(counted)

	if err := dec.Decode(v); err != nil {
		if counted.n > MaxBodyBytes {
			return ErrBodyTooLarge
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ErrTrailingData
	}
	if counted.n > MaxBodyBytes {
		return ErrBodyTooLarge
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
