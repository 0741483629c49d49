// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware wraps the observation handlers and holds the JSON
helpers they share.

# Wrapping

The router stacks two wrappers on every observation route:

	mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(m, pattern, h)))

WithLogging tags the request with an X-Request-ID (reusing the caller's)
and logs one line on completion with status and duration_ms; 5xx
responses log at error level. WithMetrics feeds the per-route latency
histogram.

CORS wraps the whole mux in main. Preflights get 204 and never reach a
handler; X-Edit-Key is an allowed request header.

# JSON

	middleware.JSONResponse(w, http.StatusCreated, resp)
	middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid edit key")

ParseJSONBody accepts a single JSON value of at most MaxBodyBytes.
Unknown fields are ignored.

# Client IP

GetClientIP prefers X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
