// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client is the field app's HTTP client for the observation API.
//
// Failures are not retried. A non-2xx response is reported as a
// *StatusError wrapping ErrUnexpectedStatus without reading the body.
package client
