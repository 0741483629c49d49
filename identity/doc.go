// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package identity stores the observer's username. It is written by the
// login command and read once by each capture wizard.
package identity
