// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package browser loads the list of submitted observations. A load ends
// Loaded, possibly with an empty list, or Failed with ErrorMessage.
package browser
