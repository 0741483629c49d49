// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package device provides command-line stand-ins for the phone
// capabilities the capture wizard consumes: the image picker,
// geolocation and asset metadata.
package device
