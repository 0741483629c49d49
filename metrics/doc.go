// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for observation traffic and
// a per-route latency histogram. Each Metrics owns its registry; the router
// serves it at GET /metrics.
package metrics
