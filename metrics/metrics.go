// SPDX-License-Identifier: MIT

// Package metrics declares the Prometheus collectors of the planner and the
// HTTP server. promauto registers them with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesman_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesman_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// PlansTotal counts plans by outcome: "tour", "direct", "empty" or "error".
	PlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesman_plans_total",
			Help: "Total number of delivery plans by outcome",
		},
		[]string{"outcome"},
	)

	// SolveDuration measures exhaustive search time.
	SolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "salesman_solve_duration_seconds",
			Help:    "Duration of exhaustive TSP searches in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	// PathsEnumerated counts simple paths visited by the solver.
	PathsEnumerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salesman_paths_enumerated_total",
			Help: "Total number of simple paths enumerated by the solver",
		},
	)

	// DatasetVertices reports the size of the loaded stop catalogue.
	DatasetVertices = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "salesman_dataset_vertices",
			Help: "Number of stops in the loaded catalogue",
		},
	)
)
