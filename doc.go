// SPDX-License-Identifier: MIT

// Package salesman plans delivery round trips from a depot through a small
// set of stops by exhaustive search.
//
// The module is organized by concern:
//
//	core/       Graph, Vertex and Edge with thread-safe mutation and stable order
//	matrix/     dense weight matrix and the adjacency view the solver scores with
//	dfs/        explicit-stack enumeration of every simple path from a start
//	tsp/        brute-force minimum cycle over the enumerated paths
//	bfs/        hop reachability, used to reject disconnected selections early
//	dijkstra/   shortest network distance from the depot to each stop
//	builder/    seeded synthetic graphs for benchmarks and tests
//	dataset/    stop catalogue files (JSON, YAML, TOML) and graph building
//	geo/        great-circle distance and nearest-stop lookup
//	route/      renderer-facing route: origin, waypoints, legs, polyline
//	planner/    selection → graph → tour → route, with metrics and logs
//	server/     HTTP API over the planner
//	config/     viper-backed configuration with validation
//	cmd/salesman command-line interface: solve, vertices, serve, bench
//
// Quick ASCII example:
//
//	depot ── 950 ── north
//	  │               │
//	 1000            600
//	  │               │
//	market ── 500 ── south
//
// The search is O(n!) in the number of stops, so the solver refuses graphs
// above a configurable ceiling (10 vertices by default).
package salesman
