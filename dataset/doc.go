// SPDX-License-Identifier: MIT

// Package dataset loads stop catalogues (vertex and edge records) from JSON,
// YAML or TOML, validates them, selects the stops of one delivery run and
// turns a selection into a core.Graph.
//
// Vertex IDs are integers in the files and decimal strings in the graph.
// The depot is the vertex the caller names (0 by convention); it is always
// the first vertex of a selection, so the solver starts there.
package dataset
