// SPDX-License-Identifier: MIT

// Package core defines the Graph, Vertex and Edge types, the sentinel errors
// returned by graph mutation, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex key is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrDuplicateEdge   - an edge with the same key is already registered.
//	ErrBadWeight       - edge weight is negative, NaN or infinite.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex (or edge endpoint) has an empty key.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates AddEdge was called with a key that already exists.
	// The existing edge is left untouched (no overwrite).
	ErrDuplicateEdge = errors.New("core: edge has already been added")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")
)

// edgeKeySeparator joins the endpoint keys of an edge: "<start>_<end>".
const edgeKeySeparator = "_"

// Vertex is a stop of the graph.
//
// ID is the stable key. Name, Lat and Lng are carried through untouched:
// the graph and the solvers never interpret coordinates.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string `json:"id"`

	// Name is a display label.
	Name string `json:"name"`

	// Lat and Lng are the coordinate pair handed to renderers.
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Key returns the graph key of v.
func (v Vertex) Key() string { return v.ID }

// Edge is an ordered pair of vertex keys with a non-negative weight.
//
// Edges are values: once registered they are never mutated in place.
// Reverse builds flipped copies instead.
type Edge struct {
	// Start is the key of the source vertex.
	Start string `json:"start"`

	// End is the key of the destination vertex.
	End string `json:"end"`

	// Weight is the traversal cost.
	Weight float64 `json:"weight"`
}

// NewEdge returns the edge start→end with the given weight.
func NewEdge(start, end string, weight float64) Edge {
	return Edge{Start: start, End: end, Weight: weight}
}

// Key returns "<Start>_<End>".
func (e Edge) Key() string {
	return e.Start + edgeKeySeparator + e.End
}

// Other returns the endpoint opposite to key. For a self-loop it returns key.
// If key is not an endpoint, Start is returned.
func (e Edge) Other(key string) string {
	if e.Start == key {
		return e.End
	}

	return e.Start
}

// Reversed returns a copy of e with Start and End swapped.
func (e Edge) Reversed() Edge {
	return Edge{Start: e.End, End: e.Start, Weight: e.Weight}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of the graph
// (true = directed, false = undirected). It is fixed after construction.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory weighted graph.
//
// mu guards every collection. vertexOrder and edgeOrder record insertion
// order; adjacency lists hold edge keys in the order they were linked.
type Graph struct {
	mu sync.RWMutex

	directed bool

	vertices    map[string]Vertex
	vertexOrder []string

	edges     map[string]Edge
	edgeOrder []string

	// adjacency[vertexKey] = ordered edge keys incident to (directed: leaving) the vertex
	adjacency map[string][]string
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]Vertex),
		edges:     make(map[string]Edge),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the orientation chosen at construction.
func (g *Graph) Directed() bool {
	return g.directed
}
