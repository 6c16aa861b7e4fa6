// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Connect/DeleteEdge/Edge/FindEdge/AllEdges.
// Determinism:
//   - AllEdges() returns edges in insertion order.
//   - Adjacency lists keep link order; FindEdge scans them front to back.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"slices"
)

// AddEdge registers e.
//
// Steps:
//  1. Validate endpoint keys (ErrEmptyVertexID) and weight (ErrBadWeight).
//  2. Lock mu; insert missing endpoints as bare vertices.
//  3. Reject an already registered key with ErrDuplicateEdge (no overwrite).
//  4. Store e and append its key to edgeOrder.
//  5. Link e under Start; in an undirected graph also under End (loops once).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	if err := validateEdge(e); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(e.Start)
	g.ensureVertex(e.End)
	if _, exists := g.edges[e.Key()]; exists {
		return fmt.Errorf("AddEdge(%s): %w", e.Key(), ErrDuplicateEdge)
	}
	g.linkEdge(e)

	return nil
}

// Connect is AddEdge for callers holding full vertex records: a missing
// endpoint is inserted with its record instead of a bare key. Existing
// vertices are not overwritten.
//
// Returns the registered edge.
func (g *Graph) Connect(from, to Vertex, weight float64) (Edge, error) {
	e := NewEdge(from.ID, to.ID, weight)
	if err := validateEdge(e); err != nil {
		return Edge{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[from.ID]; !ok {
		g.putVertex(from)
	}
	if _, ok := g.vertices[to.ID]; !ok {
		g.putVertex(to)
	}
	if _, exists := g.edges[e.Key()]; exists {
		return Edge{}, fmt.Errorf("Connect(%s): %w", e.Key(), ErrDuplicateEdge)
	}
	g.linkEdge(e)

	return e, nil
}

// DeleteEdge removes the edge stored under key from the catalog and from the
// adjacency lists of both endpoints. Both lists are cleaned even in a directed
// graph, which keeps deletion the exact inverse of AddEdge whatever the
// orientation.
//
// Errors:
//   - ErrEdgeNotFound: if key is absent.
//
// Complexity: O(E + deg(start) + deg(end)).
func (g *Graph) DeleteEdge(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[key]
	if !ok {
		return fmt.Errorf("DeleteEdge(%s): %w", key, ErrEdgeNotFound)
	}
	g.unlinkEdge(e)

	return nil
}

// Edge returns the edge stored under key.
func (g *Graph) Edge(key string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[key]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether an edge is registered under key.
func (g *Graph) HasEdge(key string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[key]

	return ok
}

// FindEdge returns the first edge in u's adjacency list whose other endpoint
// is v. With several edges between the pair the earliest linked one wins.
// Complexity: O(deg(u)).
func (g *Graph) FindEdge(u, v string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, ek := range g.adjacency[u] {
		e := g.edges[ek]
		if e.Other(u) == v {
			return e, true
		}
	}

	return Edge{}, false
}

// IncidentEdges returns every edge in key's adjacency list, in adjacency
// order. Parallel and antiparallel edges each appear with their own weight.
//
// Errors:
//   - ErrVertexNotFound: if key is absent.
//
// Complexity: O(deg(key)).
func (g *Graph) IncidentEdges(key string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[key]; !ok {
		return nil, fmt.Errorf("IncidentEdges(%q): %w", key, ErrVertexNotFound)
	}
	adj := g.adjacency[key]
	out := make([]Edge, 0, len(adj))
	for _, ek := range adj {
		out = append(out, g.edges[ek])
	}

	return out, nil
}

// AllEdges returns a snapshot of every edge in insertion order.
// Complexity: O(E).
func (g *Graph) AllEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		out = append(out, g.edges[key])
	}

	return out
}

// EdgeCount returns the number of registered edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AdjacencyList returns a copy of every vertex's ordered edge-key list.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string][]string, len(g.adjacency))
	for key, adj := range g.adjacency {
		out[key] = slices.Clone(adj)
	}

	return out
}

// validateEdge checks endpoint keys and weight policy.
func validateEdge(e Edge) error {
	if e.Start == "" || e.End == "" {
		return ErrEmptyVertexID
	}
	if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return fmt.Errorf("edge %s weight %v: %w", e.Key(), e.Weight, ErrBadWeight)
	}

	return nil
}

// linkEdge stores e and links it into adjacency. Caller holds mu and has
// checked for duplicates.
func (g *Graph) linkEdge(e Edge) {
	key := e.Key()
	g.edges[key] = e
	g.edgeOrder = append(g.edgeOrder, key)
	g.adjacency[e.Start] = append(g.adjacency[e.Start], key)
	if !g.directed && e.Start != e.End {
		g.adjacency[e.End] = append(g.adjacency[e.End], key)
	}
}

// unlinkEdge removes e from the catalog and from both endpoints. Caller holds mu.
func (g *Graph) unlinkEdge(e Edge) {
	key := e.Key()
	delete(g.edges, key)
	g.edgeOrder = removeKey(g.edgeOrder, key)
	g.adjacency[e.Start] = removeKey(g.adjacency[e.Start], key)
	if e.End != e.Start {
		g.adjacency[e.End] = removeKey(g.adjacency[e.End], key)
	}
}

// removeKey deletes every occurrence of key, preserving order.
func removeKey(keys []string, key string) []string {
	return slices.DeleteFunc(keys, func(k string) bool { return k == key })
}
