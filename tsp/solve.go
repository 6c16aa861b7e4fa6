// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/dfs"
	"github.com/katalvlaran/salesman/matrix"
)

// Solve returns the minimum-weight cycle through the start vertex of g.
//
// Steps:
//  1. Init: validate g, enforce MaxVertices, resolve the start vertex and
//     build the adjacency matrix once.
//  2. Enumerate: dfs.Walk streams every simple path from the start.
//  3. Filter: ClosesCycle (IsHamiltonianCycle when Hamiltonian is set).
//  4. Score & select: PathWeight; a candidate replaces the best only when
//     strictly lighter, so the earliest-enumerated path wins ties.
//  5. Done: the best path as a Tour, or an empty Tour when nothing passed.
//
// Errors: ErrGraphNil, ErrTooManyVertices, ErrStartVertexNotFound,
// dfs.ErrPathLimit, and the context error on cancellation.
func Solve(g *core.Graph, opts ...Option) (Tour, error) {
	if g == nil {
		return Tour{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Init
	n := g.VertexCount()
	if o.MaxVertices > 0 && n > o.MaxVertices {
		return Tour{}, fmt.Errorf("tsp: %d vertices, limit %d: %w", n, o.MaxVertices, ErrTooManyVertices)
	}
	if n == 0 {
		if o.Start != "" {
			return Tour{}, fmt.Errorf("tsp: start %q: %w", o.Start, ErrStartVertexNotFound)
		}

		return Tour{}, nil
	}
	start := o.Start
	if start == "" {
		start = g.AllVertices()[0].ID
	} else if !g.HasVertex(start) {
		return Tour{}, fmt.Errorf("tsp: start %q: %w", start, ErrStartVertexNotFound)
	}

	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return Tour{}, fmt.Errorf("tsp: %w", err)
	}

	// 2-4. Enumerate, filter, score and select
	var (
		best       []string
		bestWeight float64
		candidates int
	)
	accept := ClosesCycle
	if o.Hamiltonian {
		accept = IsHamiltonianCycle
	}
	stats, err := dfs.Walk(g, start, func(path []string) error {
		if !accept(g, path) {
			return nil
		}
		candidates++
		w, err := PathWeight(am, path, o.ClosingEdge)
		if err != nil {
			return err
		}
		if best == nil || w < bestWeight {
			best = append(best[:0], path...)
			bestWeight = w
		}

		return nil
	}, dfs.WithContext(o.Ctx), dfs.WithMaxPaths(o.MaxPaths))
	if err != nil {
		return Tour{}, fmt.Errorf("tsp: %w", err)
	}

	// 5. Done
	tour := Tour{
		Closed:     o.ClosingEdge,
		Paths:      stats.Paths,
		Candidates: candidates,
	}
	if best == nil {
		return tour, nil
	}

	tour.Keys = best
	tour.Weight = bestWeight
	tour.ClosingWeight, err = am.Weight(best[len(best)-1], best[0])
	if err != nil {
		return Tour{}, fmt.Errorf("tsp: %w", err)
	}
	tour.Vertices = make([]core.Vertex, 0, len(best))
	for _, key := range best {
		v, err := g.Vertex(key)
		if err != nil {
			return Tour{}, fmt.Errorf("tsp: %w", err)
		}
		tour.Vertices = append(tour.Vertices, v)
	}

	return tour, nil
}
