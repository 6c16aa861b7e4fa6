// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/salesman/core"
)

// Dijkstra returns the shortest distance from the source to every vertex of
// g, and the predecessor map when WithReturnPath is set.
//
// Steps:
//  1. Validate options and g.
//  2. Every distance starts at +Inf, the source at 0; push the source.
//  3. Pop the closest unsettled vertex, stop once it is past MaxDistance,
//     settle it and relax its outgoing edges.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("Dijkstra(%q): %w", cfg.Source, ErrVertexNotFound)
	}

	vertices := g.AllVertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		r.dist[v.ID] = math.Inf(1)
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, &nodeItem{id: cfg.Source})

	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every edge incident to u with its own weight, so parallel
// and antiparallel edges all compete.
func (r *runner) relax(u string) error {
	edges, err := r.g.IncidentEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %q: %w", u, err)
	}
	for _, e := range edges {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.Other(u)
		d := r.dist[u] + e.Weight
		if d > r.options.MaxDistance || d >= r.dist[v] {
			continue
		}
		r.dist[v] = d
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: d})
	}

	return nil
}

type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap on dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
