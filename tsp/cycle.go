// SPDX-License-Identifier: MIT

package tsp

import (
	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/matrix"
)

// ClosesCycle reports whether the start of path is among the neighbors of
// its last vertex. It does not check that path visits every vertex.
// An empty path never closes.
func ClosesCycle(g *core.Graph, path []string) bool {
	if g == nil || len(path) == 0 {
		return false
	}

	return g.HasNeighbor(path[len(path)-1], path[0])
}

// IsHamiltonianCycle is ClosesCycle plus the requirement that path covers
// every vertex of g.
func IsHamiltonianCycle(g *core.Graph, path []string) bool {
	return ClosesCycle(g, path) && len(path) == g.VertexCount()
}

// PathWeight sums am's cells along consecutive vertices of path. When closed
// is true the cell from the last vertex back to the first is added too.
// A missing leg contributes matrix.NoEdge, making the sum +Inf.
//
// Errors: matrix.ErrUnknownVertex for a key absent from am.
// Complexity: O(len(path)).
func PathWeight(am *matrix.AdjacencyMatrix, path []string, closed bool) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		w, err := am.Weight(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		total += w
	}
	if closed && len(path) > 0 {
		w, err := am.Weight(path[len(path)-1], path[0])
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
