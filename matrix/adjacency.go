// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// AdjacencyMatrix wraps a Dense matrix as a graph adjacency representation.
// VertexIndex maps vertex key → row/col in Mat.
// vertexByIndex provides reverse lookup from index to vertex key.
// Mat holds edge weights, with NoEdge for missing edges.
type AdjacencyMatrix struct {
	Mat           *Dense         // underlying adjacency matrix
	VertexIndex   map[string]int // mapping of vertex key to index
	vertexByIndex []string       // reverse lookup by index
}

// NewAdjacencyMatrix constructs an AdjacencyMatrix from a snapshot of g.
//
// Steps:
//  1. Validate g is non-nil.
//  2. Index vertices with g.VertexIndices() (iteration order).
//  3. Fill a |V|×|V| matrix with NoEdge.
//  4. For every vertex u and every neighbor v of u, set
//     cell(u,v) = weight of g.FindEdge(u, v).
//
// Returns ErrGraphNil for a nil graph.
// Complexity: O(V² + Σ deg(u)²) time, O(V²) memory.
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.AllVertices()
	idx := make(map[string]int, len(vertices))
	rev := make([]string, len(vertices))
	for i, v := range vertices {
		idx[v.ID] = i
		rev[i] = v.ID
	}

	mat, err := NewFilledDense(len(vertices), len(vertices), NoEdge)
	if err != nil {
		return nil, err
	}

	for i, u := range rev {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
		}
		for _, v := range neighbors {
			e, ok := g.FindEdge(u, v)
			if !ok {
				continue
			}
			j, ok := idx[v]
			if !ok {
				return nil, fmt.Errorf("NewAdjacencyMatrix: neighbor %q: %w", v, ErrUnknownVertex)
			}
			if err = mat.Set(i, j, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return &AdjacencyMatrix{
		Mat:           mat,
		VertexIndex:   idx,
		vertexByIndex: rev,
	}, nil
}

// VertexCount returns the matrix dimension.
func (am *AdjacencyMatrix) VertexCount() int {
	return len(am.vertexByIndex)
}

// Index returns the row/column of vertex key.
func (am *AdjacencyMatrix) Index(key string) (int, error) {
	i, ok := am.VertexIndex[key]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", key, ErrUnknownVertex)
	}

	return i, nil
}

// VertexID returns the vertex key stored at index i.
func (am *AdjacencyMatrix) VertexID(i int) (string, error) {
	if i < 0 || i >= len(am.vertexByIndex) {
		return "", fmt.Errorf("VertexID(%d): %w", i, ErrOutOfRange)
	}

	return am.vertexByIndex[i], nil
}

// Weight returns cell(from,to): the edge weight, or NoEdge.
func (am *AdjacencyMatrix) Weight(from, to string) (float64, error) {
	i, err := am.Index(from)
	if err != nil {
		return 0, err
	}
	j, err := am.Index(to)
	if err != nil {
		return 0, err
	}

	return am.Mat.At(i, j)
}

// HasEdge reports whether cell(from,to) holds a real weight.
// Unknown keys report false.
func (am *AdjacencyMatrix) HasEdge(from, to string) bool {
	w, err := am.Weight(from, to)

	return err == nil && !IsNoEdge(w)
}

// Neighbors returns the keys of every column with a real weight in row key,
// in index order.
func (am *AdjacencyMatrix) Neighbors(key string) ([]string, error) {
	i, err := am.Index(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, defaultReserve)
	for j, id := range am.vertexByIndex {
		w, _ := am.Mat.At(i, j)
		if !IsNoEdge(w) {
			out = append(out, id)
		}
	}

	return out, nil
}

// defaultReserve is the initial capacity for neighbor slices
const defaultReserve = 8
