// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/geo"
)

// BuildOptions controls BuildGraph.
type BuildOptions struct {
	// Directed builds a directed graph; the default is undirected.
	Directed bool

	// GeodesicWeights fills omitted weights with the great-circle distance
	// between the endpoints in meters instead of 0.
	GeodesicWeights bool

	// SkipDuplicates drops edges whose key is already present instead of
	// failing with core.ErrDuplicateEdge.
	SkipDuplicates bool
}

// BuildOption configures BuildGraph.
type BuildOption func(*BuildOptions)

// WithDirected selects the graph orientation.
func WithDirected(on bool) BuildOption {
	return func(o *BuildOptions) { o.Directed = on }
}

// WithGeodesicWeights derives omitted weights from coordinates.
func WithGeodesicWeights(on bool) BuildOption {
	return func(o *BuildOptions) { o.GeodesicWeights = on }
}

// WithSkipDuplicates drops duplicate edge keys instead of failing.
func WithSkipDuplicates(on bool) BuildOption {
	return func(o *BuildOptions) { o.SkipDuplicates = on }
}

// BuildGraph turns ds into a graph: every vertex record in file order, then
// every edge record in file order.
//
// Errors: ErrUnknownVertex for an edge endpoint with no record,
// core.ErrDuplicateEdge unless SkipDuplicates, and core validation errors.
func BuildGraph(ds *Dataset, opts ...BuildOption) (*core.Graph, error) {
	var o BuildOptions
	for _, fn := range opts {
		fn(&o)
	}

	g := core.NewGraph(core.WithDirected(o.Directed))
	records := make(map[int]VertexRecord, len(ds.Vertices))
	for _, v := range ds.Vertices {
		records[v.ID] = v
		if err := g.AddVertex(v.Vertex()); err != nil {
			return nil, fmt.Errorf("dataset: vertex %d: %w", v.ID, err)
		}
	}

	for i, rec := range ds.Edges {
		from, ok := records[rec.SourceNode]
		if !ok {
			return nil, fmt.Errorf("edge %d: %w: %d", i, ErrUnknownVertex, rec.SourceNode)
		}
		to, ok := records[rec.DestinationNode]
		if !ok {
			return nil, fmt.Errorf("edge %d: %w: %d", i, ErrUnknownVertex, rec.DestinationNode)
		}

		err := g.AddEdge(core.NewEdge(from.Key(), to.Key(), edgeWeight(rec, from, to, o.GeodesicWeights)))
		if errors.Is(err, core.ErrDuplicateEdge) && o.SkipDuplicates {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: edge %d: %w", i, err)
		}
	}

	return g, nil
}

func edgeWeight(rec EdgeRecord, from, to VertexRecord, geodesic bool) float64 {
	switch {
	case rec.Weight != nil:
		return *rec.Weight
	case geodesic:
		return geo.Distance(geo.NewPoint(from.Lat, from.Lng), geo.NewPoint(to.Lat, to.Lng))
	default:
		return 0
	}
}
