// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// Select returns the sub-catalogue of one delivery run: the depot first,
// then every stop in request order, and the edges of ds whose endpoints are
// both selected, in file order. Repeated stops and the depot among the stops
// are ignored.
//
// Errors: ErrUnknownVertex for an ID with no record, ErrNoStops when nothing
// but the depot remains.
func (ds *Dataset) Select(depot int, stops []int) (*Dataset, error) {
	d, ok := ds.Vertex(depot)
	if !ok {
		return nil, fmt.Errorf("depot: %w: %d", ErrUnknownVertex, depot)
	}

	out := &Dataset{Vertices: []VertexRecord{d}}
	chosen := map[int]bool{depot: true}
	for _, id := range stops {
		if chosen[id] {
			continue
		}
		v, ok := ds.Vertex(id)
		if !ok {
			return nil, fmt.Errorf("stop: %w: %d", ErrUnknownVertex, id)
		}
		chosen[id] = true
		out.Vertices = append(out.Vertices, v)
	}
	if len(out.Vertices) < 2 {
		return nil, ErrNoStops
	}

	for _, e := range ds.Edges {
		if chosen[e.SourceNode] && chosen[e.DestinationNode] {
			out.Edges = append(out.Edges, e)
		}
	}

	return out, nil
}

// IDs returns the vertex IDs in record order.
func (ds *Dataset) IDs() []int {
	out := make([]int, len(ds.Vertices))
	for i, v := range ds.Vertices {
		out[i] = v.ID
	}

	return out
}
