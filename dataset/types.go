// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/salesman/core"
)

var (
	// ErrUnknownVertex indicates a record or selection refers to a vertex
	// ID that is not in the dataset.
	ErrUnknownVertex = errors.New("dataset: unknown vertex id")

	// ErrDuplicateVertex indicates two vertex records share an ID.
	ErrDuplicateVertex = errors.New("dataset: duplicate vertex id")

	// ErrDuplicateEdge indicates two edge records share a
	// (sourceNode, destinationNode) pair.
	ErrDuplicateEdge = errors.New("dataset: duplicate edge record")

	// ErrNoStops indicates a selection without any stop besides the depot.
	ErrNoStops = errors.New("dataset: no stops selected")

	// ErrUnknownFormat indicates a file extension or format name that has
	// no decoder.
	ErrUnknownFormat = errors.New("dataset: unknown format")
)

// VertexRecord is one stop.
type VertexRecord struct {
	ID   int     `json:"id" yaml:"id" toml:"id" validate:"gte=0"`
	Name string  `json:"name" yaml:"name" toml:"name" validate:"required"`
	Lat  float64 `json:"lat" yaml:"lat" toml:"lat" validate:"latitude"`
	Lng  float64 `json:"lng" yaml:"lng" toml:"lng" validate:"longitude"`
}

// Key returns the graph key of the record.
func (r VertexRecord) Key() string { return strconv.Itoa(r.ID) }

// Vertex converts the record into a core.Vertex.
func (r VertexRecord) Vertex() core.Vertex {
	return core.Vertex{ID: r.Key(), Name: r.Name, Lat: r.Lat, Lng: r.Lng}
}

// Label is the display name: underscores become spaces.
func (r VertexRecord) Label() string {
	return strings.ReplaceAll(r.Name, "_", " ")
}

// EdgeRecord is one leg from SourceNode to DestinationNode.
// A nil Weight means the weight was omitted.
type EdgeRecord struct {
	SourceNode      int      `json:"sourceNode" yaml:"sourceNode" toml:"sourceNode" validate:"gte=0"`
	DestinationNode int      `json:"destinationNode" yaml:"destinationNode" toml:"destinationNode" validate:"gte=0"`
	Weight          *float64 `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty" validate:"omitempty,gte=0"`
}

// Dataset is a stop catalogue.
type Dataset struct {
	Vertices []VertexRecord `json:"vertices" yaml:"vertices" toml:"vertices" validate:"required,min=1,dive"`
	Edges    []EdgeRecord   `json:"edges" yaml:"edges" toml:"edges" validate:"dive"`
}

// Vertex returns the record with the given ID.
func (ds *Dataset) Vertex(id int) (VertexRecord, bool) {
	for _, v := range ds.Vertices {
		if v.ID == id {
			return v, true
		}
	}

	return VertexRecord{}, false
}

// CatalogueEntry is one pickable stop.
type CatalogueEntry struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Catalogue lists every stop except the depot, in file order, with
// display labels.
func (ds *Dataset) Catalogue(depot int) []CatalogueEntry {
	out := make([]CatalogueEntry, 0, len(ds.Vertices))
	for _, v := range ds.Vertices {
		if v.ID == depot {
			continue
		}
		out = append(out, CatalogueEntry{ID: v.ID, Label: v.Label(), Lat: v.Lat, Lng: v.Lng})
	}

	return out
}
