// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"errors"

	"github.com/katalvlaran/salesman/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Solve.
	ErrGraphNil = errors.New("tsp: graph is nil")

	// ErrStartVertexNotFound indicates that the requested start vertex does
	// not exist in the graph.
	ErrStartVertexNotFound = errors.New("tsp: start vertex not found")

	// ErrTooManyVertices indicates the graph exceeds the configured
	// exhaustive-search ceiling.
	ErrTooManyVertices = errors.New("tsp: too many vertices for exhaustive search")
)

// DefaultMaxVertices is the largest graph Solve accepts by default.
// Ten vertices mean at most 9! = 362880 enumerated paths.
const DefaultMaxVertices = 10

// Tour is the outcome of Solve.
type Tour struct {
	// Vertices holds the full vertex records, start first.
	Vertices []core.Vertex

	// Keys holds the vertex IDs in tour order.
	Keys []string

	// Weight is the selection score: the sum of the path's edges, plus the
	// closing edge when Closed is true.
	Weight float64

	// ClosingWeight is the weight of the edge from the last vertex back to
	// the start.
	ClosingWeight float64

	// Closed reports whether Weight includes ClosingWeight.
	Closed bool

	// Paths is the number of simple paths enumerated.
	Paths int

	// Candidates is the number of paths that passed the cycle filter.
	Candidates int
}

// Empty reports whether no cycle was found.
func (t Tour) Empty() bool { return len(t.Keys) == 0 }

// CycleWeight returns the weight of the full round trip, closing edge included,
// whatever scoring mode selected the tour.
func (t Tour) CycleWeight() float64 {
	if t.Empty() {
		return 0
	}
	if t.Closed {
		return t.Weight
	}

	return t.Weight + t.ClosingWeight
}

// Option configures Solve.
type Option func(*Options)

// Options holds the solver parameters.
type Options struct {
	// Ctx allows cancellation of long enumerations.
	Ctx context.Context

	// Start is the start vertex ID; empty means the first vertex in
	// iteration order.
	Start string

	// ClosingEdge adds the return edge's weight to each candidate's score.
	ClosingEdge bool

	// Hamiltonian rejects cycles that do not visit every vertex.
	Hamiltonian bool

	// MaxVertices is the vertex ceiling; 0 disables it.
	MaxVertices int

	// MaxPaths caps the number of enumerated paths; 0 disables it.
	MaxPaths int
}

// DefaultOptions returns the classic brute-force configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxVertices: DefaultMaxVertices,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart selects the start vertex.
func WithStart(key string) Option {
	return func(o *Options) { o.Start = key }
}

// WithClosingEdge toggles scoring of the edge back to the start.
func WithClosingEdge(on bool) Option {
	return func(o *Options) { o.ClosingEdge = on }
}

// WithHamiltonian toggles the every-vertex requirement on candidates.
func WithHamiltonian(on bool) Option {
	return func(o *Options) { o.Hamiltonian = on }
}

// WithMaxVertices sets the vertex ceiling; n <= 0 disables it.
func WithMaxVertices(n int) Option {
	return func(o *Options) { o.MaxVertices = n }
}

// WithMaxPaths caps the number of enumerated paths; n <= 0 disables it.
func WithMaxPaths(n int) Option {
	return func(o *Options) { o.MaxPaths = n }
}
