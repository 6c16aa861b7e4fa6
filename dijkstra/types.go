// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySource is returned when no Source option was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound is returned when the source is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance is the panic value of WithMaxDistance(d < 0).
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold is the panic value of WithInfEdgeThreshold(t <= 0).
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo for an unreached destination.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures one run.
type Options struct {
	Source           string  // source vertex ID
	ReturnPath       bool    // return the predecessor map
	MaxDistance      float64 // vertices beyond this distance are not settled
	InfEdgeThreshold float64 // edges with weight >= threshold are skipped
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns options with no distance cap and no impassable
// threshold.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Source sets the source vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration. Panics if d < 0.
func WithMaxDistance(d float64) Option {
	if d < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = d }
}

// WithInfEdgeThreshold marks heavy edges impassable. Panics if t <= 0.
func WithInfEdgeThreshold(t float64) Option {
	if t <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfEdgeThreshold = t }
}

// PathTo rebuilds the source→dest path from a predecessor map.
func PathTo(prev map[string]string, source, dest string) ([]string, error) {
	path := []string{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil, fmt.Errorf("PathTo(%q→%q): %w", source, dest, ErrNoPath)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
