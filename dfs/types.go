// SPDX-License-Identifier: MIT
// Package dfs defines types and options for simple-path enumeration.

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Walk or AllPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrPathLimit indicates that more paths completed than WithMaxPaths allows.
	ErrPathLimit = errors.New("dfs: path limit exceeded")

	// ErrStop may be returned by a Visitor to end the walk early.
	// Walk then returns a nil error.
	ErrStop = errors.New("dfs: stop walk")
)

// Visitor receives every complete path, start vertex first.
// The slice is reused by the walker: it is only valid during the call and
// must be copied to be retained.
type Visitor func(path []string) error

// Stats summarizes one enumeration.
type Stats struct {
	// Paths is the number of complete paths handed to the visitor.
	Paths int
	// Expanded is the number of stack frames pushed.
	Expanded int
	// MaxDepth is the deepest stack reached; never more than the vertex count.
	MaxDepth int
}

// Option configures optional behavior of Walk.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxPaths, if positive, caps the number of complete paths; the next one
	// aborts the walk with ErrPathLimit. Default is 0 (no limit).
	MaxPaths int

	// OnExpand, if non-nil, is invoked with the vertex ID and its depth
	// (start = 1) whenever a frame is pushed.
	// Returning an error aborts traversal with that error.
	OnExpand func(id string, depth int) error
}

// DefaultOptions returns Options with a background context, no path limit
// and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxPaths: 0,
		OnExpand: nil,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths returns an Option that caps the number of complete paths.
// n <= 0 disables the cap.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		o.MaxPaths = n
	}
}

// WithOnExpand returns an Option that installs fn as a pre-order hook.
func WithOnExpand(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}
