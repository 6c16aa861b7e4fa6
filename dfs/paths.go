// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// frame is one level of the explicit stack.
type frame struct {
	idx  int   // dense index of the vertex
	next []int // unvisited neighbors at push time, adjacency order
	pos  int   // next entry of next to expand
}

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	opts      Options
	keys      []string // dense index → vertex ID
	neighbors [][]int  // dense index → neighbor indices, duplicates kept
	visited   []bool   // on-path flags by dense index
	stack     []frame
	path      []string
	stats     Stats
}

// Walk enumerates every simple path of g that starts at start and hands each
// complete one to visit, in deterministic order.
//
// Steps:
//  1. Validate g and start; apply options.
//  2. Snapshot vertex indices and neighbor lists once.
//  3. Push start; loop: expand the top frame's next neighbor, or, when it has
//     none left, report the path if the frame never had any and pop it.
//
// Returns the enumeration Stats, which are valid even when an error aborts
// the walk.
func Walk(g *core.Graph, start string, visit Visitor, opts ...Option) (Stats, error) {
	// 1. Validate input graph and start
	if g == nil {
		return Stats{}, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return Stats{}, fmt.Errorf("Walk(%q): %w", start, ErrStartVertexNotFound)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Snapshot
	w, err := newPathWalker(g, o)
	if err != nil {
		return Stats{}, err
	}

	// 3. Enumerate
	err = w.run(w.indexOf(start), visit)
	if errors.Is(err, ErrStop) {
		err = nil
	}

	return w.stats, err
}

// AllPaths collects every complete simple path from start.
// Each returned path is an independent slice.
func AllPaths(g *core.Graph, start string, opts ...Option) ([][]string, error) {
	var out [][]string
	_, err := Walk(g, start, func(path []string) error {
		out = append(out, append([]string(nil), path...))

		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func newPathWalker(g *core.Graph, o Options) (*pathWalker, error) {
	vertices := g.AllVertices()
	index := make(map[string]int, len(vertices))
	keys := make([]string, len(vertices))
	for i, v := range vertices {
		index[v.ID] = i
		keys[i] = v.ID
	}

	neighbors := make([][]int, len(vertices))
	for i, key := range keys {
		nbs, err := g.Neighbors(key)
		if err != nil {
			return nil, fmt.Errorf("dfs: Neighbors(%q): %w", key, err)
		}
		row := make([]int, 0, len(nbs))
		for _, nb := range nbs {
			j, ok := index[nb]
			if !ok {
				return nil, fmt.Errorf("dfs: neighbor %q of %q: %w", nb, key, core.ErrVertexNotFound)
			}
			row = append(row, j)
		}
		neighbors[i] = row
	}

	return &pathWalker{
		opts:      o,
		keys:      keys,
		neighbors: neighbors,
		visited:   make([]bool, len(keys)),
		stack:     make([]frame, 0, len(keys)),
		path:      make([]string, 0, len(keys)),
	}, nil
}

func (w *pathWalker) indexOf(key string) int {
	for i, k := range w.keys {
		if k == key {
			return i
		}
	}

	return -1
}

// push marks idx as on-path and records its unvisited neighbors.
func (w *pathWalker) push(idx int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[idx] = true
	w.path = append(w.path, w.keys[idx])

	next := make([]int, 0, len(w.neighbors[idx]))
	for _, j := range w.neighbors[idx] {
		if !w.visited[j] {
			next = append(next, j)
		}
	}
	w.stack = append(w.stack, frame{idx: idx, next: next})

	w.stats.Expanded++
	if len(w.stack) > w.stats.MaxDepth {
		w.stats.MaxDepth = len(w.stack)
	}

	if w.opts.OnExpand != nil {
		if err := w.opts.OnExpand(w.keys[idx], len(w.stack)); err != nil {
			return fmt.Errorf("dfs: OnExpand hook for %q: %w", w.keys[idx], err)
		}
	}

	return nil
}

func (w *pathWalker) pop() {
	top := w.stack[len(w.stack)-1]
	w.visited[top.idx] = false
	w.path = w.path[:len(w.path)-1]
	w.stack = w.stack[:len(w.stack)-1]
}

func (w *pathWalker) run(start int, visit Visitor) error {
	if err := w.push(start); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		if top.pos < len(top.next) {
			j := top.next[top.pos]
			top.pos++
			if err := w.push(j); err != nil {
				return err
			}

			continue
		}

		// leaf: no unvisited neighbor when the frame was pushed
		if len(top.next) == 0 {
			if w.opts.MaxPaths > 0 && w.stats.Paths >= w.opts.MaxPaths {
				return fmt.Errorf("dfs: more than %d paths: %w", w.opts.MaxPaths, ErrPathLimit)
			}
			w.stats.Paths++
			if visit != nil {
				if err := visit(w.path); err != nil {
					return err
				}
			}
		}
		w.pop()
	}

	return nil
}
