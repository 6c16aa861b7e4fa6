// SPDX-License-Identifier: MIT

// Package planner turns a stop selection into a delivery plan: it selects
// the stops, builds their graph, runs the exhaustive solver and prepares the
// route for a map renderer.
package planner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/salesman/bfs"
	"github.com/katalvlaran/salesman/config"
	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/dataset"
	"github.com/katalvlaran/salesman/dijkstra"
	"github.com/katalvlaran/salesman/geo"
	"github.com/katalvlaran/salesman/metrics"
	"github.com/katalvlaran/salesman/route"
	"github.com/katalvlaran/salesman/tsp"
)

// Outcome labels how a plan was produced.
type Outcome string

const (
	// OutcomeTour is a plan found by the solver.
	OutcomeTour Outcome = "tour"
	// OutcomeDirect is a single stop served straight from the depot.
	OutcomeDirect Outcome = "direct"
	// OutcomeEmpty means no round trip connects the selection.
	OutcomeEmpty Outcome = "empty"
)

// Plan is one solved delivery run.
type Plan struct {
	ID          string        `json:"id"`
	Outcome     Outcome       `json:"outcome"`
	Stops       []core.Vertex `json:"stops"`
	Weight      float64       `json:"weight"`
	CycleWeight float64       `json:"cycle_weight"`
	Paths       int           `json:"paths"`
	Candidates  int           `json:"candidates"`
	Route       *route.Route  `json:"route,omitempty"`
	Unreachable []string      `json:"unreachable,omitempty"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// Empty reports whether the plan has no stops.
func (p Plan) Empty() bool { return p.Outcome == OutcomeEmpty }

// Planner serves plans over one stop catalogue. It is safe for concurrent
// use: every plan builds its own graph.
type Planner struct {
	ds    *dataset.Dataset
	cfg   config.Config
	index *geo.Index
	log   *zap.Logger
}

// New validates ds, indexes it for nearest-stop lookups and returns a
// Planner.
func New(ds *dataset.Dataset, cfg config.Config, log *zap.Logger) (*Planner, error) {
	if err := dataset.Validate(ds); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	if _, ok := ds.Vertex(cfg.Route.Depot); !ok {
		return nil, fmt.Errorf("planner: depot: %w: %d", dataset.ErrUnknownVertex, cfg.Route.Depot)
	}
	if log == nil {
		log = zap.NewNop()
	}

	index := geo.NewIndex()
	for _, v := range ds.Vertices {
		index.Insert(v.Key(), geo.NewPoint(v.Lat, v.Lng))
	}
	metrics.DatasetVertices.Set(float64(len(ds.Vertices)))

	return &Planner{ds: ds, cfg: cfg, index: index, log: log}, nil
}

// Depot returns the depot ID.
func (p *Planner) Depot() int { return p.cfg.Route.Depot }

// Catalogue lists the pickable stops.
func (p *Planner) Catalogue() []dataset.CatalogueEntry {
	return p.ds.Catalogue(p.cfg.Route.Depot)
}

// DepotDistances returns the shortest network distance from the depot to
// every stop of the catalogue. Stops the depot cannot reach map to +Inf.
func (p *Planner) DepotDistances() (map[int]float64, error) {
	g, err := dataset.BuildGraph(p.ds,
		dataset.WithDirected(p.cfg.Dataset.Directed),
		dataset.WithGeodesicWeights(p.cfg.Dataset.GeodesicWeights),
	)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	depot, _ := p.ds.Vertex(p.cfg.Route.Depot)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(depot.Key()))
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	out := make(map[int]float64, len(dist))
	for _, v := range p.ds.Vertices {
		if v.ID != depot.ID {
			out[v.ID] = dist[v.Key()]
		}
	}

	return out, nil
}

// Nearest returns the stop closest to q and its distance in meters.
func (p *Planner) Nearest(q geo.Point) (dataset.VertexRecord, float64, error) {
	key, dist, err := p.index.Nearest(q)
	if err != nil {
		return dataset.VertexRecord{}, 0, fmt.Errorf("planner: %w", err)
	}
	id, err := strconv.Atoi(key)
	if err != nil {
		return dataset.VertexRecord{}, 0, fmt.Errorf("planner: vertex key %q: %w", key, err)
	}
	v, _ := p.ds.Vertex(id)

	return v, dist, nil
}

// Plan solves the round trip from the depot through stops.
//
// Steps:
//  1. Select the depot and stops (dataset.Select).
//  2. Build the selection's graph.
//  3. Exactly one stop: serve it directly, no search.
//  4. Hamiltonian mode: stops cut off from the depot in either direction
//     make the plan empty without a search.
//  5. Otherwise run tsp.Solve from the depot with the configured options.
//  6. Attach the renderer route unless the tour is empty.
//
// An empty tour is a plan with OutcomeEmpty, not an error.
func (p *Planner) Plan(ctx context.Context, stops []int) (Plan, error) {
	started := time.Now()
	plan, err := p.plan(ctx, stops)
	plan.Elapsed = time.Since(started)

	if err != nil {
		metrics.PlansTotal.WithLabelValues("error").Inc()
		p.log.Warn("plan failed", zap.Ints("stops", stops), zap.Error(err))

		return Plan{}, err
	}
	metrics.PlansTotal.WithLabelValues(string(plan.Outcome)).Inc()
	p.log.Info("plan ready",
		zap.String("plan_id", plan.ID),
		zap.String("outcome", string(plan.Outcome)),
		zap.Int("stops", len(plan.Stops)),
		zap.Float64("weight", plan.Weight),
		zap.Int("paths", plan.Paths),
		zap.Duration("elapsed", plan.Elapsed),
	)

	return plan, nil
}

func (p *Planner) plan(ctx context.Context, stops []int) (Plan, error) {
	plan := Plan{ID: uuid.NewString()}

	// 1. Select
	sub, err := p.ds.Select(p.cfg.Route.Depot, stops)
	if err != nil {
		return plan, fmt.Errorf("planner: %w", err)
	}

	// 2. Build
	g, err := dataset.BuildGraph(sub,
		dataset.WithDirected(p.cfg.Dataset.Directed),
		dataset.WithGeodesicWeights(p.cfg.Dataset.GeodesicWeights),
	)
	if err != nil {
		return plan, fmt.Errorf("planner: %w", err)
	}
	vertices := g.AllVertices()

	// 3. Direct leg
	if len(vertices) == 2 {
		plan.Outcome = OutcomeDirect
		plan.Stops = vertices
		if e, ok := g.FindEdge(vertices[0].ID, vertices[1].ID); ok {
			plan.Weight = e.Weight
			plan.CycleWeight = e.Weight
		}
		if back, ok := g.FindEdge(vertices[1].ID, vertices[0].ID); ok {
			plan.CycleWeight = plan.Weight + back.Weight
		}

		return p.withRoute(plan)
	}

	// 4. Reachability
	if p.cfg.Solver.Hamiltonian {
		cut, err := bfs.Unreachable(ctx, g, vertices[0].ID)
		if err != nil {
			return plan, fmt.Errorf("planner: %w", err)
		}
		if len(cut) > 0 {
			plan.Outcome = OutcomeEmpty
			plan.Unreachable = cut

			return plan, nil
		}
	}

	// 5. Solve
	solveStarted := time.Now()
	tour, err := tsp.Solve(g,
		tsp.WithContext(ctx),
		tsp.WithStart(vertices[0].ID),
		tsp.WithClosingEdge(p.cfg.Solver.ClosingEdge),
		tsp.WithHamiltonian(p.cfg.Solver.Hamiltonian),
		tsp.WithMaxVertices(p.cfg.Solver.MaxVertices),
		tsp.WithMaxPaths(p.cfg.Solver.MaxPaths),
	)
	metrics.SolveDuration.Observe(time.Since(solveStarted).Seconds())
	if err != nil {
		return plan, fmt.Errorf("planner: %w", err)
	}
	metrics.PathsEnumerated.Add(float64(tour.Paths))

	plan.Paths = tour.Paths
	plan.Candidates = tour.Candidates
	if tour.Empty() {
		plan.Outcome = OutcomeEmpty

		return plan, nil
	}
	plan.Outcome = OutcomeTour
	plan.Stops = tour.Vertices
	plan.Weight = tour.Weight
	plan.CycleWeight = tour.CycleWeight()

	// 6. Route
	return p.withRoute(plan)
}

func (p *Planner) withRoute(plan Plan) (Plan, error) {
	r, err := route.FromTour(plan.Stops)
	if err != nil {
		return plan, fmt.Errorf("planner: %w", err)
	}
	plan.Route = &r

	return plan, nil
}

// IsClientError reports whether err was caused by the request rather than
// the server: unknown or missing stops, or a selection over the ceiling.
func IsClientError(err error) bool {
	return errors.Is(err, dataset.ErrUnknownVertex) ||
		errors.Is(err, dataset.ErrNoStops) ||
		errors.Is(err, tsp.ErrTooManyVertices)
}
