// SPDX-License-Identifier: MIT

// Package server exposes the planner over HTTP.
//
// Routes:
//
//	POST /api/tours              plan a round trip through the given stops
//	GET  /api/vertices           pickable stops (depot excluded)
//	GET  /api/vertices/nearest   stop closest to ?lat=&lng=
//	GET  /healthz                liveness
//	GET  /metrics                Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/salesman/config"
	"github.com/katalvlaran/salesman/planner"
	"github.com/katalvlaran/salesman/validation"
)

const shutdownTimeout = 10 * time.Second

// API holds the HTTP handlers and their dependencies.
type API struct {
	planner  *planner.Planner
	cfg      config.HTTP
	log      *zap.Logger
	validate *validation.Validator
}

// New returns an API serving p.
func New(p *planner.Planner, cfg config.HTTP, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}

	return &API{planner: p, cfg: cfg, log: log, validate: validation.Default()}
}

// Handler builds the router wrapped in the middleware chain.
func (api *API) Handler() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(api.notFoundResponse)

	router.POST("/api/tours", instrument("/api/tours", api.createTour))
	router.GET("/api/vertices", instrument("/api/vertices", api.listVertices))
	router.GET("/api/vertices/nearest", instrument("/api/vertices/nearest", api.nearestVertex))
	router.GET("/healthz", api.healthz)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})

	var limiter *rate.Limiter
	if api.cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(api.cfg.RateLimit), max(api.cfg.RateBurst, 1))
	}

	return alice.New(
		corsHandler.Handler,
		withRequestID,
		api.recoverPanic,
		api.logRequests,
		api.limit(limiter),
	).Then(router)
}

// Run serves until ctx is done, then shuts down gracefully.
func (api *API) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", api.cfg.Port),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      api.cfg.Timeout + 5*time.Second,
		IdleTimeout:       time.Minute,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		api.log.Info("API listening", zap.Int("port", api.cfg.Port))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		api.log.Info("API shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
