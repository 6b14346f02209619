// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the ranking and classification pipeline over HTTP.
package server

import (
	"fmt"
	"net/http"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pubengine/internal/classify"
	"github.com/pdiddy/pubengine/internal/rank"
	"github.com/pdiddy/pubengine/pkg/types"
)

// Server wires the ranker, result cache and classifier registry behind a
// ServeMux. Training runs on a dedicated worker pool so it never stalls
// request handling.
type Server struct {
	cfg      types.Config
	log      *logrus.Logger
	ranker   *rank.Ranker
	cache    *rank.Cache
	registry *classify.Registry
	pool     *ants.Pool
	mux      *http.ServeMux
}

// New builds a server around an already-indexed ranker and a classifier
// registry.
func New(cfg types.Config, log *logrus.Logger, ranker *rank.Ranker, cache *rank.Cache, registry *classify.Registry) (*Server, error) {
	workers := cfg.Server.TrainWorkers
	if workers <= 0 {
		workers = 2
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("creating training pool: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		log:      log,
		ranker:   ranker,
		cache:    cache,
		registry: registry,
		pool:     pool,
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/search", s.handleSearch)
	s.mux.HandleFunc("/classify", s.handleClassify)
	s.mux.HandleFunc("/model-info", s.handleModelInfo)
	s.mux.HandleFunc("/train-models", s.handleTrainModels)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.withLogging(s.withCORS(s.mux))
}

// WarmUp submits a training run for the default model type to the pool so
// the first classify request does not pay the training cost.
func (s *Server) WarmUp() {
	err := s.pool.Submit(func() {
		if _, err := s.registry.Get(""); err != nil {
			s.log.WithError(err).Warn("warm-up training failed")
		}
	})
	if err != nil {
		s.log.WithError(err).Warn("could not submit warm-up training")
	}
}

// Start serves HTTP on the configured address, blocking until the listener
// fails.
func (s *Server) Start() error {
	s.log.WithField("addr", s.cfg.Server.Addr).Info("starting HTTP server")
	return http.ListenAndServe(s.cfg.Server.Addr, s.Handler())
}

// Close releases the training pool.
func (s *Server) Close() {
	s.pool.Release()
}
