package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/basketlab/copurchase/pkg/category"
	"github.com/basketlab/copurchase/pkg/graph"
	gqlpkg "github.com/basketlab/copurchase/pkg/graphql"
	"github.com/basketlab/copurchase/pkg/logging"
	"github.com/basketlab/copurchase/pkg/metrics"
)

// NewServer creates an API server over the given store and category index.
func NewServer(store *graph.Store, index *category.Index, registry *metrics.Registry, logger logging.Logger, port int) (*Server, error) {
	schema, err := gqlpkg.GenerateSchema(store, index)
	if err != nil {
		return nil, fmt.Errorf("generate graphql schema: %w", err)
	}

	return &Server{
		store:          store,
		index:          index,
		graphqlHandler: gqlpkg.NewGraphQLHandler(schema),
		registry:       registry,
		logger:         logger.With(logging.Component("api")),
		startTime:      time.Now(),
		version:        "1.0.0",
		port:           port,
	}, nil
}

// Handler returns the fully wired route tree, middleware included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry.PrometheusRegistry(), promhttp.HandlerOpts{}))

	mux.HandleFunc("/co-purchases", s.handleCoPurchases)
	mux.HandleFunc("/top-pairs", s.handleTopPairs)
	mux.HandleFunc("/relation", s.handleRelation)
	mux.HandleFunc("/category", s.handleCategory)
	mux.HandleFunc("/recommend", s.handleRecommend)
	mux.HandleFunc("/visualization", s.handleVisualization)

	mux.Handle("/graphql", s.graphqlHandler)

	return s.requestIDMiddleware(s.loggingMiddleware(s.corsMiddleware(mux)))
}

// Start runs the HTTP server until it fails or the process exits.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", logging.String("addr", addr))

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.store.Stats()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		Version:      s.version,
		Uptime:       time.Since(s.startTime).String(),
		Timestamp:    time.Now(),
		Items:        stats.ItemCount,
		Pairs:        stats.PairCount,
		Transactions: stats.TransactionCount,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
