// Package server exposes the concierge pipeline over HTTP: the concierge
// endpoint itself plus health and metrics.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goodfin/concierge/internal/concierge"
)

// Server wires the pipeline to the HTTP boundary.
type Server struct {
	pipeline *concierge.Pipeline
	metrics  *concierge.Metrics
	router   chi.Router
}

// New builds the server and its routes. allowedOrigins feeds the CORS
// middleware (the dashboard frontend calls from the browser); gatherer
// backs the metrics endpoint and may be nil to use the default registry.
func New(pipeline *concierge.Pipeline, metrics *concierge.Metrics, allowedOrigins []string, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		pipeline: pipeline,
		metrics:  metrics,
	}

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Post("/api/concierge", s.handleConcierge)

	s.router = r
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}
