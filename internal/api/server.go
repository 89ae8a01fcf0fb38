// Package api implements the DrawTruss HTTP API.
//
// The server exposes the vectorization pipeline and graph store over
// REST:
//
//	POST   /api/v1/vectorize    vectorize a sketch, optionally save it
//	GET    /api/v1/graphs       list saved graphs
//	GET    /api/v1/graphs/{id}  fetch a saved graph (or a rendered artifact)
//	DELETE /api/v1/graphs/{id}  delete a saved graph
//	GET    /healthz             liveness probe
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/soerensenkarl/DrawTruss/pkg/pipeline"
	"github.com/soerensenkarl/DrawTruss/pkg/store"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	runner *pipeline.Runner
	store  store.GraphStore
	logger *log.Logger
}

// NewServer creates a server. A nil store disables the persistence
// endpoints (vectorize still works); a nil logger falls back to the
// default logger.
func NewServer(runner *pipeline.Runner, graphs store.GraphStore, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner: runner,
		store:  graphs,
		logger: logger,
	}
}

// Handler configures all routes and middleware.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RealIP)
	router.Use(requestID)
	router.Use(requestLogger(s.logger))
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", s.healthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/vectorize", s.handleVectorize)
		r.Route("/graphs", func(r chi.Router) {
			r.Get("/", s.handleListGraphs)
			r.Get("/{graphID}", s.handleGetGraph)
			r.Delete("/{graphID}", s.handleDeleteGraph)
		})
	})

	return router
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
