package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/chemi/internal/processor"
	"github.com/MikeSquared-Agency/chemi/internal/store"
)

type Server struct {
	router *chi.Mux
	port   int
	proc   *processor.Processor
	store  *store.Store
}

func NewServer(port int, apiToken string, proc *processor.Processor, db *store.Store) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		proc:   proc,
		store:  db,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/chemi/status", s.status)

	router.Route("/api/v1/analyses", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Post("/", s.createAnalysis)
		r.Get("/{id}", s.getAnalysis)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"agent":  "chemi",
		"status": "ready",
	})
}
