package api

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rinksim/skipbot/internal/engine"
	"github.com/rinksim/skipbot/internal/scan"
	"github.com/rinksim/skipbot/internal/store"
)

// Server exposes one engine instance over HTTP. The db may be nil, in
// which case decisions are not recorded and the history endpoints 404.
type Server struct {
	eng     *engine.Engine
	scanner *scan.Scanner
	db      store.DB
	logger  *log.Logger
}

// NewServer wires an engine, scanner and optional store together.
func NewServer(eng *engine.Engine, db store.DB) *Server {
	return &Server{
		eng:     eng,
		scanner: scan.NewScanner(),
		db:      db,
		logger:  log.New(os.Stdout, "[API] ", log.LstdFlags),
	}
}

// Routes builds the router with the standard middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/ws/sweep", s.handleSweepWS)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/decide", s.handleDecide)
		r.Post("/sweep", s.handleSweep)
		r.Post("/scan", s.handleScan)
		r.Get("/difficulties", s.handleListDifficulties)
		r.Put("/difficulty", s.handleSetDifficulty)
		r.Get("/matches/{matchID}/decisions", s.handleMatchDecisions)
	})

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, errType, message string, context map[string]any) {
	s.writeJSON(w, status, APIError{Type: errType, Message: message, Context: context})
}
