package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/pingwatch/internal/repo"
)

// Server exposes a read-only view of probe history while a run is active.
type Server struct {
	Logger *zap.Logger
	Store  repo.ProbeStore
}

func NewServer(l *zap.Logger, store repo.ProbeStore) *Server {
	return &Server{Logger: l, Store: store}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/results", s.handleResults)
	r.Get("/api/summary", s.handleSummary)

	return r
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := s.Store.Recent(r.Context(), limit)
	if err != nil {
		s.Logger.Warn("results_query_error", zap.Error(err))
		http.Error(w, "query error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(records)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("target")
	if target == "" {
		http.Error(w, "missing target", http.StatusBadRequest)
		return
	}

	sum, err := s.Store.Summary(r.Context(), target)
	if err != nil {
		s.Logger.Warn("summary_query_error", zap.String("target", target), zap.Error(err))
		http.Error(w, "query error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sum)
}
