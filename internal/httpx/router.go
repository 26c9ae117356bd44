// Package httpx exposes the engine over HTTP: one scoring endpoint plus
// read-back routes for persisted runs.
package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"campaign-budget-engine/internal/auth"
	"campaign-budget-engine/internal/engine"
	"campaign-budget-engine/internal/observability"
	"campaign-budget-engine/internal/storage"
)

// Server holds the handler dependencies.
type Server struct {
	logger    *log.Logger
	engine    *engine.Engine
	persister *engine.Persister
	resolver  *auth.Resolver
	datasets  storage.DatasetStore
	recs      storage.RecommendationStore
}

// NewServer wires the handler dependencies. persister, resolver and the
// stores may be nil for a compute-only deployment.
func NewServer(
	logger *log.Logger,
	eng *engine.Engine,
	persister *engine.Persister,
	resolver *auth.Resolver,
	datasets storage.DatasetStore,
	recs storage.RecommendationStore,
) *Server {
	return &Server{
		logger:    logger,
		engine:    eng,
		persister: persister,
		resolver:  resolver,
		datasets:  datasets,
		recs:      recs,
	}
}

// Router builds the chi router with all middleware and routes.
func (s *Server) Router() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestID)
	mux.Use(Logger(s.logger))
	mux.Use(CORS)
	mux.Use(Recoverer(s.logger))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})
	mux.Method(http.MethodGet, "/metrics", observability.Handler())

	mux.Post("/v1/recommendations", s.handleRecommendations)
	mux.Get("/v1/datasets/{id}", s.handleGetDataset)
	mux.Get("/v1/datasets/{id}/recommendations", s.handleGetDatasetRecommendations)

	return mux
}

// recommendationsResponse is the success body for POST /v1/recommendations.
// The persistence fields appear only when persistence was attempted.
type recommendationsResponse struct {
	Recommendations any    `json:"recommendations"`
	DatasetID       string `json:"datasetId,omitempty"`
	DatasetError    string `json:"datasetError,omitempty"`
	RecError        string `json:"recError,omitempty"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req engine.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "rows are required")
		return
	}

	res, err := s.engine.Run(&req)
	if err != nil {
		if errors.Is(err, engine.ErrNoRows) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		observability.RecordEngineRun("error", time.Since(start).Seconds())
		return
	}
	observability.RecordEngineRun("ok", time.Since(start).Seconds())
	for _, rec := range res.Recommendations {
		observability.RecordRecommendation(string(rec.Action), rec.StopLoss)
	}

	resp := recommendationsResponse{Recommendations: res.Recommendations}

	var userID string
	if s.resolver != nil {
		userID = s.resolver.ResolveUser(r.Header.Get("Authorization"))
	}
	if out := s.persister.Persist(r.Context(), userID, &req, res); out != nil {
		resp.DatasetID = out.DatasetID
		if out.DatasetErr != nil {
			resp.DatasetError = out.DatasetErr.Error()
			observability.RecordPersistenceError("datasets")
		} else {
			observability.DefaultMetrics.DatasetsPersisted.Inc()
		}
		if out.RecErr != nil {
			resp.RecError = out.RecErr.Error()
			observability.RecordPersistenceError("recommendations")
		}
		if out.RowErr != nil {
			observability.RecordPersistenceError("performance_rows")
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	if s.datasets == nil {
		writeError(w, http.StatusNotFound, "persistence not configured")
		return
	}

	id := chi.URLParam(r, "id")
	ds, err := s.datasets.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "dataset not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, datasetView(ds))
}

func (s *Server) handleGetDatasetRecommendations(w http.ResponseWriter, r *http.Request) {
	if s.recs == nil {
		writeError(w, http.StatusNotFound, "persistence not configured")
		return
	}

	id := chi.URLParam(r, "id")
	recs, err := s.recs.GetByDatasetID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
