package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/processor"
	"github.com/MikeSquared-Agency/betterfriend/internal/suggestion"
)

type analyzeRequest struct {
	Text string `json:"text"`
	Goal string `json:"goal"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "transcript too large")
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	goal, err := analysis.ParseGoal(req.Goal)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := s.proc.Analyze(r.Context(), req.Text, goal, processor.TransportHTTP)
	if err != nil {
		s.logger.Error("analysis failed", "goal", goal, "error", err)
		s.writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	s.writeJSON(w, http.StatusOK, b)
}

func (s *Server) scripts(w http.ResponseWriter, r *http.Request) {
	set, err := suggestion.Scripts(r.URL.Query().Get("style"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, set)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, "telemetry store not configured")
		return
	}
	stats, err := s.store.GoalStats(r.Context())
	if err != nil {
		s.logger.Error("failed to load goal stats", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"goals": stats})
}
