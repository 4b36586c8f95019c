package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MikeSquared-Agency/chemi/internal/analysis"
	"github.com/MikeSquared-Agency/chemi/internal/processor"
)

// AnalyzeRequest is the JSON body of POST /api/v1/analyses. Clients may also
// send the raw transcript as text/plain.
type AnalyzeRequest struct {
	ChatRef string `json:"chat_ref,omitempty"`
	Text    string `json:"text"`
}

// AnalyzeResponse is returned for a successful analysis run.
type AnalyzeResponse struct {
	ID       string             `json:"id"`
	Analysis *analysis.Analysis `json:"analysis"`
}

func (s *Server) createAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
			return
		}
	} else {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("read body: %v", err))
			return
		}
		req.Text = string(body)
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "empty transcript")
		return
	}

	id, a, err := s.proc.Process(r.Context(), req.ChatRef, req.Text)
	if err != nil {
		if errors.Is(err, processor.ErrTooFewMessages) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("analysis failed: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AnalyzeResponse{ID: id.String(), Analysis: a})
}

func (s *Server) getAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	rec, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "analysis not found")
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("fetch analysis: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
