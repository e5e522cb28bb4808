package api

import (
	"net/http"

	"github.com/humanparadigm/nice-engine/internal/wire"
)

// ─── POST /api/propagation ────────────────────────────────────────────────────

// handleScorePropagation scores one set of slider values and attaches the
// nearest historical case.
func (s *Server) handleScorePropagation(w http.ResponseWriter, r *http.Request) {
	var req wire.PropagationRequest
	if !decode(w, r, &req) {
		return
	}
	in, err := req.Input()
	if err != nil {
		respondErr(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respondOK(w, r, s.engine.Propagation(in))
}

// ─── POST /api/propagation/similar ────────────────────────────────────────────

func (s *Server) handleSimilarCase(w http.ResponseWriter, r *http.Request) {
	var req wire.PropagationRequest
	if !decode(w, r, &req) {
		return
	}
	in, err := req.Input()
	if err != nil {
		respondErr(w, http.StatusBadRequest, err.Error())
		return
	}

	c, ok := s.engine.SimilarCase(in)
	if !ok {
		respondErr(w, http.StatusNotFound, "no historical cases loaded")
		return
	}
	s.respondOK(w, r, c)
}

// ─── POST /api/propagation/trend ──────────────────────────────────────────────

// handleTrend replays a chronological history of inputs (oldest first) and
// classifies the direction of the decoupling ratio.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	var req wire.TrendRequest
	if !decode(w, r, &req) {
		return
	}
	history, err := req.Inputs()
	if err != nil {
		respondErr(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respondOK(w, r, s.engine.Trend(history))
}

// ─── GET /api/propagation/cases ───────────────────────────────────────────────

func (s *Server) handleListCases(w http.ResponseWriter, r *http.Request) {
	ds := s.engine.Dataset()
	w.Header().Set("X-Dataset-Version", ds.Version)
	s.respondOK(w, r, nonNil(ds.Cases))
}

// nonNil keeps empty tables encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
