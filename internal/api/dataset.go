package api

import (
	"fmt"
	"net/http"

	"github.com/humanparadigm/nice-engine/internal/wire"
)

// ─── GET /api/dataset ─────────────────────────────────────────────────────────

func (s *Server) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	ds := s.engine.Dataset()
	s.respondOK(w, r, wire.DatasetSummary{
		Version:    ds.Version,
		Cases:      len(ds.Cases),
		Benchmarks: len(ds.Benchmarks),
	})
}

// ─── GET /api/dataset/versions ────────────────────────────────────────────────

// handleListDatasetVersions lists every version published to the database,
// newest first. Without a database there is nothing to list.
func (s *Server) handleListDatasetVersions(w http.ResponseWriter, r *http.Request) {
	if s.versions == nil {
		respondErr(w, http.StatusNotFound, "no dataset database configured")
		return
	}

	rows, err := s.versions.ListVersions(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list dataset versions: %w", err))
		return
	}
	s.respondOK(w, r, nonNil(rows))
}
