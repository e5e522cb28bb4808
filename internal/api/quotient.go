package api

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/humanparadigm/nice-engine/internal/wire"
)

// ─── POST /api/iq ─────────────────────────────────────────────────────────────

// handleScoreQuotient scores the three IQ dimensions and attaches the nearest
// historical benchmark.
func (s *Server) handleScoreQuotient(w http.ResponseWriter, r *http.Request) {
	var req wire.QuotientRequest
	if !decode(w, r, &req) {
		return
	}
	in, err := req.Input()
	if err != nil {
		respondErr(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respondOK(w, r, s.engine.Quotient(in))
}

// ─── POST /api/iq/report ──────────────────────────────────────────────────────

// handleQuotientReport returns the plain-text assessment as a download. Each
// report gets a fresh ID so a saved file can be matched to the request log.
func (s *Server) handleQuotientReport(w http.ResponseWriter, r *http.Request) {
	var req wire.QuotientRequest
	if !decode(w, r, &req) {
		return
	}
	in, err := req.Input()
	if err != nil {
		respondErr(w, http.StatusBadRequest, err.Error())
		return
	}

	reportID := uuid.New()
	text := s.engine.QuotientReport(in, s.now())

	s.logger.Debug("iq report generated",
		"report_id", reportID,
		"bytes", len(text),
		logField(r),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="insanity-quotient-report.txt"`)
	w.Header().Set("X-Report-ID", reportID.String())
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// ─── GET /api/iq/benchmarks ───────────────────────────────────────────────────

func (s *Server) handleListBenchmarks(w http.ResponseWriter, r *http.Request) {
	ds := s.engine.Dataset()
	w.Header().Set("X-Dataset-Version", ds.Version)
	s.respondOK(w, r, nonNil(ds.Benchmarks))
}
