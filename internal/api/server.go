// Package api implements the HTTP layer presentation code calls to score
// inputs. Handlers are methods on *Server. Each handler file is responsible
// for one resource group and only imports the dependencies it actually uses.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/humanparadigm/nice-engine/internal/db"
	"github.com/humanparadigm/nice-engine/internal/engine"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// Env is "production", "staging", or "development".
	Env string

	// AllowedOrigin is the CORS origin. Empty echoes the request origin
	// outside production and allows any origin in production.
	AllowedOrigin string

	// RequestTimeout bounds every request. Zero means 30s.
	RequestTimeout time.Duration
}

// VersionLister lists the dataset versions published to the database.
// *store.Store satisfies it.
type VersionLister interface {
	ListVersions(ctx context.Context) ([]db.ListDatasetVersionsRow, error)
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	engine *engine.Engine

	// versions is nil when no database is configured.
	versions VersionLister

	// now dates generated reports.
	now func() time.Time

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to an http.Server. versions may be nil.
func NewServer(
	eng *engine.Engine,
	versions VersionLister,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		engine:   eng,
		versions: versions,
		now:      time.Now,
		cfg:      cfg,
		logger:   logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	timeout := s.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(timeout))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API ───────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {

		// Reference dataset the engine is matching against.
		r.Get("/dataset", s.handleGetDataset)
		r.Get("/dataset/versions", s.handleListDatasetVersions)

		// Asymmetric propagation calculator.
		r.Route("/propagation", func(r chi.Router) {
			r.Post("/", s.handleScorePropagation)
			r.Post("/similar", s.handleSimilarCase)
			r.Post("/trend", s.handleTrend)
			r.Get("/cases", s.handleListCases)
		})

		// Insanity Quotient calculator.
		r.Route("/iq", func(r chi.Router) {
			r.Post("/", s.handleScoreQuotient)
			r.Post("/report", s.handleQuotientReport)
			r.Get("/benchmarks", s.handleListBenchmarks)
		})
	})

	return r
}
