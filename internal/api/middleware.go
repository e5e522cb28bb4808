package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/humanparadigm/nice-engine/internal/wire"
)

// maxBodyBytes caps every request body. A full trend history fits easily.
const maxBodyBytes = 1 << 20

// ─── CORS ─────────────────────────────────────────────────────────────────────

// corsMiddleware handles preflight OPTIONS requests and sets CORS headers.
// The lab pages call the API cross-origin from a static host.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		allowed := s.cfg.AllowedOrigin
		if allowed == "" {
			allowed = "*"
			if s.cfg.Env != "production" {
				allowed = origin
			}
		}

		w.Header().Set("Access-Control-Allow-Origin", allowed)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "X-Report-ID, X-Dataset-Version")
		w.Header().Set("Access-Control-Max-Age", "86400")
		if allowed != "*" {
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ─── LOGGER MIDDLEWARE ────────────────────────────────────────────────────────

// loggerMiddleware logs each request with method, path, status, and duration.
func (s *Server) loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// ─── RESPONSE HELPERS ─────────────────────────────────────────────────────────

// respond writes a JSON body with the given status code. The body is encoded
// before anything is written, so on error the response is still untouched.
func respond(w http.ResponseWriter, status int, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// respondOK writes body as a 200. Results that cannot be encoded, such as
// scores that overflowed to ±Inf, become a 500.
func (s *Server) respondOK(w http.ResponseWriter, r *http.Request, body any) {
	if err := respond(w, http.StatusOK, body); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("encode response: %w", err))
	}
}

// respondErr writes a standard JSON error envelope.
func respondErr(w http.ResponseWriter, status int, message string) {
	_ = respond(w, status, map[string]string{"error": message})
}

// respondInternalErr logs an unexpected error and returns a 500 to the client
// without leaking internal details.
func (s *Server) respondInternalErr(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("internal error",
		"error", err,
		"path", r.URL.Path,
		logField(r),
	)
	respondErr(w, http.StatusInternalServerError, "internal server error")
}

// ─── REQUEST PARSING HELPERS ─────────────────────────────────────────────────

// decode JSON-decodes r.Body into dst. Returns false and writes 400 if the
// body is missing, malformed, or too large. Callers should return immediately
// on false.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := wire.Decode(r.Body, dst); err != nil {
		respondErr(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// logField returns a slog.Attr using the request ID for correlation.
func logField(r *http.Request) slog.Attr {
	return slog.String("request_id", middleware.GetReqID(r.Context()))
}
