package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/humanparadigm/nice-engine/internal/api"
	"github.com/humanparadigm/nice-engine/internal/config"
	"github.com/humanparadigm/nice-engine/internal/db"
	"github.com/humanparadigm/nice-engine/internal/engine"
	"github.com/humanparadigm/nice-engine/internal/rpc"
	"github.com/humanparadigm/nice-engine/internal/source"
	"github.com/humanparadigm/nice-engine/internal/store"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func main() {
	// ── Logger ────────────────────────────────────────────────────────────────
	// JSON in production, pretty text in development.
	var logger *slog.Logger
	if os.Getenv("ENV") == "production" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// ── Config ────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Info("config loaded",
		"env", cfg.Env,
		"port", cfg.Port,
		"dataset_source", cfg.DatasetSource(),
	)

	// Root context cancelled by OS signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Database (optional) ───────────────────────────────────────────────────
	var st *store.Store
	if cfg.DatabaseURL != "" {
		pool, err := openDB(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()
		st = store.New(pool, db.New(pool))
	}

	// ── Reference dataset ─────────────────────────────────────────────────────
	// Fixed for the life of the process.
	opts := source.Options{File: cfg.DatasetFile, Version: cfg.DatasetVersion}
	if st != nil {
		opts.Loader = st
	}
	loadCtx, cancelLoad := context.WithTimeout(ctx, 10*time.Second)
	ds, from, err := source.Resolve(loadCtx, opts, logger)
	cancelLoad()
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	logger.Info("dataset loaded",
		"version", ds.Version,
		"source", from,
		"cases", len(ds.Cases),
		"benchmarks", len(ds.Benchmarks),
	)

	eng := engine.New(ds)

	// ── HTTP server ───────────────────────────────────────────────────────────
	var versions api.VersionLister
	if st != nil {
		versions = st
	}
	handler := api.NewServer(eng, versions, api.Config{
		Env:            cfg.Env,
		AllowedOrigin:  cfg.AllowedOrigin,
		RequestTimeout: cfg.RequestTimeout,
	}, logger)

	httpSrv := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// ── gRPC server ───────────────────────────────────────────────────────────
	grpcSrv := rpc.NewServer(eng, logger)

	// ── Shared listener ───────────────────────────────────────────────────────
	// gRPC is recognised by its HTTP/2 content-type; everything else is HTTP.
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	mux := cmux.New(lis)
	grpcL := mux.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpL := mux.Match(cmux.Any())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcSrv.Serve(grpcL); err != nil && !isClosed(err) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := httpSrv.Serve(httpL); err != nil && !isClosed(err) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("server listening", "addr", lis.Addr().String())
		if err := mux.Serve(); err != nil && !isClosed(err) {
			return fmt.Errorf("listener: %w", err)
		}
		return nil
	})

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	// Runs on a signal or when any server above fails.
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		stopGRPC(shutdownCtx, grpcSrv)
		err := httpSrv.Shutdown(shutdownCtx)
		_ = lis.Close()

		if err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// openDB opens the pool and, when AUTO_MIGRATE is set, brings the schema up
// to date before anything reads from it.
func openDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := db.Open(pingCtx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "max_conns", cfg.DBMaxConns)

	if cfg.AutoMigrate {
		if err := db.Migrate(pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("database migrated")
	}
	return pool, nil
}

// stopGRPC drains in-flight calls, forcing a hard stop if the deadline passes
// first.
func stopGRPC(ctx context.Context, s *grpc.Server) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.Stop()
	}
}

// isClosed reports whether err only signals that a listener or server was
// closed during shutdown.
func isClosed(err error) bool {
	return errors.Is(err, http.ErrServerClosed) ||
		errors.Is(err, grpc.ErrServerStopped) ||
		errors.Is(err, cmux.ErrListenerClosed) ||
		errors.Is(err, net.ErrClosed)
}
