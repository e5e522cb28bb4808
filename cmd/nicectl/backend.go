package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/humanparadigm/nice-engine/internal/db"
	"github.com/humanparadigm/nice-engine/internal/engine"
	"github.com/humanparadigm/nice-engine/internal/reference"
	"github.com/humanparadigm/nice-engine/internal/rpc"
	"github.com/humanparadigm/nice-engine/internal/scoring"
	"github.com/humanparadigm/nice-engine/internal/source"
	"github.com/humanparadigm/nice-engine/internal/store"
	"github.com/humanparadigm/nice-engine/internal/wire"
)

// scorer is the set of operations nicectl can run either in-process or
// against a server.
type scorer interface {
	Propagation(ctx context.Context, in scoring.PropagationInput) (engine.PropagationAssessment, error)
	Quotient(ctx context.Context, in scoring.IQInput) (engine.QuotientAssessment, error)
	Trend(ctx context.Context, history []scoring.PropagationInput) (engine.TrendAssessment, error)
	Report(ctx context.Context, in scoring.IQInput) (wire.QuotientReport, error)
	Summary(ctx context.Context) (wire.DatasetSummary, error)
}

// ─── LOCAL ────────────────────────────────────────────────────────────────────

type localScorer struct {
	eng *engine.Engine
	now func() time.Time
}

func (l *localScorer) Propagation(_ context.Context, in scoring.PropagationInput) (engine.PropagationAssessment, error) {
	return l.eng.Propagation(in), nil
}

func (l *localScorer) Quotient(_ context.Context, in scoring.IQInput) (engine.QuotientAssessment, error) {
	return l.eng.Quotient(in), nil
}

func (l *localScorer) Trend(_ context.Context, history []scoring.PropagationInput) (engine.TrendAssessment, error) {
	return l.eng.Trend(history), nil
}

func (l *localScorer) Report(_ context.Context, in scoring.IQInput) (wire.QuotientReport, error) {
	return wire.QuotientReport{
		ReportID: uuid.NewString(),
		Report:   l.eng.QuotientReport(in, l.now()),
	}, nil
}

func (l *localScorer) Summary(context.Context) (wire.DatasetSummary, error) {
	ds := l.eng.Dataset()
	return wire.DatasetSummary{Version: ds.Version, Cases: len(ds.Cases), Benchmarks: len(ds.Benchmarks)}, nil
}

// ─── REMOTE ───────────────────────────────────────────────────────────────────

type remoteScorer struct {
	client *rpc.Client
}

func (r *remoteScorer) Propagation(ctx context.Context, in scoring.PropagationInput) (engine.PropagationAssessment, error) {
	return r.client.ScorePropagation(ctx, in)
}

func (r *remoteScorer) Quotient(ctx context.Context, in scoring.IQInput) (engine.QuotientAssessment, error) {
	return r.client.ScoreQuotient(ctx, in)
}

func (r *remoteScorer) Trend(ctx context.Context, history []scoring.PropagationInput) (engine.TrendAssessment, error) {
	return r.client.DecouplingTrend(ctx, history)
}

func (r *remoteScorer) Report(ctx context.Context, in scoring.IQInput) (wire.QuotientReport, error) {
	return r.client.QuotientReport(ctx, in)
}

func (r *remoteScorer) Summary(ctx context.Context) (wire.DatasetSummary, error) {
	return r.client.Dataset(ctx)
}

// ─── CONSTRUCTION ─────────────────────────────────────────────────────────────

// newScorer returns the scorer selected by the root flags and a func that
// releases whatever it holds open.
func (o *rootOptions) newScorer(ctx context.Context, stderr io.Writer) (scorer, func(), error) {
	if o.remote != "" {
		conn, err := rpc.Dial(o.remote)
		if err != nil {
			return nil, nil, err
		}
		return &remoteScorer{client: rpc.NewClient(conn)}, func() { conn.Close() }, nil
	}

	ds, release, err := o.loadDataset(ctx, stderr)
	if err != nil {
		return nil, nil, err
	}
	return &localScorer{eng: engine.New(ds), now: time.Now}, release, nil
}

// loadDataset resolves the local dataset the same way the server does.
func (o *rootOptions) loadDataset(ctx context.Context, stderr io.Writer) (reference.Dataset, func(), error) {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	release := func() {}

	opts := source.Options{File: o.datasetFile, Version: o.datasetVersion}
	if o.datasetFile == "" && o.databaseURL != "" {
		st, closeDB, err := o.openStore(ctx)
		if err != nil {
			return reference.Dataset{}, nil, err
		}
		opts.Loader = st
		release = closeDB
	} else if o.datasetVersion != "" {
		return reference.Dataset{}, nil, fmt.Errorf("--dataset-version needs --database-url")
	}

	ds, _, err := source.Resolve(ctx, opts, logger)
	if err != nil {
		release()
		return reference.Dataset{}, nil, err
	}
	return ds, release, nil
}

// openStore connects to --database-url and returns a store over it.
func (o *rootOptions) openStore(ctx context.Context) (*store.Store, func(), error) {
	if o.databaseURL == "" {
		return nil, nil, fmt.Errorf("--database-url (or DATABASE_URL) is required")
	}
	pool, err := db.Open(ctx, o.databaseURL, o.dbMaxConns)
	if err != nil {
		return nil, nil, err
	}
	return store.New(pool, db.New(pool)), func() { pool.Close() }, nil
}
