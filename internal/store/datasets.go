package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/humanparadigm/nice-engine/internal/db"
	"github.com/humanparadigm/nice-engine/internal/reference"
	"github.com/sqlc-dev/pqtype"
)

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrDatasetVersionExists is returned by PublishDataset when the version has
// already been published. Published versions are immutable; publish a new
// version instead.
var ErrDatasetVersionExists = errors.New("store: dataset version already published")

// ErrDatasetNotFound is returned by LoadDataset when the requested version (or
// any version, for the latest) does not exist.
var ErrDatasetNotFound = errors.New("store: dataset not found")

// ─── METHODS ─────────────────────────────────────────────────────────────────

// PublishDataset validates ds and writes it as a new version. In one
// transaction it:
//
//  1. Rejects a version that already exists (ErrDatasetVersionExists).
//  2. Inserts the version row with a JSON snapshot of the whole dataset.
//  3. Inserts every case and benchmark with its table position.
//
// Any failure rolls the whole version back.
func (s *Store) PublishDataset(ctx context.Context, ds reference.Dataset) (db.DatasetVersion, error) {
	if err := ds.Validate(); err != nil {
		return db.DatasetVersion{}, fmt.Errorf("PublishDataset: %w", err)
	}

	snapshot, err := json.Marshal(ds)
	if err != nil {
		return db.DatasetVersion{}, fmt.Errorf("PublishDataset: marshal snapshot: %w", err)
	}

	var published db.DatasetVersion
	err = s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		exists, err := q.DatasetVersionExists(ctx, ds.Version)
		if err != nil {
			return fmt.Errorf("PublishDataset: check version: %w", err)
		}
		if exists {
			return ErrDatasetVersionExists
		}

		published, err = q.CreateDatasetVersion(ctx, db.CreateDatasetVersionParams{
			Version:  ds.Version,
			Snapshot: pqtype.NullRawMessage{RawMessage: snapshot, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("PublishDataset: create version: %w", err)
		}

		for i, c := range ds.Cases {
			if err := q.CreateHistoricalCase(ctx, caseParams(ds.Version, i, c)); err != nil {
				return fmt.Errorf("PublishDataset: insert case %q: %w", c.ID, err)
			}
		}
		for i, b := range ds.Benchmarks {
			if err := q.CreateHistoricalBenchmark(ctx, benchmarkParams(ds.Version, i, b)); err != nil {
				return fmt.Errorf("PublishDataset: insert benchmark %q: %w", b.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return db.DatasetVersion{}, err
	}
	return published, nil
}

// LoadDataset returns a published version. An empty version selects the most
// recently published one.
//
// The JSON snapshot written by PublishDataset is authoritative. Versions
// seeded directly in SQL without a snapshot are rebuilt from their rows in
// table order.
func (s *Store) LoadDataset(ctx context.Context, version string) (reference.Dataset, error) {
	var (
		row db.DatasetVersion
		err error
	)
	if version == "" {
		row, err = s.q.GetLatestDatasetVersion(ctx)
	} else {
		row, err = s.q.GetDatasetVersion(ctx, version)
	}
	if errors.Is(err, sql.ErrNoRows) {
		if version == "" {
			return reference.Dataset{}, fmt.Errorf("LoadDataset: no published versions: %w", ErrDatasetNotFound)
		}
		return reference.Dataset{}, fmt.Errorf("LoadDataset: version %q: %w", version, ErrDatasetNotFound)
	}
	if err != nil {
		return reference.Dataset{}, fmt.Errorf("LoadDataset: get version: %w", err)
	}

	var ds reference.Dataset
	if row.Snapshot.Valid {
		if err := json.Unmarshal(row.Snapshot.RawMessage, &ds); err != nil {
			return reference.Dataset{}, fmt.Errorf("LoadDataset: decode snapshot %q: %w", row.Version, err)
		}
		ds.Version = row.Version
	} else {
		ds, err = s.loadRows(ctx, row.Version)
		if err != nil {
			return reference.Dataset{}, err
		}
	}

	if err := ds.Validate(); err != nil {
		return reference.Dataset{}, fmt.Errorf("LoadDataset: version %q: %w", row.Version, err)
	}
	return ds, nil
}

// ListVersions returns every published version, newest first, with row counts.
func (s *Store) ListVersions(ctx context.Context) ([]db.ListDatasetVersionsRow, error) {
	rows, err := s.q.ListDatasetVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListVersions: %w", err)
	}
	return rows, nil
}

func (s *Store) loadRows(ctx context.Context, version string) (reference.Dataset, error) {
	cases, err := s.q.ListHistoricalCases(ctx, version)
	if err != nil {
		return reference.Dataset{}, fmt.Errorf("LoadDataset: list cases: %w", err)
	}
	benchmarks, err := s.q.ListHistoricalBenchmarks(ctx, version)
	if err != nil {
		return reference.Dataset{}, fmt.Errorf("LoadDataset: list benchmarks: %w", err)
	}

	ds := reference.Dataset{
		Version:    version,
		Cases:      make([]reference.Case, 0, len(cases)),
		Benchmarks: make([]reference.Benchmark, 0, len(benchmarks)),
	}
	for _, c := range cases {
		ds.Cases = append(ds.Cases, reference.Case{
			ID:              c.ID,
			Name:            c.Name,
			Period:          c.Period,
			SymbolSpeed:     c.SymbolSpeed,
			SubstanceSpeed:  c.SubstanceSpeed,
			DecouplingRatio: c.DecouplingRatio,
			Outcome:         c.Outcome,
		})
	}
	for _, b := range benchmarks {
		ds.Benchmarks = append(ds.Benchmarks, reference.Benchmark{
			Name:    b.Name,
			Period:  b.Period,
			IQScore: b.IqScore,
			Outcome: b.Outcome,
			Lessons: b.Lessons.String,
		})
	}
	return ds, nil
}

// ─── ROW MAPPING ─────────────────────────────────────────────────────────────

func caseParams(version string, position int, c reference.Case) db.CreateHistoricalCaseParams {
	return db.CreateHistoricalCaseParams{
		Version:         version,
		Position:        int32(position),
		ID:              c.ID,
		Name:            c.Name,
		Period:          c.Period,
		SymbolSpeed:     c.SymbolSpeed,
		SubstanceSpeed:  c.SubstanceSpeed,
		DecouplingRatio: c.DecouplingRatio,
		Outcome:         c.Outcome,
	}
}

func benchmarkParams(version string, position int, b reference.Benchmark) db.CreateHistoricalBenchmarkParams {
	return db.CreateHistoricalBenchmarkParams{
		Version:  version,
		Position: int32(position),
		Name:     b.Name,
		Period:   b.Period,
		IqScore:  b.IQScore,
		Outcome:  b.Outcome,
		Lessons:  sql.NullString{String: b.Lessons, Valid: b.Lessons != ""},
	}
}
