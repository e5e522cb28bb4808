// Package reference holds the versioned, read-only tables of historical
// cases and benchmarks that scored results are compared against. A Dataset is
// fixed once at process start and only ever handed out by value.
//
// Dependency rule: reference imports nothing from internal/. The store and
// engine packages build on it, never the other way round.
package reference

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// Case is a historical episode of symbol/substance decoupling with a known
// decoupling ratio. Used by the propagation calculator for nearest-match
// narrative lookup.
type Case struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Period          string  `json:"period" yaml:"period"`
	SymbolSpeed     float64 `json:"symbol_speed" yaml:"symbol_speed"`
	SubstanceSpeed  float64 `json:"substance_speed" yaml:"substance_speed"`
	DecouplingRatio float64 `json:"decoupling_ratio" yaml:"decoupling_ratio"`
	Outcome         string  `json:"outcome" yaml:"outcome"`
}

// Benchmark is a historical system with a known Insanity Quotient score.
// Lessons is optional.
type Benchmark struct {
	Name    string  `json:"name" yaml:"name"`
	Period  string  `json:"period" yaml:"period"`
	IQScore float64 `json:"iq_score" yaml:"iq_score"`
	Outcome string  `json:"outcome" yaml:"outcome"`
	Lessons string  `json:"lessons,omitempty" yaml:"lessons,omitempty"`
}

// Dataset is one published version of both reference tables. Table order is
// significant: nearest-match ties go to the entry that appears first.
type Dataset struct {
	Version    string      `json:"version" yaml:"version"`
	Cases      []Case      `json:"cases" yaml:"cases"`
	Benchmarks []Benchmark `json:"benchmarks" yaml:"benchmarks"`
}

// Clone returns a deep copy so callers can never mutate a shared table.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Version:    d.Version,
		Cases:      slices.Clone(d.Cases),
		Benchmarks: slices.Clone(d.Benchmarks),
	}
}

// ─── NEAREST MATCH ────────────────────────────────────────────────────────────

// NearestCase returns the case whose DecouplingRatio is closest to ratio.
// Ties go to the earlier table entry. ok is false only for an empty table.
func (d Dataset) NearestCase(ratio float64) (c Case, ok bool) {
	return nearest(d.Cases, ratio, func(c Case) float64 { return c.DecouplingRatio })
}

// NearestBenchmark returns the benchmark whose IQScore is closest to score.
// Ties go to the earlier table entry. ok is false only for an empty table.
func (d Dataset) NearestBenchmark(score float64) (b Benchmark, ok bool) {
	return nearest(d.Benchmarks, score, func(b Benchmark) float64 { return b.IQScore })
}

// nearest is a single linear scan keeping the first entry with the smallest
// absolute distance. Strict < keeps the first-seen entry on ties, which gives
// the same answer as a stable sort by distance.
func nearest[T any](items []T, target float64, key func(T) float64) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	bestDist := math.Inf(1)
	for i, item := range items {
		dist := math.Abs(key(item) - target)
		if i == 0 || dist < bestDist {
			best, bestDist = item, dist
		}
	}
	return best, true
}

// ─── VALIDATION ───────────────────────────────────────────────────────────────

// Validate checks a dataset loaded from outside the binary (YAML file or
// database). The built-in dataset always passes.
func (d Dataset) Validate() error {
	var errs []error

	if d.Version == "" {
		errs = append(errs, errors.New("dataset: version must not be empty"))
	}

	seen := make(map[string]struct{}, len(d.Cases))
	for i, c := range d.Cases {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("dataset: cases[%d]: id must not be empty", i))
		} else if _, dup := seen[c.ID]; dup {
			errs = append(errs, fmt.Errorf("dataset: cases[%d]: duplicate id %q", i, c.ID))
		}
		seen[c.ID] = struct{}{}

		for name, v := range map[string]float64{
			"symbol_speed":     c.SymbolSpeed,
			"substance_speed":  c.SubstanceSpeed,
			"decoupling_ratio": c.DecouplingRatio,
		} {
			if !finite(v) {
				errs = append(errs, fmt.Errorf("dataset: cases[%d]: %s is not a finite number", i, name))
			}
		}
	}

	for i, b := range d.Benchmarks {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("dataset: benchmarks[%d]: name must not be empty", i))
		}
		if !finite(b.IQScore) {
			errs = append(errs, fmt.Errorf("dataset: benchmarks[%d]: iq_score is not a finite number", i))
		}
	}

	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
