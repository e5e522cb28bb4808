// Package engine combines the scoring functions with a fixed reference
// dataset and returns one structured record per call. An Engine holds no
// mutable state and may be shared by any number of goroutines.
package engine

import (
	"time"

	"github.com/humanparadigm/nice-engine/internal/reference"
	"github.com/humanparadigm/nice-engine/internal/report"
	"github.com/humanparadigm/nice-engine/internal/scoring"
)

// PropagationAssessment is the record returned for one propagation input.
type PropagationAssessment struct {
	Input       scoring.PropagationInput  `json:"input"`
	Result      scoring.PropagationResult `json:"result"`
	SimilarCase *reference.Case           `json:"similar_case,omitempty"`
}

// QuotientAssessment is the record returned for one IQ input.
type QuotientAssessment struct {
	Input     scoring.IQInput      `json:"input"`
	Result    scoring.IQResult     `json:"result"`
	Benchmark *reference.Benchmark `json:"benchmark,omitempty"`
}

// TrendAssessment summarises a replayed history of propagation inputs.
type TrendAssessment struct {
	Trend   scoring.Trend `json:"trend"`
	Ratios  []float64     `json:"ratios"`
	Samples int           `json:"samples"`
}

// Engine scores inputs against one dataset version.
type Engine struct {
	dataset reference.Dataset
}

// New returns an Engine bound to a private copy of ds.
func New(ds reference.Dataset) *Engine {
	return &Engine{dataset: ds.Clone()}
}

// Dataset returns a copy of the tables the engine matches against.
func (e *Engine) Dataset() reference.Dataset {
	return e.dataset.Clone()
}

// Propagation scores in and attaches the historical case whose decoupling
// ratio is nearest to the computed one.
func (e *Engine) Propagation(in scoring.PropagationInput) PropagationAssessment {
	res := scoring.ScorePropagation(in)
	out := PropagationAssessment{Input: in, Result: res}
	if c, ok := e.dataset.NearestCase(res.DecouplingRatio); ok {
		out.SimilarCase = &c
	}
	return out
}

// SimilarCase scores in and returns only the nearest historical case.
// ok is false when the dataset has no cases.
func (e *Engine) SimilarCase(in scoring.PropagationInput) (reference.Case, bool) {
	return e.dataset.NearestCase(scoring.ScorePropagation(in).DecouplingRatio)
}

// Quotient scores in and attaches the nearest historical benchmark.
func (e *Engine) Quotient(in scoring.IQInput) QuotientAssessment {
	res := scoring.ScoreIQ(in)
	out := QuotientAssessment{Input: in, Result: res}
	if b, ok := e.dataset.NearestBenchmark(res.Score); ok {
		out.Benchmark = &b
	}
	return out
}

// Trend classifies the direction of the decoupling ratio over history.
func (e *Engine) Trend(history []scoring.PropagationInput) TrendAssessment {
	ratios := scoring.DecouplingRatios(history)
	return TrendAssessment{
		Trend:   scoring.TrendOf(ratios),
		Ratios:  ratios,
		Samples: len(history),
	}
}

// QuotientReport renders the plain-text assessment for in, dated now.
func (e *Engine) QuotientReport(in scoring.IQInput, now time.Time) string {
	a := e.Quotient(in)
	return report.FormatQuotient(a.Input, a.Result, a.Benchmark, now)
}
