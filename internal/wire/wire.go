// Package wire defines the JSON request shapes shared by the HTTP API, the
// gRPC service and nicectl. Every numeric field is required: a missing field
// is an error, not a zero. Values are otherwise passed through unchecked; the
// scoring engine accepts any finite number.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/humanparadigm/nice-engine/internal/scoring"
)

// MaxTrendHistory caps the number of entries a single trend request may replay.
const MaxTrendHistory = 500

// ErrMissingField is wrapped by every required-field error.
var ErrMissingField = errors.New("missing required field")

// ─── REQUESTS ─────────────────────────────────────────────────────────────────

// PropagationRequest is the body of a propagation score request.
type PropagationRequest struct {
	SymbolSpeed    *float64 `json:"symbol_speed"`
	SubstanceSpeed *float64 `json:"substance_speed"`
	TimeElapsed    *float64 `json:"time_elapsed"`
}

// Input checks that every field is present and returns the engine input.
func (r PropagationRequest) Input() (scoring.PropagationInput, error) {
	if err := required(
		field{"symbol_speed", r.SymbolSpeed},
		field{"substance_speed", r.SubstanceSpeed},
		field{"time_elapsed", r.TimeElapsed},
	); err != nil {
		return scoring.PropagationInput{}, err
	}
	return scoring.PropagationInput{
		SymbolSpeed:    *r.SymbolSpeed,
		SubstanceSpeed: *r.SubstanceSpeed,
		TimeElapsed:    *r.TimeElapsed,
	}, nil
}

// QuotientRequest is the body of an Insanity Quotient request.
type QuotientRequest struct {
	SymbolToSubstanceRatio *float64 `json:"symbol_to_substance_ratio"`
	TemporalLag            *float64 `json:"temporal_lag"`
	BehavioralSinkIndex    *float64 `json:"behavioral_sink_index"`
}

// Input checks that every field is present and returns the engine input.
func (r QuotientRequest) Input() (scoring.IQInput, error) {
	if err := required(
		field{"symbol_to_substance_ratio", r.SymbolToSubstanceRatio},
		field{"temporal_lag", r.TemporalLag},
		field{"behavioral_sink_index", r.BehavioralSinkIndex},
	); err != nil {
		return scoring.IQInput{}, err
	}
	return scoring.IQInput{
		SymbolToSubstanceRatio: *r.SymbolToSubstanceRatio,
		TemporalLag:            *r.TemporalLag,
		BehavioralSinkIndex:    *r.BehavioralSinkIndex,
	}, nil
}

// TrendRequest replays a chronological history of propagation inputs.
type TrendRequest struct {
	History []PropagationRequest `json:"history"`
}

// Inputs validates every entry and the history length.
func (r TrendRequest) Inputs() ([]scoring.PropagationInput, error) {
	if len(r.History) > MaxTrendHistory {
		return nil, fmt.Errorf("history has %d entries, at most %d allowed", len(r.History), MaxTrendHistory)
	}
	out := make([]scoring.PropagationInput, len(r.History))
	for i, h := range r.History {
		in, err := h.Input()
		if err != nil {
			return nil, fmt.Errorf("history[%d]: %w", i, err)
		}
		out[i] = in
	}
	return out, nil
}

// NewPropagationRequest fills a request from a known input.
func NewPropagationRequest(in scoring.PropagationInput) PropagationRequest {
	return PropagationRequest{
		SymbolSpeed:    &in.SymbolSpeed,
		SubstanceSpeed: &in.SubstanceSpeed,
		TimeElapsed:    &in.TimeElapsed,
	}
}

// NewQuotientRequest fills a request from a known input.
func NewQuotientRequest(in scoring.IQInput) QuotientRequest {
	return QuotientRequest{
		SymbolToSubstanceRatio: &in.SymbolToSubstanceRatio,
		TemporalLag:            &in.TemporalLag,
		BehavioralSinkIndex:    &in.BehavioralSinkIndex,
	}
}

// ─── RESPONSES ────────────────────────────────────────────────────────────────

// DatasetSummary describes the dataset a server is scoring against.
type DatasetSummary struct {
	Version    string `json:"version"`
	Cases      int    `json:"cases"`
	Benchmarks int    `json:"benchmarks"`
}

// QuotientReport carries a rendered plain-text report and its identifier.
type QuotientReport struct {
	ReportID string `json:"report_id"`
	Report   string `json:"report"`
}

// ─── DECODING ─────────────────────────────────────────────────────────────────

// Decode reads exactly one JSON value from r into dst. Unknown fields and
// trailing data are rejected.
func Decode(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte, dst any) error {
	return Decode(bytes.NewReader(data), dst)
}

type field struct {
	name  string
	value *float64
}

func required(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
}
