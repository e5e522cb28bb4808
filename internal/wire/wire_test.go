package wire_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/humanparadigm/nice-engine/internal/scoring"
	"github.com/humanparadigm/nice-engine/internal/wire"
)

func TestPropagationRequest_Input(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		want        scoring.PropagationInput
		wantMissing string
	}{
		{
			name: "all fields",
			body: `{"symbol_speed": 85, "substance_speed": 15, "time_elapsed": 100}`,
			want: scoring.PropagationInput{SymbolSpeed: 85, SubstanceSpeed: 15, TimeElapsed: 100},
		},
		{
			name: "explicit zeros are present",
			body: `{"symbol_speed": 0, "substance_speed": 0, "time_elapsed": 0}`,
			want: scoring.PropagationInput{},
		},
		{
			name: "negative values pass through",
			body: `{"symbol_speed": -5, "substance_speed": 10, "time_elapsed": 100}`,
			want: scoring.PropagationInput{SymbolSpeed: -5, SubstanceSpeed: 10, TimeElapsed: 100},
		},
		{
			name:        "missing fields are listed",
			body:        `{"symbol_speed": 85}`,
			wantMissing: "substance_speed, time_elapsed",
		},
		{
			name:        "null counts as missing",
			body:        `{"symbol_speed": 85, "substance_speed": null, "time_elapsed": 1}`,
			wantMissing: "substance_speed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req wire.PropagationRequest
			if err := wire.DecodeBytes([]byte(tt.body), &req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			got, err := req.Input()
			if tt.wantMissing != "" {
				if !errors.Is(err, wire.ErrMissingField) || !strings.HasSuffix(err.Error(), tt.wantMissing) {
					t.Errorf("got %v, want missing %q", err, tt.wantMissing)
				}
				return
			}
			if err != nil {
				t.Fatalf("Input: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuotientRequest_Input(t *testing.T) {
	var req wire.QuotientRequest
	if err := wire.DecodeBytes([]byte(`{"symbol_to_substance_ratio": 80, "temporal_lag": 70, "behavioral_sink_index": 90}`), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := req.Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	want := scoring.IQInput{SymbolToSubstanceRatio: 80, TemporalLag: 70, BehavioralSinkIndex: 90}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	_, err = wire.QuotientRequest{}.Input()
	if !errors.Is(err, wire.ErrMissingField) {
		t.Errorf("empty request: got %v", err)
	}
}

func TestTrendRequest_Inputs(t *testing.T) {
	in := scoring.PropagationInput{SymbolSpeed: 20, SubstanceSpeed: 10, TimeElapsed: 100}

	t.Run("converts every entry", func(t *testing.T) {
		req := wire.TrendRequest{History: []wire.PropagationRequest{
			wire.NewPropagationRequest(in),
			wire.NewPropagationRequest(in),
		}}
		got, err := req.Inputs()
		if err != nil {
			t.Fatalf("Inputs: %v", err)
		}
		if diff := cmp.Diff([]scoring.PropagationInput{in, in}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty history is allowed", func(t *testing.T) {
		got, err := wire.TrendRequest{}.Inputs()
		if err != nil || len(got) != 0 {
			t.Errorf("got %v, %v", got, err)
		}
	})

	t.Run("reports the failing entry", func(t *testing.T) {
		req := wire.TrendRequest{History: []wire.PropagationRequest{wire.NewPropagationRequest(in), {}}}
		_, err := req.Inputs()
		if err == nil || !strings.HasPrefix(err.Error(), "history[1]:") {
			t.Errorf("got %v", err)
		}
	})

	t.Run("rejects oversized history", func(t *testing.T) {
		req := wire.TrendRequest{History: make([]wire.PropagationRequest, wire.MaxTrendHistory+1)}
		_, err := req.Inputs()
		if err == nil || !strings.Contains(err.Error(), fmt.Sprint(wire.MaxTrendHistory)) {
			t.Errorf("got %v", err)
		}
	})
}

func TestNewRequests_DoNotAlias(t *testing.T) {
	in := scoring.IQInput{SymbolToSubstanceRatio: 1, TemporalLag: 2, BehavioralSinkIndex: 3}
	req := wire.NewQuotientRequest(in)
	in.TemporalLag = 99
	got, err := req.Input()
	if err != nil {
		t.Fatal(err)
	}
	if got.TemporalLag != 2 {
		t.Errorf("request aliases caller input: %v", got.TemporalLag)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"empty", "", "empty body"},
		{"unknown field", `{"symbol_speed": 1, "speed": 2}`, "unknown field"},
		{"trailing data", `{"symbol_speed": 1} {}`, "unexpected data"},
		{"wrong type", `{"symbol_speed": "fast"}`, "cannot unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req wire.PropagationRequest
			err := wire.DecodeBytes([]byte(tt.body), &req)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
