package reference_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/humanparadigm/nice-engine/internal/reference"
)

// ─── NearestCase ──────────────────────────────────────────────────────────────

func TestNearestCase_Builtin(t *testing.T) {
	ds := reference.Builtin()

	tests := []struct {
		ratio  float64
		wantID string
	}{
		// |4.5-5| = 0.5 beats |5.7-5| = 0.7.
		{5.0, "dot-com-bubble"},
		{5.6666666666666667, "financial-crisis-2008"},
		{1.25, "pre-industrial"},
		{0, "pre-industrial"},
		{3.9, "current-financial-system"},
		{14, "tulip-mania"},
		{1000, "weimar-hyperinflation"},
	}
	for _, tt := range tests {
		t.Run(tt.wantID, func(t *testing.T) {
			c, ok := ds.NearestCase(tt.ratio)
			if !ok {
				t.Fatal("expected a match")
			}
			if c.ID != tt.wantID {
				t.Errorf("ratio %v: got %q, want %q", tt.ratio, c.ID, tt.wantID)
			}
		})
	}
}

func TestNearestCase_TieGoesToFirstEntry(t *testing.T) {
	ds := reference.Dataset{
		Version: "test",
		Cases: []reference.Case{
			{ID: "low", DecouplingRatio: 2},
			{ID: "high", DecouplingRatio: 4},
			{ID: "low-again", DecouplingRatio: 2},
		},
	}
	c, ok := ds.NearestCase(3)
	if !ok {
		t.Fatal("expected a match")
	}
	if c.ID != "low" {
		t.Errorf("got %q, want first-seen %q", c.ID, "low")
	}
}

func TestNearest_EmptyTable(t *testing.T) {
	ds := reference.Dataset{Version: "empty"}
	if _, ok := ds.NearestCase(1); ok {
		t.Error("NearestCase on empty table: expected ok=false")
	}
	if _, ok := ds.NearestBenchmark(1); ok {
		t.Error("NearestBenchmark on empty table: expected ok=false")
	}
}

// ─── NearestBenchmark ─────────────────────────────────────────────────────────

func TestNearestBenchmark_Builtin(t *testing.T) {
	ds := reference.Builtin()

	tests := []struct {
		score    float64
		wantName string
	}{
		{80, "Tulip Mania"},
		{72.5, "Roman Empire (Late Period)"}, // tie 75 vs 70, Roman Empire listed first
		{67.5, "2008 Financial Crisis"},      // tie 70 vs 65, 2008 listed first
		{10, "Pre-Industrial Society"},
		{140, "Weimar Germany"},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			b, ok := ds.NearestBenchmark(tt.score)
			if !ok {
				t.Fatal("expected a match")
			}
			if b.Name != tt.wantName {
				t.Errorf("score %v: got %q, want %q", tt.score, b.Name, tt.wantName)
			}
		})
	}
}

// ─── Builtin immutability ─────────────────────────────────────────────────────

func TestBuiltin_ReturnsIndependentCopies(t *testing.T) {
	a := reference.Builtin()
	a.Cases[0].DecouplingRatio = -1
	a.Benchmarks[0].Name = "mutated"

	b := reference.Builtin()
	if b.Cases[0].DecouplingRatio == -1 || b.Benchmarks[0].Name == "mutated" {
		t.Fatal("mutating one copy leaked into the built-in tables")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("built-in dataset should validate: %v", err)
	}
}

// ─── Validate ─────────────────────────────────────────────────────────────────

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		ds   reference.Dataset
		want string
	}{
		{"missing version", reference.Dataset{}, "version must not be empty"},
		{"empty case id", reference.Dataset{Version: "v", Cases: []reference.Case{{}}}, "id must not be empty"},
		{"duplicate case id", reference.Dataset{Version: "v", Cases: []reference.Case{{ID: "a"}, {ID: "a"}}}, `duplicate id "a"`},
		{"nan ratio", reference.Dataset{Version: "v", Cases: []reference.Case{{ID: "a", DecouplingRatio: math.NaN()}}}, "decoupling_ratio is not a finite number"},
		{"empty benchmark name", reference.Dataset{Version: "v", Benchmarks: []reference.Benchmark{{}}}, "name must not be empty"},
		{"infinite iq score", reference.Dataset{Version: "v", Benchmarks: []reference.Benchmark{{Name: "x", IQScore: math.Inf(1)}}}, "iq_score is not a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ds.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

// ─── Parse / Encode ───────────────────────────────────────────────────────────

func TestParse_YAML(t *testing.T) {
	doc := []byte(`
version: "2025.2"
cases:
  - id: custom
    name: Custom Case
    period: "2030s"
    symbol_speed: 60
    substance_speed: 10
    decoupling_ratio: 6
    outcome: Hypothetical
benchmarks:
  - name: Custom Benchmark
    period: "2030s"
    iq_score: 55
    outcome: Hypothetical
`)
	ds, err := reference.Parse(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := reference.Dataset{
		Version: "2025.2",
		Cases: []reference.Case{{
			ID: "custom", Name: "Custom Case", Period: "2030s",
			SymbolSpeed: 60, SubstanceSpeed: 10, DecouplingRatio: 6, Outcome: "Hypothetical",
		}},
		Benchmarks: []reference.Benchmark{{
			Name: "Custom Benchmark", Period: "2030s", IQScore: 55, Outcome: "Hypothetical",
		}},
	}
	if diff := cmp.Diff(want, ds); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RejectsUnknownFieldsAndEmptyDocs(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown field": "version: v\ncasez: []\n",
		"empty":         "",
		"invalid":       "version: v\ncases:\n  - id: a\n  - id: a\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := reference.Parse([]byte(doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEncode_RoundTripsBuiltin(t *testing.T) {
	var buf bytes.Buffer
	if err := reference.Encode(&buf, reference.Builtin()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := reference.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(reference.Builtin(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
