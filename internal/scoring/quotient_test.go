package scoring_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/humanparadigm/nice-engine/internal/scoring"
)

// ─── ScoreIQ — worked example ─────────────────────────────────────────────────

func TestScoreIQ_TerminalAtEightyBoundary(t *testing.T) {
	got := scoring.ScoreIQ(scoring.IQInput{
		SymbolToSubstanceRatio: 80, TemporalLag: 70, BehavioralSinkIndex: 90,
	})

	// 80×0.4 + 70×0.3 + 90×0.3 = 32 + 21 + 27 = 80 → [80, ∞) is Terminal.
	if got.Score != 80 {
		t.Errorf("score: got %v, want 80", got.Score)
	}
	if got.CategoryLevel != scoring.LevelTerminalInsanity {
		t.Errorf("level: got %q, want %q", got.CategoryLevel, scoring.LevelTerminalInsanity)
	}
	if got.Category != "Terminal Insanity (80-100)" {
		t.Errorf("category: got %q", got.Category)
	}
	if got.RiskLevel != scoring.RiskCritical {
		t.Errorf("risk: got %q, want critical", got.RiskLevel)
	}
	// Every group fires its top tier: 3 + 3 + 3 + 3.
	if len(got.Interventions) != 12 {
		t.Errorf("interventions: got %d, want 12: %v", len(got.Interventions), got.Interventions)
	}
	if got.Interventions[9] != "PRIORITY: Comprehensive system redesign required" {
		t.Errorf("overall rule should come last, got %q at index 9", got.Interventions[9])
	}
}

// ─── ScoreIQ — category bands ─────────────────────────────────────────────────

func TestScoreIQ_CategoryBands(t *testing.T) {
	tests := []struct {
		name      string
		in        scoring.IQInput
		wantScore float64
		wantLevel scoring.CategoryLevel
		wantRisk  scoring.RiskLevel
	}{
		{"all ten", scoring.IQInput{10, 10, 10}, 10, scoring.LevelAligned, scoring.RiskLow},
		{"exactly 20", scoring.IQInput{20, 20, 20}, 20, scoring.LevelMildDrift, scoring.RiskLow},
		{"ratio only reaches 20", scoring.IQInput{50, 0, 0}, 20, scoring.LevelMildDrift, scoring.RiskLow},
		{"exactly 40", scoring.IQInput{40, 40, 40}, 40, scoring.LevelModerateInsanity, scoring.RiskModerate},
		{"fifty", scoring.IQInput{50, 50, 50}, 50, scoring.LevelModerateInsanity, scoring.RiskModerate},
		{"exactly 60", scoring.IQInput{60, 60, 60}, 60, scoring.LevelSevereInsanity, scoring.RiskHigh},
		{"ratio only reaches 80", scoring.IQInput{200, 0, 0}, 80, scoring.LevelTerminalInsanity, scoring.RiskCritical},
		// Scores above 100 are not clamped.
		{"above nominal range", scoring.IQInput{200, 200, 200}, 200, scoring.LevelTerminalInsanity, scoring.RiskCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.ScoreIQ(tt.in)
			if got.Score != tt.wantScore {
				t.Errorf("score: got %v, want %v", got.Score, tt.wantScore)
			}
			if got.CategoryLevel != tt.wantLevel {
				t.Errorf("level: got %q, want %q", got.CategoryLevel, tt.wantLevel)
			}
			if got.RiskLevel != tt.wantRisk {
				t.Errorf("risk: got %q, want %q", got.RiskLevel, tt.wantRisk)
			}
		})
	}
}

func TestClassifyIQ_LabelsAndDescriptions(t *testing.T) {
	tests := []struct {
		iq        float64
		wantLabel string
		wantDesc  string
	}{
		{0, "Aligned (0-20)", "Symbolic systems closely track physical reality. Sustainable and grounded."},
		{39.99, "Mild Drift (20-40)", "Minor decoupling emerging. Early warning signs present. Correctable with awareness."},
		{59.99, "Moderate Insanity (40-60)", "Significant symbol-substance gap. System fragility increasing. Intervention needed."},
		{79.99, "Severe Insanity (60-80)", "Severe reality distortion. System operating on false premises. Collapse risk high."},
		{100, "Terminal Insanity (80-100)", "Complete decoupling from reality. System collapse imminent or underway."},
	}
	for _, tt := range tests {
		b := scoring.ClassifyIQ(tt.iq)
		if b.Label != tt.wantLabel || b.Description != tt.wantDesc {
			t.Errorf("ClassifyIQ(%v) = %q / %q, want %q / %q", tt.iq, b.Label, b.Description, tt.wantLabel, tt.wantDesc)
		}
	}
}

// ─── ScoreIQ — rounding ───────────────────────────────────────────────────────

func TestScoreIQ_RoundsToOneDecimalHalfUp(t *testing.T) {
	tests := []struct {
		name string
		in   scoring.IQInput
		want float64
	}{
		{"truncates extra precision", scoring.IQInput{SymbolToSubstanceRatio: 33.33}, 13.3},
		{"positive half rounds up", scoring.IQInput{SymbolToSubstanceRatio: 0.625}, 0.3},
		{"negative half rounds towards +inf", scoring.IQInput{SymbolToSubstanceRatio: -0.625}, -0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoring.ScoreIQ(tt.in).Score; got != tt.want {
				t.Errorf("score: got %v, want %v", got, tt.want)
			}
		})
	}
}

// Classification uses the unrounded score: 19.96 rounds to 20.0 for display
// but still sits in the Aligned band.
func TestScoreIQ_ClassifiesUnroundedScore(t *testing.T) {
	got := scoring.ScoreIQ(scoring.IQInput{SymbolToSubstanceRatio: 49.9})
	if got.Score != 20 {
		t.Fatalf("score: got %v, want 20 after rounding", got.Score)
	}
	if got.CategoryLevel != scoring.LevelAligned {
		t.Errorf("level: got %q, want Aligned (unrounded 19.96)", got.CategoryLevel)
	}
}

// ─── ScoreIQ — interventions ──────────────────────────────────────────────────

func TestScoreIQ_Interventions(t *testing.T) {
	tests := []struct {
		name string
		in   scoring.IQInput
		want []string
	}{
		{
			"healthy system gets affirmations only",
			scoring.IQInput{10, 10, 10},
			[]string{
				"Maintain current grounding practices",
				"Monitor for emerging drift signals",
			},
		},
		{
			"every elevated tier",
			scoring.IQInput{50, 50, 50},
			[]string{
				"Monitor symbol-substance coupling closely",
				"Strengthen feedback from physical constraints",
				"Improve responsiveness to environmental signals",
				"Shorten feedback loops between decision and outcome",
				"Balance symbolic demands with biological capacities",
				"Provide spaces for recovery and regulation",
				"Implement proactive corrective measures",
				"Build resilience and redundancy into systems",
			},
		},
		{
			"thresholds are strict",
			scoring.IQInput{40, 40, 40},
			[]string{},
		},
		{
			"groups fire independently of the overall band",
			scoring.IQInput{SymbolToSubstanceRatio: 0, TemporalLag: 0, BehavioralSinkIndex: 65},
			[]string{
				"Reduce symbolic complexity and information overload",
				"Restore biological rhythms and spatial coherence",
				"Create supportive environments for grounded behavior",
				"Maintain current grounding practices",
				"Monitor for emerging drift signals",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.ScoreIQ(tt.in).Interventions
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("interventions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScoreIQ_Idempotent(t *testing.T) {
	in := scoring.IQInput{SymbolToSubstanceRatio: 61.7, TemporalLag: 44.4, BehavioralSinkIndex: 12.9}
	if diff := cmp.Diff(scoring.ScoreIQ(in), scoring.ScoreIQ(in)); diff != "" {
		t.Errorf("repeated call differs (-first +second):\n%s", diff)
	}
}
