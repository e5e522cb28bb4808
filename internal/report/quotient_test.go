package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/humanparadigm/nice-engine/internal/reference"
	"github.com/humanparadigm/nice-engine/internal/report"
	"github.com/humanparadigm/nice-engine/internal/scoring"
)

var fixedTime = time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)

func TestFormatQuotient_FullLayout(t *testing.T) {
	in := scoring.IQInput{SymbolToSubstanceRatio: 50, TemporalLag: 50, BehavioralSinkIndex: 50}
	res := scoring.ScoreIQ(in)
	bm, ok := reference.Builtin().NearestBenchmark(res.Score)
	if !ok {
		t.Fatal("expected a benchmark")
	}

	got := report.FormatQuotient(in, res, &bm, fixedTime)

	want := strings.Join([]string{
		"INSANITY QUOTIENT ASSESSMENT REPORT",
		"",
		"Score: 50 / 100",
		"Category: Moderate Insanity (40-60)",
		"Risk Level: MODERATE",
		"",
		"INPUT PARAMETERS:",
		"- Symbol-to-Substance Ratio: 50:1",
		"- Temporal Lag: 50%",
		"- Behavioral Sink Index: 50",
		"",
		"INTERPRETATION:",
		"Significant symbol-substance gap. System fragility increasing. Intervention needed.",
		"",
		"HISTORICAL COMPARISON:",
		"Closest Match: Modern US Economy (IQ: 65)",
		"Period: 2020s",
		"Outcome: Ongoing - high debt-to-GDP, financialization, inequality",
		"Lessons: Financial sector growth far exceeds productive capacity growth",
		"",
		"RECOMMENDED INTERVENTIONS:",
		"1. Monitor symbol-substance coupling closely",
		"2. Strengthen feedback from physical constraints",
		"3. Improve responsiveness to environmental signals",
		"4. Shorten feedback loops between decision and outcome",
		"5. Balance symbolic demands with biological capacities",
		"6. Provide spaces for recovery and regulation",
		"7. Implement proactive corrective measures",
		"8. Build resilience and redundancy into systems",
		"",
		"---",
		"Generated by NiCE Framework Interactive Lab",
		"3/7/2024",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatQuotient_NoBenchmark(t *testing.T) {
	in := scoring.IQInput{SymbolToSubstanceRatio: 10, TemporalLag: 10, BehavioralSinkIndex: 10}
	got := report.FormatQuotient(in, scoring.ScoreIQ(in), nil, fixedTime)

	for _, want := range []string{
		"Closest Match: n/a\n",
		"Lessons: n/a\n",
		"Score: 10 / 100\n",
		"Risk Level: LOW\n",
		"1. Maintain current grounding practices\n",
		"2. Monitor for emerging drift signals\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestFormatQuotient_DecimalScoreAndMissingLessons(t *testing.T) {
	in := scoring.IQInput{SymbolToSubstanceRatio: 33.33}
	bm := reference.Benchmark{Name: "Custom", Period: "now", IQScore: 12.5, Outcome: "unknown"}
	got := report.FormatQuotient(in, scoring.ScoreIQ(in), &bm, fixedTime)

	for _, want := range []string{
		"Score: 13.3 / 100\n",
		"- Symbol-to-Substance Ratio: 33.33:1\n",
		"Closest Match: Custom (IQ: 12.5)\n",
		"Lessons: n/a\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestFormatQuotient_NoInterventionsKeepsBlankLine(t *testing.T) {
	in := scoring.IQInput{SymbolToSubstanceRatio: 30, TemporalLag: 30, BehavioralSinkIndex: 30}
	res := scoring.ScoreIQ(in)
	res.Interventions = nil
	got := report.FormatQuotient(in, res, nil, fixedTime)

	want := "RECOMMENDED INTERVENTIONS:\n\n\n---\nGenerated by NiCE Framework Interactive Lab\n" + fixedTime.Format("1/2/2006")
	if !strings.HasSuffix(got, want) {
		t.Errorf("report tail mismatch:\n%q", got[len(got)-len(want)-20:])
	}
}
