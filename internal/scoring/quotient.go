package scoring

import "math"

// ─── WEIGHTS ──────────────────────────────────────────────────────────────────

const (
	ratioWeight = 0.4
	lagWeight   = 0.3
	sinkWeight  = 0.3
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// IQInput holds the three Insanity Quotient dimensions, each nominally 0–100
// (the symbol-to-substance ratio conventionally 1–100).
type IQInput struct {
	SymbolToSubstanceRatio float64 `json:"symbol_to_substance_ratio"`
	TemporalLag            float64 `json:"temporal_lag"`
	BehavioralSinkIndex    float64 `json:"behavioral_sink_index"`
}

// CategoryLevel is the five-band IQ classification.
type CategoryLevel string

const (
	LevelAligned          CategoryLevel = "Aligned"
	LevelMildDrift        CategoryLevel = "Mild Drift"
	LevelModerateInsanity CategoryLevel = "Moderate Insanity"
	LevelSevereInsanity   CategoryLevel = "Severe Insanity"
	LevelTerminalInsanity CategoryLevel = "Terminal Insanity"
)

// IQResult is the full output of ScoreIQ.
type IQResult struct {
	Score         float64       `json:"score"`    // rounded to one decimal, not clamped
	Category      string        `json:"category"` // label with band, e.g. "Mild Drift (20-40)"
	CategoryLevel CategoryLevel `json:"category_level"`
	Description   string        `json:"description"`
	Interventions []string      `json:"interventions"`
	RiskLevel     RiskLevel     `json:"risk_level"`
}

// Band is one row of the IQ category table.
type Band struct {
	Level       CategoryLevel
	Label       string
	Description string
	RiskLevel   RiskLevel
	upper       float64 // exclusive
}

// bands are ordered by upper bound; the last one is open-ended so scores
// above 100 still land in Terminal Insanity.
var bands = [...]Band{
	{
		Level:       LevelAligned,
		Label:       "Aligned (0-20)",
		Description: "Symbolic systems closely track physical reality. Sustainable and grounded.",
		RiskLevel:   RiskLow,
		upper:       20,
	},
	{
		Level:       LevelMildDrift,
		Label:       "Mild Drift (20-40)",
		Description: "Minor decoupling emerging. Early warning signs present. Correctable with awareness.",
		RiskLevel:   RiskLow,
		upper:       40,
	},
	{
		Level:       LevelModerateInsanity,
		Label:       "Moderate Insanity (40-60)",
		Description: "Significant symbol-substance gap. System fragility increasing. Intervention needed.",
		RiskLevel:   RiskModerate,
		upper:       60,
	},
	{
		Level:       LevelSevereInsanity,
		Label:       "Severe Insanity (60-80)",
		Description: "Severe reality distortion. System operating on false premises. Collapse risk high.",
		RiskLevel:   RiskHigh,
		upper:       80,
	},
	{
		Level:       LevelTerminalInsanity,
		Label:       "Terminal Insanity (80-100)",
		Description: "Complete decoupling from reality. System collapse imminent or underway.",
		RiskLevel:   RiskCritical,
		upper:       math.Inf(1),
	},
}

// ─── CORE FUNCTIONS ───────────────────────────────────────────────────────────

// ScoreIQ computes the weighted Insanity Quotient:
//
//	iq = ratio×0.4 + lag×0.3 + sink×0.3
//
// Classification and interventions use the unrounded value; only the
// reported Score is rounded to one decimal.
func ScoreIQ(in IQInput) IQResult {
	iq := weightedIQ(in)
	band := ClassifyIQ(iq)

	return IQResult{
		Score:         roundTenth(iq),
		Category:      band.Label,
		CategoryLevel: band.Level,
		Description:   band.Description,
		Interventions: Interventions(in, iq),
		RiskLevel:     band.RiskLevel,
	}
}

// ClassifyIQ returns the band whose half-open interval contains iq.
//
//	[0,20) Aligned · [20,40) Mild Drift · [40,60) Moderate ·
//	[60,80) Severe · [80,∞) Terminal
func ClassifyIQ(iq float64) Band {
	for _, b := range bands {
		if iq < b.upper {
			return b
		}
	}
	// NaN fails every comparison.
	return bands[len(bands)-1]
}

// weightedIQ rounds each product to float64 explicitly so the compiler cannot
// fuse the multiply-adds; results must match bit-for-bit across platforms.
func weightedIQ(in IQInput) float64 {
	return float64(in.SymbolToSubstanceRatio*ratioWeight) +
		float64(in.TemporalLag*lagWeight) +
		float64(in.BehavioralSinkIndex*sinkWeight)
}

// roundTenth rounds half-up (towards +∞) to one decimal place. Adding 0.5
// before flooring would round 0.49999999999999994 up, so the fraction is
// compared instead.
func roundTenth(v float64) float64 {
	x := v * 10
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r / 10
}
