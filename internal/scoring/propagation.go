// Package scoring implements the two decoupling risk calculators: the
// Asymmetric Propagation model and the Insanity Quotient model, plus the
// trend analysis over a history of propagation inputs.
//
// Every function here is pure and deterministic. Inputs are never validated:
// out-of-range values pass straight through the formulas and produce a
// well-defined (if unintuitive) result. Range checks belong to callers.
package scoring

import "fmt"

// ─── CONSTANTS ────────────────────────────────────────────────────────────────

// substanceFloor keeps the decoupling ratio finite when substance speed or
// elapsed time is zero.
const substanceFloor = 0.1

// Ratio breakpoints for ClassifyRatio. Intervals are left-inclusive.
const (
	moderateRatio = 2
	highRatio     = 4
	criticalRatio = 6
)

// fragilityPerRatio is the fragility gained per unit of ratio above 1.
const fragilityPerRatio = 20

// ─── TYPES ────────────────────────────────────────────────────────────────────

// RiskLevel is the four-bucket classification shared by both calculators.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// PropagationInput holds the three slider values of the propagation
// simulator. Conventional ranges: SymbolSpeed 1–100, SubstanceSpeed 1–50,
// TimeElapsed 0–100.
type PropagationInput struct {
	SymbolSpeed    float64 `json:"symbol_speed"`
	SubstanceSpeed float64 `json:"substance_speed"`
	TimeElapsed    float64 `json:"time_elapsed"`
}

// PropagationResult is the full output of ScorePropagation.
type PropagationResult struct {
	SymbolDistance    float64   `json:"symbol_distance"`
	SubstanceDistance float64   `json:"substance_distance"`
	DecouplingRatio   float64   `json:"decoupling_ratio"`
	SystemFragility   float64   `json:"system_fragility"` // ≤ 100, negative below ratio 1
	RiskLevel         RiskLevel `json:"risk_level"`
	Explanation       string    `json:"explanation"`
	Warnings          []string  `json:"warnings"`
}

// ─── CORE FUNCTIONS ───────────────────────────────────────────────────────────

// ScorePropagation models how far symbols and substance travel over the same
// elapsed time and how fragile the resulting gap makes the system.
//
//	symbolDistance    = symbolSpeed    × timeElapsed / 100
//	substanceDistance = substanceSpeed × timeElapsed / 100
//	ratio             = symbolDistance / max(substanceDistance, 0.1)
//	fragility         = min((ratio − 1) × 20, 100)
//
// Fragility has no lower clamp, so ratios below 1 report negative fragility
// while still being classified as low risk.
func ScorePropagation(in PropagationInput) PropagationResult {
	symbolDistance := in.SymbolSpeed * in.TimeElapsed / 100
	substanceDistance := in.SubstanceSpeed * in.TimeElapsed / 100

	ratio := symbolDistance / max(substanceDistance, substanceFloor)
	fragility := min((ratio-1)*fragilityPerRatio, 100)

	return PropagationResult{
		SymbolDistance:    symbolDistance,
		SubstanceDistance: substanceDistance,
		DecouplingRatio:   ratio,
		SystemFragility:   fragility,
		RiskLevel:         ClassifyRatio(ratio),
		Explanation:       explainPropagation(ratio, fragility),
		Warnings:          propagationWarnings(ratio, fragility),
	}
}

// ClassifyRatio maps a decoupling ratio to a risk level.
//
//	[0, 2) low · [2, 4) moderate · [4, 6) high · [6, ∞) critical
func ClassifyRatio(ratio float64) RiskLevel {
	switch {
	case ratio < moderateRatio:
		return RiskLow
	case ratio < highRatio:
		return RiskModerate
	case ratio < criticalRatio:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// ─── NARRATIVE ────────────────────────────────────────────────────────────────

// explainPropagation picks one sentence per ratio band. The explanation bands
// (1.5, 3, 5) are not the risk breakpoints.
func explainPropagation(ratio, fragility float64) string {
	switch {
	case ratio < 1.5:
		return "Symbols and substance are closely coupled. System is stable and grounded in physical reality."
	case ratio < 3:
		return fmt.Sprintf("Symbols are propagating %.1fx faster than substance. Moderate decoupling detected. Monitor for increasing fragility.", ratio)
	case ratio < 5:
		return fmt.Sprintf("Significant decoupling: symbols moving %.1fx faster than substance. System fragility at %.0f%%. High risk of instability.", ratio, fragility)
	default:
		return fmt.Sprintf("CRITICAL: Extreme decoupling detected. Symbols %.1fx ahead of substance. System operating on false premises. Collapse risk imminent.", ratio)
	}
}

// propagationWarnings uses strict > comparisons against the ratio, so a ratio
// of exactly 6 is classified critical but only earns high-tier warnings.
// Only the first matching branch contributes.
func propagationWarnings(ratio, fragility float64) []string {
	switch {
	case ratio > 6:
		return []string{
			"⚠️ CRITICAL: System decoupling exceeds sustainable thresholds",
			"⚠️ Immediate reality-grounding interventions required",
			"⚠️ Prepare for potential rapid collapse scenarios",
		}
	case ratio > 4:
		return []string{
			"⚠️ HIGH RISK: Significant symbol-substance gap",
			"⚠️ Implement corrective measures to reduce decoupling",
		}
	case ratio > 2:
		return []string{
			"⚠️ MODERATE RISK: Decoupling trend detected",
			"⚠️ Monitor feedback loops and tighten coupling",
		}
	case fragility > 20:
		return []string{"ℹ️ Mild fragility present - maintain vigilance"}
	default:
		return []string{"✓ System coupling within healthy range"}
	}
}
