package scoring

// ─── RULE TABLE ───────────────────────────────────────────────────────────────
//
// Interventions are accumulated from independent rule groups evaluated in a
// fixed order. Each group reads one value (a raw input or the overall score),
// and the first of its tiers whose predicate matches contributes its lines.
// Groups never suppress each other, and duplicate lines across groups are kept.

// interventionTier is one predicate → lines pair within a rule group.
type interventionTier struct {
	applies func(v float64) bool
	lines   []string
}

// interventionRule is one independent rule group.
type interventionRule struct {
	name  string
	value func(in IQInput, iq float64) float64
	tiers []interventionTier
}

func above(threshold float64) func(float64) bool {
	return func(v float64) bool { return v > threshold }
}

func below(threshold float64) func(float64) bool {
	return func(v float64) bool { return v < threshold }
}

var interventionRules = []interventionRule{
	{
		name:  "symbol_to_substance_ratio",
		value: func(in IQInput, _ float64) float64 { return in.SymbolToSubstanceRatio },
		tiers: []interventionTier{
			{above(60), []string{
				"Re-ground symbolic systems in physical reality",
				"Reduce reliance on abstract financial instruments",
				"Implement substance-linked monetary reforms",
			}},
			{above(40), []string{
				"Monitor symbol-substance coupling closely",
				"Strengthen feedback from physical constraints",
			}},
		},
	},
	{
		name:  "temporal_lag",
		value: func(in IQInput, _ float64) float64 { return in.TemporalLag },
		tiers: []interventionTier{
			{above(60), []string{
				"Accelerate adaptation to changing conditions",
				"Reduce institutional inertia and path dependencies",
				"Implement real-time monitoring and response systems",
			}},
			{above(40), []string{
				"Improve responsiveness to environmental signals",
				"Shorten feedback loops between decision and outcome",
			}},
		},
	},
	{
		name:  "behavioral_sink_index",
		value: func(in IQInput, _ float64) float64 { return in.BehavioralSinkIndex },
		tiers: []interventionTier{
			{above(60), []string{
				"Reduce symbolic complexity and information overload",
				"Restore biological rhythms and spatial coherence",
				"Create supportive environments for grounded behavior",
			}},
			{above(40), []string{
				"Balance symbolic demands with biological capacities",
				"Provide spaces for recovery and regulation",
			}},
		},
	},
	{
		name:  "overall",
		value: func(_ IQInput, iq float64) float64 { return iq },
		tiers: []interventionTier{
			{above(60), []string{
				"PRIORITY: Comprehensive system redesign required",
				"Establish reality-grounding feedback mechanisms",
				"Prepare for potential system failure scenarios",
			}},
			{above(40), []string{
				"Implement proactive corrective measures",
				"Build resilience and redundancy into systems",
			}},
			{below(20), []string{
				"Maintain current grounding practices",
				"Monitor for emerging drift signals",
			}},
		},
	},
}

// Interventions evaluates every rule group against the raw inputs and the
// unrounded score iq, concatenating the lines of each group's first matching
// tier. The result is never nil.
func Interventions(in IQInput, iq float64) []string {
	out := make([]string, 0, 8)
	for _, rule := range interventionRules {
		out = append(out, rule.evaluate(in, iq)...)
	}
	return out
}

func (r interventionRule) evaluate(in IQInput, iq float64) []string {
	v := r.value(in, iq)
	for _, tier := range r.tiers {
		if tier.applies(v) {
			return tier.lines
		}
	}
	return nil
}
