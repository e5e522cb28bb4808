package scoring

import "gonum.org/v1/gonum/stat"

// Trend is the direction of decoupling over a history of inputs.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendWorsening Trend = "worsening"
)

const (
	recentWindow   = 3   // entries in the "recent" average
	worseningRatio = 1.1 // recent > earlier × 1.1
	improvingRatio = 0.9 // recent < earlier × 0.9
)

// DecouplingRatios scores every entry of history and returns its ratios in
// the same order.
func DecouplingRatios(history []PropagationInput) []float64 {
	ratios := make([]float64, len(history))
	for i, in := range history {
		ratios[i] = ScorePropagation(in).DecouplingRatio
	}
	return ratios
}

// DecouplingTrend compares the mean ratio of the last (up to) three entries
// of a chronological history against the mean of everything before them.
// Histories shorter than two entries, or with nothing before the recent
// window, are stable.
func DecouplingTrend(history []PropagationInput) Trend {
	return TrendOf(DecouplingRatios(history))
}

// TrendOf applies the DecouplingTrend rule to precomputed ratios.
func TrendOf(ratios []float64) Trend {
	if len(ratios) < 2 {
		return TrendStable
	}

	split := max(len(ratios)-recentWindow, 0)
	earlier, recent := ratios[:split], ratios[split:]
	if len(earlier) == 0 {
		return TrendStable
	}

	recentAvg := stat.Mean(recent, nil)
	earlierAvg := stat.Mean(earlier, nil)

	switch {
	case recentAvg > earlierAvg*worseningRatio:
		return TrendWorsening
	case recentAvg < earlierAvg*improvingRatio:
		return TrendImproving
	default:
		return TrendStable
	}
}
