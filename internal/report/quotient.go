// Package report renders scored results as fixed-layout plain text suitable
// for download or copy-paste. It performs no scoring of its own.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/humanparadigm/nice-engine/internal/reference"
	"github.com/humanparadigm/nice-engine/internal/scoring"
)

// dateLayout matches the en-US short date the lab has always printed.
const dateLayout = "1/2/2006"

const footer = "Generated by NiCE Framework Interactive Lab"

// FormatQuotient renders an Insanity Quotient assessment. benchmark may be
// nil when the reference table is empty; the comparison fields then read
// "n/a". generatedAt is printed as the report date.
func FormatQuotient(in scoring.IQInput, res scoring.IQResult, benchmark *reference.Benchmark, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("INSANITY QUOTIENT ASSESSMENT REPORT\n\n")

	fmt.Fprintf(&sb, "Score: %s / 100\n", num(res.Score))
	fmt.Fprintf(&sb, "Category: %s\n", res.Category)
	fmt.Fprintf(&sb, "Risk Level: %s\n\n", strings.ToUpper(string(res.RiskLevel)))

	sb.WriteString("INPUT PARAMETERS:\n")
	fmt.Fprintf(&sb, "- Symbol-to-Substance Ratio: %s:1\n", num(in.SymbolToSubstanceRatio))
	fmt.Fprintf(&sb, "- Temporal Lag: %s%%\n", num(in.TemporalLag))
	fmt.Fprintf(&sb, "- Behavioral Sink Index: %s\n\n", num(in.BehavioralSinkIndex))

	sb.WriteString("INTERPRETATION:\n")
	sb.WriteString(res.Description)
	sb.WriteString("\n\n")

	sb.WriteString("HISTORICAL COMPARISON:\n")
	if benchmark != nil {
		fmt.Fprintf(&sb, "Closest Match: %s (IQ: %s)\n", benchmark.Name, num(benchmark.IQScore))
		fmt.Fprintf(&sb, "Period: %s\n", benchmark.Period)
		fmt.Fprintf(&sb, "Outcome: %s\n", benchmark.Outcome)
		fmt.Fprintf(&sb, "Lessons: %s\n\n", orNA(benchmark.Lessons))
	} else {
		sb.WriteString("Closest Match: n/a\nPeriod: n/a\nOutcome: n/a\nLessons: n/a\n\n")
	}

	// The numbered list is joined, so an empty list still leaves its own
	// blank line before the rule.
	sb.WriteString("RECOMMENDED INTERVENTIONS:\n")
	items := make([]string, len(res.Interventions))
	for i, line := range res.Interventions {
		items[i] = fmt.Sprintf("%d. %s", i+1, line)
	}
	sb.WriteString(strings.Join(items, "\n"))

	sb.WriteString("\n\n---\n")
	sb.WriteString(footer)
	sb.WriteString("\n")
	sb.WriteString(generatedAt.Format(dateLayout))

	return sb.String()
}

// num prints a float the way a person would type it: 80 not 80.000000,
// 13.3 not 13.300000.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "n/a"
	}
	return s
}
