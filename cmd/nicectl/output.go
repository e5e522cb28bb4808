package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/humanparadigm/nice-engine/internal/engine"
	"github.com/humanparadigm/nice-engine/internal/reference"
	"github.com/humanparadigm/nice-engine/internal/wire"
)

const (
	outputText = "text"
	outputJSON = "json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ─── TEXT RENDERERS ───────────────────────────────────────────────────────────

func printPropagation(w io.Writer, a engine.PropagationAssessment) error {
	r := a.Result
	tw := newTable(w)
	fmt.Fprintf(tw, "Symbol distance\t%.2f\n", r.SymbolDistance)
	fmt.Fprintf(tw, "Substance distance\t%.2f\n", r.SubstanceDistance)
	fmt.Fprintf(tw, "Decoupling ratio\t%.2f\n", r.DecouplingRatio)
	fmt.Fprintf(tw, "System fragility\t%.1f\n", r.SystemFragility)
	fmt.Fprintf(tw, "Risk level\t%s\n", r.RiskLevel)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", r.Explanation)
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
	if a.SimilarCase != nil {
		fmt.Fprintln(w)
		printCase(w, *a.SimilarCase)
	}
	return nil
}

func printCase(w io.Writer, c reference.Case) {
	fmt.Fprintf(w, "Similar case: %s (%s), ratio %s\n", c.Name, c.Period, num(c.DecouplingRatio))
	fmt.Fprintf(w, "  %s\n", c.Outcome)
}

func printQuotient(w io.Writer, a engine.QuotientAssessment) error {
	r := a.Result
	tw := newTable(w)
	fmt.Fprintf(tw, "Insanity Quotient\t%s\n", num(r.Score))
	fmt.Fprintf(tw, "Category\t%s\n", r.Category)
	fmt.Fprintf(tw, "Risk level\t%s\n", r.RiskLevel)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", r.Description)
	if len(r.Interventions) > 0 {
		fmt.Fprintln(w, "\nInterventions:")
		for i, iv := range r.Interventions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, iv)
		}
	}
	if b := a.Benchmark; b != nil {
		fmt.Fprintf(w, "\nClosest benchmark: %s (%s), IQ %s\n", b.Name, b.Period, num(b.IQScore))
		fmt.Fprintf(w, "  %s\n", b.Outcome)
	}
	return nil
}

func printTrend(w io.Writer, a engine.TrendAssessment) error {
	fmt.Fprintf(w, "Trend: %s (%d samples)\n", a.Trend, a.Samples)
	if len(a.Ratios) == 0 {
		return nil
	}
	tw := newTable(w)
	fmt.Fprintf(tw, "#\tRatio\n")
	for i, r := range a.Ratios {
		fmt.Fprintf(tw, "%d\t%.2f\n", i+1, r)
	}
	return tw.Flush()
}

func printCases(w io.Writer, cases []reference.Case) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\tName\tPeriod\tRatio\n")
	for _, c := range cases {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Period, num(c.DecouplingRatio))
	}
	return tw.Flush()
}

func printBenchmarks(w io.Writer, benchmarks []reference.Benchmark) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Name\tPeriod\tIQ\n")
	for _, b := range benchmarks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name, b.Period, num(b.IQScore))
	}
	return tw.Flush()
}

func printSummary(w io.Writer, s wire.DatasetSummary) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Version\t%s\n", s.Version)
	fmt.Fprintf(tw, "Cases\t%d\n", s.Cases)
	fmt.Fprintf(tw, "Benchmarks\t%d\n", s.Benchmarks)
	return tw.Flush()
}
