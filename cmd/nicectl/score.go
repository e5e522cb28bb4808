package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/humanparadigm/nice-engine/internal/scoring"
	"github.com/humanparadigm/nice-engine/internal/wire"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPropagateCmd(opts *rootOptions) *cobra.Command {
	var in scoring.PropagationInput

	cmd := &cobra.Command{
		Use:   "propagate",
		Short: "Score symbol vs substance propagation",
		Long: `Computes the decoupling ratio, system fragility and risk level for one set of
propagation speeds, and names the closest historical case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			s, release, err := opts.newScorer(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer release()

			a, err := s.Propagation(ctx, in)
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), a)
			}
			return printPropagation(cmd.OutOrStdout(), a)
		},
	}
	propagationFlags(cmd, &in)
	return cmd
}

func newSimilarCmd(opts *rootOptions) *cobra.Command {
	var in scoring.PropagationInput

	cmd := &cobra.Command{
		Use:   "similar",
		Short: "Find the historical case closest to a propagation input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			s, release, err := opts.newScorer(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer release()

			a, err := s.Propagation(ctx, in)
			if err != nil {
				return err
			}
			if a.SimilarCase == nil {
				return fmt.Errorf("dataset has no historical cases")
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), a.SimilarCase)
			}
			printCase(cmd.OutOrStdout(), *a.SimilarCase)
			return nil
		},
	}
	propagationFlags(cmd, &in)
	return cmd
}

func propagationFlags(cmd *cobra.Command, in *scoring.PropagationInput) {
	cmd.Flags().Float64Var(&in.SymbolSpeed, "symbol-speed", 0, "Symbol propagation speed (1-100)")
	cmd.Flags().Float64Var(&in.SubstanceSpeed, "substance-speed", 0, "Substance propagation speed (1-50)")
	cmd.Flags().Float64Var(&in.TimeElapsed, "time-elapsed", 0, "Elapsed time (0-100)")
	_ = cmd.MarkFlagRequired("symbol-speed")
	_ = cmd.MarkFlagRequired("substance-speed")
	_ = cmd.MarkFlagRequired("time-elapsed")
}

func newIQCmd(opts *rootOptions) *cobra.Command {
	var (
		in     scoring.IQInput
		report bool
	)

	cmd := &cobra.Command{
		Use:   "iq",
		Short: "Compute the Insanity Quotient",
		Long: `Computes the weighted Insanity Quotient, its category and recommended
interventions. With --report, prints the plain-text assessment report instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			s, release, err := opts.newScorer(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			if report {
				r, err := s.Report(ctx, in)
				if err != nil {
					return err
				}
				if opts.output == outputJSON {
					return writeJSON(out, r)
				}
				_, err = io.WriteString(out, r.Report)
				return err
			}

			a, err := s.Quotient(ctx, in)
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(out, a)
			}
			return printQuotient(out, a)
		},
	}

	cmd.Flags().Float64Var(&in.SymbolToSubstanceRatio, "ratio", 0, "Symbol-to-substance ratio (1-100)")
	cmd.Flags().Float64Var(&in.TemporalLag, "lag", 0, "Temporal lag (0-100)")
	cmd.Flags().Float64Var(&in.BehavioralSinkIndex, "sink", 0, "Behavioral sink index (0-100)")
	cmd.Flags().BoolVar(&report, "report", false, "Print the plain-text assessment report")
	_ = cmd.MarkFlagRequired("ratio")
	_ = cmd.MarkFlagRequired("lag")
	_ = cmd.MarkFlagRequired("sink")
	return cmd
}

func newTrendCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Classify the decoupling trend of a history of inputs",
		Long: `Reads a chronological history of propagation inputs, as YAML or JSON, and
reports whether decoupling is improving, stable or worsening. The document is
either a list of inputs or an object with a "history" list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := readHistory(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			s, release, err := opts.newScorer(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer release()

			a, err := s.Trend(ctx, history)
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), a)
			}
			return printTrend(cmd.OutOrStdout(), a)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "History file, or - for stdin")
	return cmd
}

// readHistory parses a trend history. YAML is decoded generically and
// re-checked through the JSON request rules, so both formats share the same
// required-field and unknown-field checks.
func readHistory(stdin io.Reader, file string) ([]scoring.PropagationInput, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	switch doc.(type) {
	case []any:
		doc = map[string]any{"history": doc}
	case map[string]any:
	case nil:
		return nil, fmt.Errorf("parsing history: empty document")
	default:
		return nil, fmt.Errorf("parsing history: expected a list or an object with a history list")
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	var req wire.TrendRequest
	if err := wire.DecodeBytes(raw, &req); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	return req.Inputs()
}
