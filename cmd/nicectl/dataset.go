package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/humanparadigm/nice-engine/internal/db"
	"github.com/humanparadigm/nice-engine/internal/reference"
	"github.com/spf13/cobra"
)

var errLocalOnly = errors.New("the server does not expose full tables; run without --remote")

func newCasesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "List the historical decoupling cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.localDataset(cmd)
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), ds.Cases)
			}
			return printCases(cmd.OutOrStdout(), ds.Cases)
		},
	}
}

func newBenchmarksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "benchmarks",
		Short: "List the historical Insanity Quotient benchmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.localDataset(cmd)
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), ds.Benchmarks)
			}
			return printBenchmarks(cmd.OutOrStdout(), ds.Benchmarks)
		},
	}
}

// localDataset loads the dataset selected by the root flags for commands
// that need the full tables.
func (o *rootOptions) localDataset(cmd *cobra.Command) (reference.Dataset, error) {
	if o.remote != "" {
		return reference.Dataset{}, errLocalOnly
	}
	ctx, cancel := o.context(cmd)
	defer cancel()

	ds, release, err := o.loadDataset(ctx, cmd.ErrOrStderr())
	if err != nil {
		return reference.Dataset{}, err
	}
	release()
	return ds, nil
}

// ─── DATASET ──────────────────────────────────────────────────────────────────

func newDatasetCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect, export and publish reference datasets",
	}
	cmd.AddCommand(
		newDatasetShowCmd(opts),
		newDatasetExportCmd(opts),
		newDatasetPublishCmd(opts),
		newDatasetVersionsCmd(opts),
		newDatasetMigrateCmd(opts),
	)
	return cmd
}

func newDatasetShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the version and size of the active dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			s, release, err := opts.newScorer(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer release()

			sum, err := s.Summary(ctx)
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), sum)
			}
			return printSummary(cmd.OutOrStdout(), sum)
		},
	}
}

func newDatasetExportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active dataset as YAML",
		Long: `Writes the active dataset as a YAML document that --dataset and
"dataset publish" accept. Export the built-in tables to start a new version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.localDataset(cmd)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return reference.Encode(cmd.OutOrStdout(), ds)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := reference.Encode(f, ds); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote dataset %s to %s\n", ds.Version, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "-", "Output file, or - for stdout")
	return cmd
}

func newDatasetPublishCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <file>",
		Short: "Publish a YAML dataset file as a new database version",
		Long: `Validates the dataset file and stores it under its version. Published
versions are immutable; publishing an existing version fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := reference.LoadFile(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			st, release, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer release()

			v, err := st.PublishDataset(ctx, ds)
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"version":      v.Version,
					"published_at": v.PublishedAt,
					"cases":        len(ds.Cases),
					"benchmarks":   len(ds.Benchmarks),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Published dataset %s (%d cases, %d benchmarks)\n",
				v.Version, len(ds.Cases), len(ds.Benchmarks))
			return nil
		},
	}
}

func newDatasetVersionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List dataset versions published to the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			st, release, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer release()

			rows, err := st.ListVersions(ctx)
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No dataset versions published.")
				return nil
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "Version\tPublished\tCases\tBenchmarks\n")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", r.Version, r.PublishedAt.Format("2006-01-02 15:04"), r.CaseCount, r.BenchmarkCount)
			}
			return tw.Flush()
		},
	}
}

func newDatasetMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.databaseURL == "" {
				return fmt.Errorf("--database-url (or DATABASE_URL) is required")
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			pool, err := db.Open(ctx, opts.databaseURL, opts.dbMaxConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date.")
			return nil
		},
	}
}
