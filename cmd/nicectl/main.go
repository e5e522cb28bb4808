// Package main provides nicectl, a command-line client for the NiCE scoring
// engine. It scores locally against a dataset file, a published database
// version or the built-in tables, or remotely against a running server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	datasetFile    string
	datasetVersion string
	databaseURL    string
	dbMaxConns     int
	remote         string
	output         string
	timeout        time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "nicectl",
		Short: "Score symbol/substance decoupling risk",
		Long: `nicectl runs the Asymmetric Propagation and Insanity Quotient calculators
and compares results against historical cases and benchmarks.

Scoring is local unless --remote names a running server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.datasetFile, "dataset", os.Getenv("DATASET_FILE"), "Path to a YAML dataset file")
	f.StringVar(&opts.datasetVersion, "dataset-version", os.Getenv("DATASET_VERSION"), "Published dataset version (default: latest)")
	f.StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
	f.IntVar(&opts.dbMaxConns, "db-max-conns", envInt("DB_MAX_CONNS", 5), "Maximum open database connections")
	f.StringVar(&opts.remote, "remote", os.Getenv("NICE_REMOTE"), "Address of a running server, e.g. localhost:8080")
	f.StringVarP(&opts.output, "output", "o", "text", "Output format: text or json")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Deadline for each command")

	root.AddCommand(
		newPropagateCmd(opts),
		newSimilarCmd(opts),
		newIQCmd(opts),
		newTrendCmd(opts),
		newCasesCmd(opts),
		newBenchmarksCmd(opts),
		newDatasetCmd(opts),
	)
	return root
}

func (o *rootOptions) validate() error {
	switch o.output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", o.output)
	}
	if o.dbMaxConns < 1 {
		return fmt.Errorf("--db-max-conns must be at least 1")
	}
	if o.timeout <= 0 {
		return fmt.Errorf("--timeout must be positive")
	}
	if o.datasetFile != "" && o.datasetVersion != "" {
		return fmt.Errorf("--dataset and --dataset-version are mutually exclusive")
	}
	if o.remote != "" && (o.datasetFile != "" || o.datasetVersion != "") {
		return fmt.Errorf("--remote scores against the server's dataset; drop --dataset and --dataset-version")
	}
	return nil
}

// envInt reads an integer flag default from the environment.
func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// context derives the per-command deadline from the command's context.
func (o *rootOptions) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}
