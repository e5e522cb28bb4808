// Package source decides which reference dataset a process scores against:
// a YAML file, a version published to Postgres, or the built-in tables.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/humanparadigm/nice-engine/internal/config"
	"github.com/humanparadigm/nice-engine/internal/reference"
	"github.com/humanparadigm/nice-engine/internal/store"
)

// Loader loads a published dataset version. *store.Store satisfies it.
type Loader interface {
	LoadDataset(ctx context.Context, version string) (reference.Dataset, error)
}

// Options selects the dataset. File wins over Loader; with neither, the
// built-in tables are used.
type Options struct {
	File    string
	Version string // "" selects the latest published version
	Loader  Loader // nil when no database is configured
}

// Resolve loads the dataset selected by opts and reports where it came from.
//
// An empty database (nothing published yet) falls back to the built-in
// tables when no specific version was asked for. Asking for a version that
// does not exist is an error.
func Resolve(ctx context.Context, opts Options, logger *slog.Logger) (reference.Dataset, config.DatasetSource, error) {
	switch {
	case opts.File != "":
		ds, err := reference.LoadFile(opts.File)
		if err != nil {
			return reference.Dataset{}, config.SourceFile, fmt.Errorf("dataset file %s: %w", opts.File, err)
		}
		return ds, config.SourceFile, nil

	case opts.Loader != nil:
		ds, err := opts.Loader.LoadDataset(ctx, opts.Version)
		if errors.Is(err, store.ErrDatasetNotFound) && opts.Version == "" {
			logger.Warn("no dataset published to the database, using built-in tables",
				"version", reference.BuiltinVersion,
			)
			return reference.Builtin(), config.SourceBuiltin, nil
		}
		if err != nil {
			return reference.Dataset{}, config.SourceDatabase, err
		}
		return ds, config.SourceDatabase, nil

	default:
		return reference.Builtin(), config.SourceBuiltin, nil
	}
}
