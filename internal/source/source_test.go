package source_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/humanparadigm/nice-engine/internal/config"
	"github.com/humanparadigm/nice-engine/internal/reference"
	"github.com/humanparadigm/nice-engine/internal/source"
	"github.com/humanparadigm/nice-engine/internal/store"
)

type stubLoader struct {
	ds        reference.Dataset
	err       error
	requested []string
}

func (l *stubLoader) LoadDataset(_ context.Context, version string) (reference.Dataset, error) {
	l.requested = append(l.requested, version)
	return l.ds, l.err
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeDataset(t *testing.T, version string) string {
	t.Helper()
	ds := reference.Builtin()
	ds.Version = version

	path := filepath.Join(t.TempDir(), "tables.yaml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := reference.Encode(f, ds); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve(t *testing.T) {
	published := reference.Builtin()
	published.Version = "2025.1"

	tests := []struct {
		name        string
		opts        func(t *testing.T) source.Options
		wantVersion string
		wantSource  config.DatasetSource
	}{
		{
			name:        "builtin when nothing configured",
			opts:        func(*testing.T) source.Options { return source.Options{} },
			wantVersion: reference.BuiltinVersion,
			wantSource:  config.SourceBuiltin,
		},
		{
			name: "file wins over database",
			opts: func(t *testing.T) source.Options {
				return source.Options{File: writeDataset(t, "from-file"), Loader: &stubLoader{ds: published}}
			},
			wantVersion: "from-file",
			wantSource:  config.SourceFile,
		},
		{
			name:        "database",
			opts:        func(*testing.T) source.Options { return source.Options{Loader: &stubLoader{ds: published}} },
			wantVersion: "2025.1",
			wantSource:  config.SourceDatabase,
		},
		{
			name: "empty database falls back to builtin",
			opts: func(*testing.T) source.Options {
				return source.Options{Loader: &stubLoader{err: fmt.Errorf("wrapped: %w", store.ErrDatasetNotFound)}}
			},
			wantVersion: reference.BuiltinVersion,
			wantSource:  config.SourceBuiltin,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, src, err := source.Resolve(context.Background(), tt.opts(t), discard)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if ds.Version != tt.wantVersion || src != tt.wantSource {
				t.Errorf("got %q from %s, want %q from %s", ds.Version, src, tt.wantVersion, tt.wantSource)
			}
		})
	}
}

func TestResolve_PassesVersionToLoader(t *testing.T) {
	loader := &stubLoader{ds: reference.Builtin()}
	if _, _, err := source.Resolve(context.Background(), source.Options{Version: "2024.1", Loader: loader}, discard); err != nil {
		t.Fatal(err)
	}
	if len(loader.requested) != 1 || loader.requested[0] != "2024.1" {
		t.Errorf("requested: %v", loader.requested)
	}
}

func TestResolve_Errors(t *testing.T) {
	boom := errors.New("connection refused")
	tests := []struct {
		name string
		opts source.Options
		want error
	}{
		{"missing requested version", source.Options{Version: "9999", Loader: &stubLoader{err: store.ErrDatasetNotFound}}, store.ErrDatasetNotFound},
		{"database failure", source.Options{Loader: &stubLoader{err: boom}}, boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := source.Resolve(context.Background(), tt.opts, discard)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("unreadable file", func(t *testing.T) {
		_, _, err := source.Resolve(context.Background(), source.Options{File: filepath.Join(t.TempDir(), "absent.yaml")}, discard)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("got %v", err)
		}
	})
}
