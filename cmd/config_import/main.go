package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/clo-analytics/internal/course"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/factory"
	"github.com/DjordjeVuckovic/clo-analytics/pkg/config/env"
	"github.com/peterbourgon/ff/v3"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

type importConfig struct {
	Dir     string
	DryRun  bool
	Workers int
}

type importResult struct {
	Imported []string
	Failed   map[string]error
}

func main() {
	fs := flag.NewFlagSet("config_import", flag.ExitOnError)
	cfg := importConfig{}
	fs.StringVar(&cfg.Dir, "dir", "course_data", "Directory of course config files (.json, .yaml, .yml)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Validate files without writing them to the store")
	fs.IntVar(&cfg.Workers, "workers", defaultWorkers, "Number of files imported concurrently")
	_ = ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("CONFIG_IMPORT"))

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/config_import/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store course.Writer = discardWriter{}
	if !cfg.DryRun {
		storageCfg, err := factory.LoadEnv()
		if err != nil {
			slog.Error("Failed to load storage configuration", "error", err)
			os.Exit(1)
		}
		s, err := factory.NewCourseStore(ctx, storageCfg)
		if err != nil {
			slog.Error("Failed to create course config store", "error", err)
			os.Exit(1)
		}
		store = s
	}

	res, err := importDir(ctx, cfg.Dir, store, cfg.Workers)
	if err != nil {
		slog.Error("Import failed", "dir", cfg.Dir, "error", err)
		os.Exit(1)
	}

	slog.Info("Import finished", "imported", len(res.Imported), "failed", len(res.Failed), "dryRun", cfg.DryRun)
	if len(res.Failed) > 0 {
		os.Exit(1)
	}
}

// importDir validates every config file in dir and saves the valid ones. A broken file
// does not stop the others from being imported.
func importDir(ctx context.Context, dir string, store course.Writer, workers int) (*importResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read config dir: %w", err)
	}

	res := &importResult{Failed: make(map[string]error)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		format, ok := course.FormatFromExt(e.Name())
		if !ok {
			slog.Debug("Skipping non config file", "file", e.Name())
			continue
		}
		name := e.Name()
		code := strings.TrimSuffix(name, filepath.Ext(name))

		g.Go(func() error {
			err := importFile(gctx, store, filepath.Join(dir, name), code, format)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("Course config rejected", "file", name, "course", code, "error", err)
				res.Failed[code] = err
				return nil
			}
			slog.Info("Course config imported", "course", code, "format", format)
			res.Imported = append(res.Imported, code)
			return nil
		})
	}

	// rejected files are collected, not returned, so the group never fails
	_ = g.Wait()

	if len(res.Imported) == 0 && len(res.Failed) == 0 {
		return nil, errors.New("no course config files found")
	}
	slices.Sort(res.Imported)
	return res, nil
}

func importFile(ctx context.Context, store course.Writer, path, code string, format course.Format) error {
	if err := course.ValidateCode(code); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc := course.Document{Format: format, Data: data}
	if _, err := course.Lint(code, doc); err != nil {
		return err
	}
	return store.Save(ctx, code, doc)
}

type discardWriter struct{}

func (discardWriter) Save(context.Context, string, course.Document) error { return nil }
