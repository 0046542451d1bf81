package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/clo-analytics/internal/course"
	"github.com/DjordjeVuckovic/clo-analytics/internal/grades"
	"github.com/DjordjeVuckovic/clo-analytics/internal/pipeline"
	"github.com/DjordjeVuckovic/clo-analytics/internal/report"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/factory"
	"github.com/DjordjeVuckovic/clo-analytics/pkg/config/env"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/clo_report/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		slog.Error("CLO report failed", "course", cfg.Course, "grades", cfg.Grades, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig, stdout io.Writer) error {
	store, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}

	comma, err := cfg.comma()
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Grades)
	if err != nil {
		return fmt.Errorf("open grades file: %w", err)
	}
	defer f.Close()

	svc := pipeline.NewService(course.NewLoader(store), pipeline.WithCSVOptions(grades.WithComma(comma)))
	result, err := svc.RunCSV(ctx, f, cfg.Course)
	if err != nil {
		return err
	}

	return outputReport(result, cfg, stdout)
}

func newStore(ctx context.Context, cfg cliConfig) (course.Store, error) {
	if cfg.ConfigDir != "" {
		return course.NewFSStore(cfg.ConfigDir)
	}
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}
	return factory.NewCourseStore(ctx, storageCfg)
}

func outputReport(r *pipeline.Report, cfg cliConfig, stdout io.Writer) error {
	if cfg.Output != "" {
		if err := report.WriteJSON(r, cfg.Output); err != nil {
			return err
		}
		slog.Info("Report written", "path", cfg.Output, "report", r.ID)
		return nil
	}

	if cfg.Format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return report.WriteTable(r, stdout)
}
