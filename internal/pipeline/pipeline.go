package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/clo-analytics/internal/clo"
	"github.com/DjordjeVuckovic/clo-analytics/internal/domain"
	"github.com/DjordjeVuckovic/clo-analytics/internal/grades"
	"github.com/google/uuid"
)

// ConfigLoader resolves a course code into its configuration.
type ConfigLoader interface {
	Load(ctx context.Context, code string) (*domain.CourseConfig, error)
}

type Report struct {
	ID          uuid.UUID                   `json:"id"`
	Course      string                      `json:"course"`
	GeneratedAt time.Time                   `json:"generatedAt"`
	Students    int                         `json:"students"`
	Assessments []clo.AssessmentSummary     `json:"assessments"`
	Results     []domain.CLOResult          `json:"results"`
	Diagnostics domain.NormalizeDiagnostics `json:"diagnostics"`
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithCSVOptions(opts ...grades.CSVReaderOption) Option {
	return func(s *Service) {
		s.csvOpts = append(s.csvOpts, opts...)
	}
}

// Service composes config loading, normalization and aggregation. It keeps no state
// between runs.
type Service struct {
	loader  ConfigLoader
	now     func() time.Time
	csvOpts []grades.CSVReaderOption
}

func NewService(loader ConfigLoader, opts ...Option) *Service {
	s := &Service{
		loader: loader,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) LoadConfig(ctx context.Context, courseCode string) (*domain.CourseConfig, error) {
	return s.loader.Load(ctx, courseCode)
}

// RunCSV decodes a CSV grades file and runs the pipeline on it.
func (s *Service) RunCSV(ctx context.Context, r io.Reader, courseCode string) (*Report, error) {
	// config first: a broken course must fail before the upload is even decoded
	cfg, err := s.loader.Load(ctx, courseCode)
	if err != nil {
		return nil, err
	}

	raw, err := grades.NewCSVReader(r, s.csvOpts...).Read()
	if err != nil {
		return nil, err
	}

	return s.run(cfg, raw)
}

// Run computes the CLO report of a decoded grades table for courseCode.
func (s *Service) Run(ctx context.Context, raw domain.RawGradesTable, courseCode string) (*Report, error) {
	cfg, err := s.loader.Load(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	return s.run(cfg, raw)
}

func (s *Service) run(cfg *domain.CourseConfig, raw domain.RawGradesTable) (*Report, error) {
	start := s.now()

	table, diag, err := grades.Normalize(raw, cfg.Assessments.Names())
	if err != nil {
		slog.Warn("Grades normalization failed", "course", cfg.Code, "error", err)
		return nil, err
	}
	logDiagnostics(cfg.Code, diag, len(table.Rows))

	summary, err := clo.Compute(table, cfg.Assessments, cfg.CLOWeights)
	if err != nil {
		slog.Warn("CLO aggregation failed", "course", cfg.Code, "error", err)
		return nil, err
	}

	report := &Report{
		ID:          uuid.New(),
		Course:      cfg.Code,
		GeneratedAt: start.UTC(),
		Students:    len(table.Rows),
		Assessments: summary.Assessments,
		Results:     summary.Results,
		Diagnostics: diag,
	}

	met := 0
	for _, r := range report.Results {
		if r.Met {
			met++
		}
	}
	slog.Info("CLO report computed",
		"report", report.ID,
		"course", cfg.Code,
		"students", report.Students,
		"clos", len(report.Results),
		"met", met,
	)
	return report, nil
}

func logDiagnostics(course string, d domain.NormalizeDiagnostics, rows int) {
	attrs := []any{
		"course", course,
		"rows", rows,
		"headerDropped", d.HeaderDropped,
		"leadingColumnsDropped", d.LeadingColumnsDropped,
		"emptyRowsDropped", d.EmptyRowsDropped,
		"coercedCells", d.CoercedCells,
		"missingRowsDropped", d.MissingRowsDropped,
	}
	if d.CoercedCells > 0 || d.MissingRowsDropped > 0 {
		slog.Warn("Grades table contained unparsable values", attrs...)
		return
	}
	slog.Debug("Grades table normalized", attrs...)
}
