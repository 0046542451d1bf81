package course

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/clo-analytics/internal/domain"
)

// Loader resolves a course code into a validated configuration. It holds no state besides
// the store, so it is safe for concurrent use when the store is.
type Loader struct {
	store Store
}

func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

func (l *Loader) Load(ctx context.Context, code string) (*domain.CourseConfig, error) {
	if err := ValidateCode(code); err != nil {
		return nil, err
	}

	doc, err := l.store.Fetch(ctx, code)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(code, *doc)
	if err != nil {
		slog.Warn("Rejected course configuration", "course", code, "error", err)
		return nil, err
	}

	slog.Info("Loaded course configuration",
		"course", code,
		"assessments", len(cfg.Assessments),
		"clos", len(cfg.CLOWeights),
	)
	return cfg, nil
}
