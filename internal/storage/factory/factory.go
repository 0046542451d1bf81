package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/clo-analytics/internal/course"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/es"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/pg"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/sqlite"
)

// NewCourseStore creates the course config store selected by cfg.Type.
func NewCourseStore(ctx context.Context, cfg *StorageConfig) (course.ReadWriteStore, error) {
	slog.Info("Creating course config store", "storageType", cfg.Type)

	switch cfg.Type {
	case storage.FS:
		return course.NewFSStore(cfg.Dir)

	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewCourseStore(pool), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewCourseStore(ctx, *cfg.Es)

	case storage.SQLite:
		sqliteCfg := sqlite.Config{}
		if cfg.SQLite != nil {
			sqliteCfg = *cfg.SQLite
		}
		return sqlite.NewCourseStore(ctx, sqliteCfg)

	case storage.InMem:
		return course.NewMemStore(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
