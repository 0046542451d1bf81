package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/course"
	_ "modernc.org/sqlite" // driver: sqlite
)

const defaultDSN = "file:clo_analytics.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"

const schema = `
CREATE TABLE IF NOT EXISTS course_configs (
  code TEXT PRIMARY KEY,
  format TEXT NOT NULL CHECK (format IN ('json', 'yaml')),
  document TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);
`

type Config struct {
	DSN string
}

// CourseStore keeps course configuration documents in a local SQLite database, for
// single-node deployments that want a store without running PostgreSQL.
type CourseStore struct {
	db *sql.DB
}

func NewCourseStore(ctx context.Context, cfg Config) (*CourseStore, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ensure sqlite schema: %w", err)
	}

	return &CourseStore{db: db}, nil
}

func (s *CourseStore) Fetch(ctx context.Context, code string) (*course.Document, error) {
	const q = `SELECT format, document FROM course_configs WHERE code = ?`

	var format, data string
	err := s.db.QueryRowContext(ctx, q, code).Scan(&format, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NewConfigNotFound(code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query course config %s: %w", code, err)
	}

	return &course.Document{Format: course.Format(format), Data: []byte(data)}, nil
}

func (s *CourseStore) Save(ctx context.Context, code string, doc course.Document) error {
	const cmd = `
		INSERT INTO course_configs (code, format, document, updated_at)
		VALUES (?, ?, ?, strftime('%s', 'now'))
		ON CONFLICT (code) DO UPDATE
		SET format = excluded.format, document = excluded.document, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, cmd, code, string(doc.Format), string(doc.Data)); err != nil {
		return fmt.Errorf("failed to save course config %s: %w", code, err)
	}
	slog.Info("Course config saved", "course", code, "format", doc.Format, "store", "sqlite")
	return nil
}

func (s *CourseStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *CourseStore) Close() {
	if err := s.db.Close(); err != nil {
		slog.Warn("Failed to close sqlite database", "error", err)
	}
}
