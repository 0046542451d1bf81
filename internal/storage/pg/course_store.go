package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/course"
	"github.com/jackc/pgx/v5"
)

// CourseStore keeps course configuration documents in the course_configs table.
// Documents are stored as text, not jsonb, so the assessment key order is preserved.
type CourseStore struct {
	pool *ConnectionPool
}

func NewCourseStore(pool *ConnectionPool) *CourseStore {
	return &CourseStore{pool: pool}
}

func (s *CourseStore) Fetch(ctx context.Context, code string) (*course.Document, error) {
	const q = `SELECT format, document FROM course_configs WHERE code = $1`

	var (
		format string
		data   string
	)
	err := s.pool.conn.QueryRow(ctx, q, code).Scan(&format, &data)
	if errors.Is(err, pgx.ErrNoRows) {
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
		VALUES ($1, $2, $3, now())
		ON CONFLICT (code) DO UPDATE
		SET format = EXCLUDED.format, document = EXCLUDED.document, updated_at = now()
	`
	if _, err := s.pool.conn.Exec(ctx, cmd, code, string(doc.Format), string(doc.Data)); err != nil {
		return fmt.Errorf("failed to save course config %s: %w", code, err)
	}
	slog.Info("Course config saved", "course", code, "format", doc.Format, "store", "pg")
	return nil
}

func (s *CourseStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *CourseStore) Close() {
	s.pool.Close()
}
