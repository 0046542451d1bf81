package factory

import (
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/clo-analytics/internal/course"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_DefaultsToFS(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("COURSE_CONFIG_DIR", "")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, storage.FS, cfg.Type)
	assert.Equal(t, "course_data", cfg.Dir)
}

func TestLoadEnv_RejectsUnknownType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "mongo")

	_, err := LoadEnv()
	assert.Error(t, err)
}

func TestLoadEnv_PGRequiresConnString(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "pg")
	t.Setenv("PG_CONNECTION_STRING", "")

	_, err := LoadEnv()
	assert.Error(t, err)

	t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost:5432/clo")
	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/clo", cfg.Pg.ConnStr)
}

func TestLoadEnv_ES(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "es")
	t.Setenv("ES_ADDRESSES", "")

	_, err := LoadEnv()
	assert.Error(t, err)

	t.Setenv("ES_ADDRESSES", "http://es1:9200, ,http://es2:9200")
	t.Setenv("ES_INDEX_NAME", "")
	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "course_configs", cfg.Es.IndexName)
	assert.Len(t, cfg.Es.Addresses, 2)
}

func TestNewCourseStore_LocalBackends(t *testing.T) {
	ctx := t.Context()

	s, err := NewCourseStore(ctx, &StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.IsType(t, &course.MemStore{}, s)

	s, err = NewCourseStore(ctx, &StorageConfig{Type: storage.FS, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &course.FSStore{}, s)

	dsn := "file:" + filepath.Join(t.TempDir(), "clo.db") + "?mode=rwc"
	s, err = NewCourseStore(ctx, &StorageConfig{Type: storage.SQLite, SQLite: &sqlite.Config{DSN: dsn}})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.CourseStore{}, s)
	s.(*sqlite.CourseStore).Close()

	_, err = NewCourseStore(ctx, &StorageConfig{Type: "redis"})
	assert.Error(t, err)

	_, err = NewCourseStore(ctx, &StorageConfig{Type: storage.PG})
	assert.Error(t, err)
}

func TestLoadEnv_SQLite(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "sqlite")
	t.Setenv("SQLITE_DSN", "file:test.db")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, storage.SQLite, cfg.Type)
	assert.Equal(t, "file:test.db", cfg.SQLite.DSN)
}
