package factory

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/clo-analytics/internal/storage"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/es"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/pg"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/sqlite"
	"github.com/DjordjeVuckovic/clo-analytics/pkg/utils"
)

const defaultCourseConfigDir = "course_data"

type StorageConfig struct {
	storage.Type
	Dir    string
	Pg     *pg.PoolConfig
	Es     *es.ClientConfig
	SQLite *sqlite.Config
}

// LoadEnv reads the course config store settings. STORAGE_TYPE defaults to fs.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = storage.FS
	}
	if !slices.Contains(storage.Types, storageType) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			storage.Types)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.FS:
		cfg.Dir = os.Getenv("COURSE_CONFIG_DIR")
		if cfg.Dir == "" {
			cfg.Dir = defaultCourseConfigDir
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	case storage.SQLite:
		cfg.SQLite = &sqlite.Config{
			DSN: os.Getenv("SQLITE_DSN"),
		}
	case storage.ES:
		addresses := strings.Split(os.Getenv("ES_ADDRESSES"), ",")
		for i, a := range addresses {
			addresses[i] = strings.TrimSpace(a)
		}
		cfg.Es = &es.ClientConfig{
			Addresses: utils.RemoveEmptyStrings(addresses),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = "course_configs"
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	}

	return cfg, nil
}
