package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/clo-analytics/internal/remote"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/factory"
	"github.com/DjordjeVuckovic/clo-analytics/pkg/config/env"
)

const defaultUploadMaxBytes = 10 << 20

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ApiConfig struct {
	StorageConfig  *factory.StorageConfig
	UploadDir      string
	UploadMaxBytes int64
	Remote         *remote.Config
}

func (as *AppConfig) Load() (*ApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/clo_api/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	maxBytes := int64(defaultUploadMaxBytes)
	if v := os.Getenv("UPLOAD_MAX_BYTES"); v != "" {
		maxBytes, err = strconv.ParseInt(v, 10, 64)
		if err != nil || maxBytes <= 0 {
			return nil, fmt.Errorf("invalid UPLOAD_MAX_BYTES: %q", v)
		}
	}

	remoteCfg, err := remote.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return &ApiConfig{
		StorageConfig:  storageCfg,
		UploadDir:      os.Getenv("UPLOAD_DIR"),
		UploadMaxBytes: maxBytes,
		Remote:         remoteCfg,
	}, nil
}
