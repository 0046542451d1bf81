package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH, when set, replaces the default paths. Missing files are only an error in local mode.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	} else {
		slog.Info("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}

	var firstErr error
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			slog.Debug("Skipping .env file", "path", p, "error", err)
		}
	}

	if firstErr != nil && (env == "local" || env == "") {
		slog.Warn("Failed to load environment variables in local mode", "error", firstErr)
		return firstErr
	}

	return nil
}
