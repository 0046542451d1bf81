// Package main CLO Analytics API
// @title CLO Analytics API
// @version 1.0
// @description Computes Course Learning Outcome achievement from student grades
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/clo-analytics/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/clo-analytics/internal/api/server"
	"github.com/DjordjeVuckovic/clo-analytics/internal/course"
	"github.com/DjordjeVuckovic/clo-analytics/internal/pipeline"
	"github.com/DjordjeVuckovic/clo-analytics/internal/remote"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/factory"
	"github.com/DjordjeVuckovic/clo-analytics/internal/storage/upload"
	pkgserver "github.com/DjordjeVuckovic/clo-analytics/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	// the store backs the health endpoint, so it is created before the server
	store, err := factory.NewCourseStore(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create course config store", "error", err)
		os.Exit(1)
	}

	var healthChecker pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	if p, ok := store.(storage.Pinger); ok {
		healthChecker = pkgserver.NewPingHealthChecker(string(cfg.StorageConfig.Type), p)
	}

	s := apiserver.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "CLO Analytics API is running")
	})

	stager, err := upload.NewStager(cfg.UploadDir, cfg.UploadMaxBytes)
	if err != nil {
		slog.Error("Failed to create upload stager", "error", err)
		os.Exit(1)
	}

	service := pipeline.NewService(course.NewLoader(store))

	var routerOpts []router.CLORouterOption
	if cfg.Remote != nil {
		fetcher, err := remote.NewClient(*cfg.Remote)
		if err != nil {
			slog.Error("Failed to create remote source client", "error", err)
			os.Exit(1)
		}
		routerOpts = append(routerOpts, router.WithSourceFetcher(fetcher))
		slog.Info("Remote grades source enabled", "baseUrl", cfg.Remote.BaseURL)
	} else {
		slog.Info("Remote grades source disabled")
	}

	cloRouter := router.NewCLORouter(s.Echo, service, stager, routerOpts...)
	cloRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		if c, ok := store.(interface{ Close() }); ok {
			c.Close()
		}
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
