package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/babybloom/internal/api"
	"github.com/terraincognita07/babybloom/internal/content"
	"github.com/terraincognita07/babybloom/internal/db"
	"github.com/terraincognita07/babybloom/internal/i18n"
	"github.com/terraincognita07/babybloom/internal/services"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func runServer(config serverConfig, log *zap.Logger) error {
	time.Local = config.Location

	database, err := db.OpenSQLite(config.DBPath, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer sqlDB.Close()

	repositories := db.NewRepositories(database)
	contentService := services.NewContentService(
		repositories.Weeks,
		repositories.Symptoms,
		repositories.Mappings,
		repositories.ContentImports,
	)
	if err := syncContent(contentService, config.DataDir, log); err != nil {
		return err
	}

	catalog, contentImport, err := contentService.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	i18nManager, err := i18n.NewManager(config.DefaultLanguage, filepath.Join("internal", "i18n", "locales"))
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	metrics := api.NewMetrics()
	handler, err := api.NewHandler(catalog, contentImport, i18nManager, api.Config{
		SecretKey:    config.SecretKey,
		TemplateDir:  filepath.Join("internal", "templates"),
		Location:     config.Location,
		CookieSecure: config.CookieSecure,
		SiteURL:      config.SiteURL,
		Metrics:      metrics,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "BabyBloom",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(metrics.Middleware)
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(config.CookieSecure)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("babybloom listening",
		zap.String("addr", "0.0.0.0:"+config.Port),
		zap.String("db", config.DBPath),
		zap.String("tz", config.Location.String()),
		zap.String("content_id", contentImport.ID),
	)
	if err := app.Listen(":" + config.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

// syncContent imports the JSON tables when they differ from the active
// import. A missing data directory is tolerated if content was imported
// before.
func syncContent(service *services.ContentService, dataDir string, log *zap.Logger) error {
	tables, err := content.LoadDir(dataDir)
	if err != nil {
		if _, _, loadErr := service.LoadCatalog(); loadErr == nil {
			log.Warn("content files unavailable, serving stored content", zap.String("data_dir", dataDir), zap.Error(err))
			return nil
		} else if !errors.Is(loadErr, services.ErrContentNotImported) {
			return fmt.Errorf("load stored content: %w", loadErr)
		}
		return fmt.Errorf("load content: %w", err)
	}

	result, err := service.Import(tables)
	if err != nil {
		return fmt.Errorf("import content: %w", err)
	}
	if result.Skipped {
		log.Info("content unchanged", zap.String("checksum", result.Record.Checksum))
		return nil
	}
	log.Info("content imported",
		zap.String("id", result.Record.ID),
		zap.Int("weeks", result.Record.Weeks),
		zap.Int("symptoms", result.Record.Symptoms),
		zap.Int("mappings", result.Record.Mappings),
	)
	return nil
}
