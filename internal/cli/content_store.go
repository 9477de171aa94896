package cli

import (
	"fmt"

	"github.com/terraincognita07/babybloom/internal/db"
	"github.com/terraincognita07/babybloom/internal/services"
	"go.uber.org/zap"
)

// openContentService opens the SQLite store and returns a close func that
// releases the underlying connection pool.
func openContentService(dbPath string, logger *zap.Logger) (*services.ContentService, func(), error) {
	database, err := db.OpenSQLite(dbPath, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database handle: %w", err)
	}

	repositories := db.NewRepositories(database)
	service := services.NewContentService(
		repositories.Weeks,
		repositories.Symptoms,
		repositories.Mappings,
		repositories.ContentImports,
	)
	return service, func() { _ = sqlDB.Close() }, nil
}
