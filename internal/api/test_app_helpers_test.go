package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/babybloom/internal/content"
	"github.com/terraincognita07/babybloom/internal/db"
	"github.com/terraincognita07/babybloom/internal/i18n"
	"github.com/terraincognita07/babybloom/internal/services"
)

const testSecretKey = "test-secret-key-0123456789abcdef"

var testNow = time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()
	return newTestAppWithCookieSecure(t, false)
}

func newTestAppWithCookieSecure(t *testing.T, cookieSecure bool) (*fiber.App, *Handler) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	templatesDir := filepath.Join(internalDir, "templates")
	localesDir := filepath.Join(internalDir, "i18n", "locales")
	dataDir := filepath.Join(filepath.Dir(internalDir), "data")
	databasePath := filepath.Join(t.TempDir(), "babybloom-api-test.db")

	database, err := db.OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	tables, err := content.LoadDir(dataDir)
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	repositories := db.NewRepositories(database)
	contentService := services.NewContentService(repositories.Weeks, repositories.Symptoms, repositories.Mappings, repositories.ContentImports)
	if _, err := contentService.Import(tables); err != nil {
		t.Fatalf("import content: %v", err)
	}
	catalog, contentImport, err := contentService.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	i18nManager, err := i18n.NewManager("en", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	metrics := NewMetrics()
	handler, err := NewHandler(catalog, contentImport, i18nManager, Config{
		SecretKey:    testSecretKey,
		TemplateDir:  templatesDir,
		Location:     time.UTC,
		CookieSecure: cookieSecure,
		SiteURL:      "https://babybloom.test/",
		Metrics:      metrics,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	app.Use(metrics.Middleware)
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) (*http.Response, string) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read %s body: %v", request.URL.Path, err)
	}
	return response, string(body)
}

func getPage(t *testing.T, app *fiber.App, path string, language string) (*http.Response, string) {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if language != "" {
		request.Header.Set("Accept-Language", language)
	}
	return performRequest(t, app, request)
}
