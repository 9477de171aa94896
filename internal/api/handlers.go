package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/babybloom/internal/i18n"
	"github.com/terraincognita07/babybloom/internal/models"
	"github.com/terraincognita07/babybloom/internal/services"
	"go.uber.org/zap"
)

func NewHandler(catalog *services.Catalog, contentImport models.ContentImport, i18nManager *i18n.Manager, config Config) (*Handler, error) {
	if catalog == nil {
		return nil, errors.New("content catalog is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if strings.TrimSpace(config.SecretKey) == "" {
		return nil, errors.New("secret key is required")
	}
	location := config.Location
	if location == nil {
		location = time.Local
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	routes, err := services.BuildRouteTable(catalog)
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}

	siteURL := strings.TrimRight(strings.TrimSpace(config.SiteURL), "/")
	sitemap := services.BuildSitemap(routes, siteURL, contentImport.ImportedAt)
	sitemapXML, err := services.RenderSitemapXML(sitemap)
	if err != nil {
		return nil, fmt.Errorf("render sitemap: %w", err)
	}

	templates, err := parsePageTemplates(config.TemplateDir, newTemplateFuncMap(), pageTemplates)
	if err != nil {
		return nil, err
	}

	if config.Metrics != nil {
		config.Metrics.ObserveCatalog(catalog, routes)
	}

	return &Handler{
		catalog:       catalog,
		routes:        routes,
		contentImport: contentImport,
		sitemap:       sitemap,
		sitemapXML:    sitemapXML,
		secretKey:     []byte(config.SecretKey),
		location:      location,
		cookieSecure:  config.CookieSecure,
		siteURL:       siteURL,
		i18n:          i18nManager,
		templates:     templates,
		metrics:       config.Metrics,
		logger:        logger,
		now:           time.Now,
	}, nil
}
