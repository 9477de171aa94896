package api

import (
	"html/template"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/babybloom/internal/i18n"
	"github.com/terraincognita07/babybloom/internal/models"
	"github.com/terraincognita07/babybloom/internal/services"
	"go.uber.org/zap"
)

type Handler struct {
	catalog       *services.Catalog
	routes        services.RouteTable
	contentImport models.ContentImport
	sitemap       []services.SitemapEntry
	sitemapXML    []byte
	secretKey     []byte
	location      *time.Location
	cookieSecure  bool
	siteURL       string
	i18n          *i18n.Manager
	templates     map[string]*template.Template
	metrics       *Metrics
	logger        *zap.Logger
	now           func() time.Time
}

// Config carries the process settings a Handler needs besides content.
type Config struct {
	SecretKey    string
	TemplateDir  string
	Location     *time.Location
	CookieSecure bool
	SiteURL      string
	Metrics      *Metrics
	Logger       *zap.Logger
}

type FlashPayload struct {
	CalculatorError string `json:"calculator_error,omitempty"`
	LMPInput        string `json:"lmp_input,omitempty"`
}

const calculatorTokenTTL = 30 * 24 * time.Hour

type calculatorClaims struct {
	LMP string `json:"lmp"`
	jwt.RegisteredClaims
}
