package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/middleware/csrf"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type serverConfig struct {
	Port            string
	SecretKey       string
	DBPath          string
	DataDir         string
	SiteURL         string
	DefaultLanguage string
	CookieSecure    bool
	TimeZone        string
	Location        *time.Location
}

func loadServerConfig() (serverConfig, error) {
	port, err := resolvePort()
	if err != nil {
		return serverConfig{}, err
	}
	secretKey, err := resolveSecretKey()
	if err != nil {
		return serverConfig{}, err
	}
	siteURL, err := resolveSiteURL()
	if err != nil {
		return serverConfig{}, err
	}

	return serverConfig{
		Port:            port,
		SecretKey:       secretKey,
		DBPath:          resolveDBPath(),
		DataDir:         resolveDataDir(),
		SiteURL:         siteURL,
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		CookieSecure:    parseBoolEnv("COOKIE_SECURE", false),
		TimeZone:        getEnv("TZ", "UTC"),
		Location:        time.UTC,
	}, nil
}

func resolveDBPath() string {
	return getEnv("DB_PATH", filepath.Join("data", "babybloom.db"))
}

func resolveDataDir() string {
	return getEnv("DATA_DIR", "data")
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(getEnv("PORT", "8080"))
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
	}
	return strconv.Itoa(port), nil
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required (run `babybloom generate-secret`)")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses a placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolveSiteURL() (string, error) {
	raw := strings.TrimSpace(getEnv("SITE_URL", "http://localhost:8080"))
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid SITE_URL %q: %w", raw, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("invalid SITE_URL %q: must be an absolute http(s) URL", raw)
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", fmt.Errorf("invalid SITE_URL %q: query and fragment are not allowed", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "babybloom_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}

// loadLocation returns UTC together with the lookup error for an unknown zone.
func loadLocation(name string) (*time.Location, error) {
	location, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return time.UTC, fmt.Errorf("load TZ %q: %w", name, err)
	}
	return location, nil
}

func parseBoolEnv(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
