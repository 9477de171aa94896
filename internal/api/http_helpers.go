package api

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const apiPathPrefix = "/api"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get(fiber.HeaderAccept)), fiber.MIMEApplicationJSON)
}

func isAPIPath(c *fiber.Ctx) bool {
	path := c.Path()
	return path == apiPathPrefix || strings.HasPrefix(path, apiPathPrefix+"/")
}

// wantsJSON reports whether an error for this request should be a JSON body
// rather than an HTML page.
func wantsJSON(c *fiber.Ctx) bool {
	return isAPIPath(c) || acceptsJSON(c)
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

func localizedPageTitle(messages map[string]string, key string, fallback string) string {
	if title := translateMessage(messages, key); title != key {
		return title
	}
	return fallback
}

// sanitizeRedirectPath accepts only same-origin absolute paths.
func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if !strings.HasPrefix(candidate, "/") || strings.HasPrefix(candidate, "//") {
		return fallback
	}
	if strings.ContainsAny(candidate, "\\\r\n\t") {
		return fallback
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return fallback
	}
	return candidate
}
