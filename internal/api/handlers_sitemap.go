package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) SitemapXML(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(handler.sitemapXML)
}

func (handler *Handler) SitemapAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"count":   len(handler.sitemap),
		"entries": handler.sitemap,
	})
}

func (handler *Handler) RobotsTxt(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", handler.siteURL))
}
