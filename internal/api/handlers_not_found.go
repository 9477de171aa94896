package api

import "github.com/gofiber/fiber/v2"

// NotFound is the terminal handler for unmatched routes and for lookups that
// fail inside a matched route.
func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", fiber.Map{
		"Title":        localizedPageTitle(currentMessages(c), "meta.title.not_found", "Page Not Found | BabyBloom"),
		"CanonicalURL": "",
	})
}
