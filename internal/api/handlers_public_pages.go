package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/babybloom/internal/services"
)

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)
	return c.Redirect(sanitizeRedirectPath(c.Query("next"), services.HomePath), fiber.StatusSeeOther)
}

func (handler *Handler) ShowHome(c *fiber.Ctx) error {
	messages := currentMessages(c)
	return handler.render(c, "home", fiber.Map{
		"Title":         localizedPageTitle(messages, "meta.title.home", "BabyBloom"),
		"Description":   translateMessage(messages, "meta.description.home"),
		"FeaturedWeeks": handler.catalog.FeaturedWeeks(),
		"SymptomCount":  len(handler.catalog.Symptoms()),
	})
}

func (handler *Handler) ShowNutrition(c *fiber.Ctx) error {
	messages := currentMessages(c)
	return handler.render(c, "nutrition", fiber.Map{
		"Title":       localizedPageTitle(messages, "meta.title.nutrition", "Pregnancy Nutrition Guide | BabyBloom"),
		"Description": translateMessage(messages, "meta.description.nutrition"),
	})
}
