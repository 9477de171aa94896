package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/babybloom/internal/services"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/robots.txt", handler.RobotsTxt)
	app.Get("/sitemap.xml", handler.SitemapXML)
	app.Get("/lang/:lang", handler.SetLanguage)
	if handler.metrics != nil {
		app.Get("/metrics", handler.metrics.Handler())
	}

	app.Get(services.HomePath, handler.ShowHome)
	app.Get(services.WeekIndexPath, handler.ShowWeekIndex)
	app.Get(services.WeekIndexPath+"/:slug", handler.ShowWeekPage)
	app.Get(services.SymptomIndexPath, handler.ShowSymptomIndex)
	app.Get(services.SymptomIndexPath+"/:slug", handler.ShowSymptomWeekPage)
	app.Get(services.NutritionPath, handler.ShowNutrition)
	app.Get(services.CalculatorPath, handler.ShowCalculator)
	app.Post(services.CalculatorPath, handler.SubmitCalculator)
	app.Post(services.CalculatorPath+"/reset", handler.ResetCalculator)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/weeks", handler.ListWeeks)
	api.Get("/weeks/:week", handler.GetWeek)
	api.Get("/symptoms", handler.ListSymptoms)
	api.Get("/symptoms/:week/:symptom", handler.GetSymptomWeek)
	api.Get("/due-date", handler.DueDateAPI)
	api.Get("/routes", handler.ListRoutes)
	api.Get("/sitemap", handler.SitemapAPI)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
