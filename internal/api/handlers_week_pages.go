package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/babybloom/internal/services"
)

func (handler *Handler) ShowWeekIndex(c *fiber.Ctx) error {
	messages := currentMessages(c)
	return handler.render(c, "weeks", fiber.Map{
		"Title":       localizedPageTitle(messages, "meta.title.weeks", "Pregnancy Week by Week | BabyBloom"),
		"Description": translateMessage(messages, "meta.description.weeks"),
		"Trimesters":  handler.catalog.WeeksByTrimester(),
	})
}

func (handler *Handler) ShowWeekPage(c *fiber.Ctx) error {
	weekNumber, ok := services.ParseWeekSlug(c.Params("slug"))
	if !ok {
		return handler.NotFound(c)
	}
	week, ok := handler.catalog.FindWeek(weekNumber)
	if !ok {
		return handler.NotFound(c)
	}

	messages := currentMessages(c)
	previous, next := handler.catalog.AdjacentWeeks(week.Week)
	return handler.render(c, "week", fiber.Map{
		"Title": fmt.Sprintf(
			localizedPageTitle(messages, "meta.title.week", "%d Weeks Pregnant | BabyBloom"),
			week.Week,
		),
		"Description": fmt.Sprintf(translateMessage(messages, "meta.description.week"), week.Week),
		"Week":        week,
		"Previous":    previous,
		"Next":        next,
		"Symptoms":    handler.weekSymptomLinks(week.Week),
	})
}
