package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowSymptomIndex(c *fiber.Ctx) error {
	messages := currentMessages(c)
	return handler.render(c, "symptoms", fiber.Map{
		"Title":       localizedPageTitle(messages, "meta.title.symptoms", "Pregnancy Symptoms by Week | BabyBloom"),
		"Description": translateMessage(messages, "meta.description.symptoms"),
		"Symptoms":    handler.symptomIndex(),
	})
}

func (handler *Handler) ShowSymptomWeekPage(c *fiber.Ctx) error {
	view, ok := handler.catalog.LookupSymptomWeekSlug(c.Params("slug"))
	if !ok {
		return handler.NotFound(c)
	}

	messages := currentMessages(c)
	name := templateSymptomTitle(view.Symptom.Symptom)
	otherWeeks := make([]int, 0)
	for _, mapping := range handler.catalog.MappingsForSymptom(view.Symptom.Symptom) {
		if mapping.Week != view.Week.Week {
			otherWeeks = append(otherWeeks, mapping.Week)
		}
	}

	return handler.render(c, "symptom_week", fiber.Map{
		"Title": fmt.Sprintf(
			localizedPageTitle(messages, "meta.title.symptom_week", "%s at %d Weeks Pregnant | BabyBloom"),
			name, view.Week.Week,
		),
		"Description": fmt.Sprintf(translateMessage(messages, "meta.description.symptom_week"), name, view.Week.Week),
		"View":        view,
		"SymptomName": name,
		"OtherWeeks":  otherWeeks,
	})
}
