package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/babybloom/internal/models"
	"github.com/terraincognita07/babybloom/internal/services"
)

type symptomSummary struct {
	models.SymptomRecord
	Slug  string `json:"slug"`
	Weeks []int  `json:"weeks"`
}

type symptomWeekResponse struct {
	Week    models.WeekRecord         `json:"week"`
	Symptom models.SymptomRecord      `json:"symptom"`
	Mapping models.SymptomWeekMapping `json:"mapping"`
	Path    string                    `json:"path"`
}

func (handler *Handler) ListWeeks(c *fiber.Ctx) error {
	return c.JSON(handler.catalog.Weeks())
}

func (handler *Handler) GetWeek(c *fiber.Ctx) error {
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	record, ok := handler.catalog.FindWeek(week)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return c.JSON(record)
}

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	symptoms := handler.catalog.Symptoms()
	result := make([]symptomSummary, 0, len(symptoms))
	for _, symptom := range symptoms {
		mappings := handler.catalog.MappingsForSymptom(symptom.Symptom)
		weeks := make([]int, 0, len(mappings))
		for _, mapping := range mappings {
			weeks = append(weeks, mapping.Week)
		}
		result = append(result, symptomSummary{
			SymptomRecord: symptom,
			Slug:          models.SymptomSlug(symptom.Symptom),
			Weeks:         weeks,
		})
	}
	return c.JSON(result)
}

func (handler *Handler) GetSymptomWeek(c *fiber.Ctx) error {
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	view, ok := handler.catalog.LookupSymptomWeek(week, c.Params("symptom"))
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return c.JSON(symptomWeekResponse{
		Week:    view.Week,
		Symptom: view.Symptom,
		Mapping: view.Mapping,
		Path:    view.Path,
	})
}

func (handler *Handler) ListRoutes(c *fiber.Ctx) error {
	kind := services.RouteKind(c.Query("kind"))
	if kind == "" {
		return c.JSON(handler.routes.Routes())
	}
	return c.JSON(handler.routes.OfKind(kind))
}
