package api

import (
	"github.com/terraincognita07/babybloom/internal/models"
	"github.com/terraincognita07/babybloom/internal/services"
)

type weekSymptomLink struct {
	Symptom models.SymptomRecord
	Mapping models.SymptomWeekMapping
	Path    string
}

type symptomIndexEntry struct {
	Symptom models.SymptomRecord
	Weeks   []services.Route
}

type calculatorResultView struct {
	services.DueDateResult
	DueDateLabel string
	GuidePath    string
	PastDue      bool
}

type dueDateResponse struct {
	LMP          string           `json:"lmp"`
	DueDate      string           `json:"due_date"`
	DueDateLabel string           `json:"due_date_label"`
	ElapsedDays  int              `json:"elapsed_days"`
	CurrentWeek  int              `json:"current_week"`
	DaysIntoWeek int              `json:"days_into_week"`
	Trimester    models.Trimester `json:"trimester"`
	DaysUntilDue int              `json:"days_until_due"`
	GuideWeek    int              `json:"guide_week"`
	GuidePath    string           `json:"guide_path"`
}

func (handler *Handler) weekSymptomLinks(week int) []weekSymptomLink {
	mappings := handler.catalog.MappingsForWeek(week)
	links := make([]weekSymptomLink, 0, len(mappings))
	for _, mapping := range mappings {
		symptom, ok := handler.catalog.FindSymptom(mapping.Symptom)
		if !ok {
			continue
		}
		links = append(links, weekSymptomLink{
			Symptom: symptom,
			Mapping: mapping,
			Path:    services.SymptomWeekPath(mapping.Week, symptom.Symptom),
		})
	}
	return links
}

// symptomIndex groups the symptom-week routes by symptom, in symptom order.
func (handler *Handler) symptomIndex() []symptomIndexEntry {
	routesBySymptom := make(map[string][]services.Route)
	for _, route := range handler.routes.OfKind(services.RouteSymptomWeek) {
		routesBySymptom[route.Symptom] = append(routesBySymptom[route.Symptom], route)
	}

	symptoms := handler.catalog.Symptoms()
	entries := make([]symptomIndexEntry, 0, len(symptoms))
	for _, symptom := range symptoms {
		entries = append(entries, symptomIndexEntry{
			Symptom: symptom,
			Weeks:   routesBySymptom[models.NormalizeSymptomName(symptom.Symptom)],
		})
	}
	return entries
}

func buildCalculatorResultView(language string, result services.DueDateResult) *calculatorResultView {
	return &calculatorResultView{
		DueDateResult: result,
		DueDateLabel:  localizedLongDate(language, result.DueDate),
		GuidePath:     services.WeekPath(result.GuideWeek),
		PastDue:       result.DaysUntilDue < 0,
	}
}

func buildDueDateResponse(language string, result services.DueDateResult) dueDateResponse {
	return dueDateResponse{
		LMP:          result.LMP.Format("2006-01-02"),
		DueDate:      result.DueDate.Format("2006-01-02"),
		DueDateLabel: localizedLongDate(language, result.DueDate),
		ElapsedDays:  result.ElapsedDays,
		CurrentWeek:  result.CurrentWeek,
		DaysIntoWeek: result.DaysIntoWeek,
		Trimester:    result.Trimester,
		DaysUntilDue: result.DaysUntilDue,
		GuideWeek:    result.GuideWeek,
		GuidePath:    services.WeekPath(result.GuideWeek),
	}
}
