package services

import (
	"fmt"

	"github.com/terraincognita07/babybloom/internal/models"
)

type RouteKind string

const (
	RouteStatic      RouteKind = "static"
	RouteWeek        RouteKind = "week"
	RouteSymptomWeek RouteKind = "symptom-week"
)

const (
	HomePath       = "/"
	NutritionPath  = "/pregnancy-nutrition"
	CalculatorPath = "/pregnancy-due-date-calculator"

	changeFrequencyMonthly = "monthly"
)

type Route struct {
	Kind            RouteKind `json:"kind"`
	Path            string    `json:"path"`
	Priority        float64   `json:"priority"`
	ChangeFrequency string    `json:"changefreq"`
	Week            int       `json:"week,omitempty"`
	Symptom         string    `json:"symptom,omitempty"`
}

type RouteTable struct {
	routes []Route
	byPath map[string]int
}

func StaticRoutes() []Route {
	return []Route{
		{Kind: RouteStatic, Path: HomePath, Priority: 1.0, ChangeFrequency: changeFrequencyMonthly},
		{Kind: RouteStatic, Path: WeekIndexPath, Priority: 0.9, ChangeFrequency: changeFrequencyMonthly},
		{Kind: RouteStatic, Path: SymptomIndexPath, Priority: 0.8, ChangeFrequency: changeFrequencyMonthly},
		{Kind: RouteStatic, Path: NutritionPath, Priority: 0.8, ChangeFrequency: changeFrequencyMonthly},
		{Kind: RouteStatic, Path: CalculatorPath, Priority: 0.8, ChangeFrequency: changeFrequencyMonthly},
	}
}

// BuildRouteTable enumerates every page the catalog can serve: static pages,
// then weeks ascending, then symptom-week pages in mapping order.
func BuildRouteTable(catalog *Catalog) (RouteTable, error) {
	weeks := catalog.Weeks()
	mappings := catalog.Mappings()

	routes := StaticRoutes()
	routes = append(make([]Route, 0, len(routes)+len(weeks)+len(mappings)), routes...)

	for _, week := range weeks {
		routes = append(routes, Route{
			Kind:            RouteWeek,
			Path:            WeekPath(week.Week),
			Priority:        0.8,
			ChangeFrequency: changeFrequencyMonthly,
			Week:            week.Week,
		})
	}
	for _, mapping := range mappings {
		routes = append(routes, Route{
			Kind:            RouteSymptomWeek,
			Path:            SymptomWeekPath(mapping.Week, mapping.Symptom),
			Priority:        0.7,
			ChangeFrequency: changeFrequencyMonthly,
			Week:            mapping.Week,
			Symptom:         models.NormalizeSymptomName(mapping.Symptom),
		})
	}

	table := RouteTable{routes: routes, byPath: make(map[string]int, len(routes))}
	for index, route := range routes {
		if _, exists := table.byPath[route.Path]; exists {
			return RouteTable{}, fmt.Errorf("duplicate route %s", route.Path)
		}
		table.byPath[route.Path] = index
	}
	return table, nil
}

func (table RouteTable) Routes() []Route {
	return append([]Route(nil), table.routes...)
}

func (table RouteTable) Len() int {
	return len(table.routes)
}

func (table RouteTable) Lookup(path string) (Route, bool) {
	index, ok := table.byPath[path]
	if !ok {
		return Route{}, false
	}
	return table.routes[index], true
}

func (table RouteTable) OfKind(kind RouteKind) []Route {
	result := make([]Route, 0)
	for _, route := range table.routes {
		if route.Kind == kind {
			result = append(result, route)
		}
	}
	return result
}
