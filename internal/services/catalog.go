package services

import (
	"sort"

	"github.com/terraincognita07/babybloom/internal/models"
)

var featuredWeeks = []int{4, 12, 20, 28, 36, 40}

type mappingKey struct {
	week    int
	symptom string
}

// Catalog is a read-only, indexed view over the three content tables.
// It is safe for concurrent use once built.
type Catalog struct {
	weeks    []models.WeekRecord
	symptoms []models.SymptomRecord
	mappings []models.SymptomWeekMapping

	weekIndex       map[int]int
	symptomIndex    map[string]int
	mappingIndex    map[mappingKey]int
	weekMappings    map[int][]int
	symptomMappings map[string][]int
}

type SymptomWeekView struct {
	Week    models.WeekRecord
	Symptom models.SymptomRecord
	Mapping models.SymptomWeekMapping
	Slug    string
	Path    string
}

type TrimesterWeeks struct {
	Trimester models.Trimester
	Weeks     []models.WeekRecord
}

func NewCatalog(weeks []models.WeekRecord, symptoms []models.SymptomRecord, mappings []models.SymptomWeekMapping) *Catalog {
	catalog := &Catalog{
		weeks:           append([]models.WeekRecord(nil), weeks...),
		symptoms:        append([]models.SymptomRecord(nil), symptoms...),
		mappings:        append([]models.SymptomWeekMapping(nil), mappings...),
		weekIndex:       make(map[int]int, len(weeks)),
		symptomIndex:    make(map[string]int, len(symptoms)),
		mappingIndex:    make(map[mappingKey]int, len(mappings)),
		weekMappings:    make(map[int][]int),
		symptomMappings: make(map[string][]int),
	}

	sort.SliceStable(catalog.weeks, func(i, j int) bool {
		return catalog.weeks[i].Week < catalog.weeks[j].Week
	})
	sort.SliceStable(catalog.mappings, func(i, j int) bool {
		return catalog.mappings[i].Position < catalog.mappings[j].Position
	})

	for index, week := range catalog.weeks {
		catalog.weekIndex[week.Week] = index
	}
	for index, symptom := range catalog.symptoms {
		catalog.symptomIndex[models.NormalizeSymptomName(symptom.Symptom)] = index
	}
	for index, mapping := range catalog.mappings {
		name := models.NormalizeSymptomName(mapping.Symptom)
		catalog.mappingIndex[mappingKey{week: mapping.Week, symptom: name}] = index
		catalog.weekMappings[mapping.Week] = append(catalog.weekMappings[mapping.Week], index)
		catalog.symptomMappings[name] = append(catalog.symptomMappings[name], index)
	}
	return catalog
}

func (catalog *Catalog) Weeks() []models.WeekRecord {
	return append([]models.WeekRecord(nil), catalog.weeks...)
}

func (catalog *Catalog) Symptoms() []models.SymptomRecord {
	return append([]models.SymptomRecord(nil), catalog.symptoms...)
}

func (catalog *Catalog) Mappings() []models.SymptomWeekMapping {
	return append([]models.SymptomWeekMapping(nil), catalog.mappings...)
}

func (catalog *Catalog) FindWeek(week int) (models.WeekRecord, bool) {
	index, ok := catalog.weekIndex[week]
	if !ok {
		return models.WeekRecord{}, false
	}
	return catalog.weeks[index], true
}

// FindSymptom accepts a display name or a slug.
func (catalog *Catalog) FindSymptom(name string) (models.SymptomRecord, bool) {
	index, ok := catalog.symptomIndex[models.NormalizeSymptomName(name)]
	if !ok {
		return models.SymptomRecord{}, false
	}
	return catalog.symptoms[index], true
}

func (catalog *Catalog) FindMapping(week int, symptom string) (models.SymptomWeekMapping, bool) {
	index, ok := catalog.mappingIndex[mappingKey{week: week, symptom: models.NormalizeSymptomName(symptom)}]
	if !ok {
		return models.SymptomWeekMapping{}, false
	}
	return catalog.mappings[index], true
}

// LookupSymptomWeek joins week, symptom and mapping. Any missing piece
// yields ok=false without telling which one.
func (catalog *Catalog) LookupSymptomWeek(week int, symptomSlug string) (SymptomWeekView, bool) {
	weekRecord, ok := catalog.FindWeek(week)
	if !ok {
		return SymptomWeekView{}, false
	}
	symptom, ok := catalog.FindSymptom(symptomSlug)
	if !ok {
		return SymptomWeekView{}, false
	}
	mapping, ok := catalog.FindMapping(week, symptom.Symptom)
	if !ok {
		return SymptomWeekView{}, false
	}
	return SymptomWeekView{
		Week:    weekRecord,
		Symptom: symptom,
		Mapping: mapping,
		Slug:    SymptomWeekSlug(week, symptom.Symptom),
		Path:    SymptomWeekPath(week, symptom.Symptom),
	}, true
}

func (catalog *Catalog) LookupSymptomWeekSlug(slug string) (SymptomWeekView, bool) {
	week, symptomSlug, ok := ParseSymptomWeekSlug(slug)
	if !ok {
		return SymptomWeekView{}, false
	}
	return catalog.LookupSymptomWeek(week, symptomSlug)
}

func (catalog *Catalog) MappingsForWeek(week int) []models.SymptomWeekMapping {
	return catalog.collect(catalog.weekMappings[week])
}

func (catalog *Catalog) MappingsForSymptom(symptom string) []models.SymptomWeekMapping {
	return catalog.collect(catalog.symptomMappings[models.NormalizeSymptomName(symptom)])
}

func (catalog *Catalog) collect(indexes []int) []models.SymptomWeekMapping {
	result := make([]models.SymptomWeekMapping, 0, len(indexes))
	for _, index := range indexes {
		result = append(result, catalog.mappings[index])
	}
	return result
}

func (catalog *Catalog) WeeksByTrimester() []TrimesterWeeks {
	groups := []TrimesterWeeks{
		{Trimester: models.TrimesterFirst},
		{Trimester: models.TrimesterSecond},
		{Trimester: models.TrimesterThird},
	}
	for _, week := range catalog.weeks {
		for index := range groups {
			if groups[index].Trimester == week.Trimester {
				groups[index].Weeks = append(groups[index].Weeks, week)
				break
			}
		}
	}
	return groups
}

// AdjacentWeeks returns the neighbouring weeks that exist in the catalog.
func (catalog *Catalog) AdjacentWeeks(week int) (previous *models.WeekRecord, next *models.WeekRecord) {
	if record, ok := catalog.FindWeek(week - 1); ok {
		previous = &record
	}
	if record, ok := catalog.FindWeek(week + 1); ok {
		next = &record
	}
	return previous, next
}

func (catalog *Catalog) FeaturedWeeks() []models.WeekRecord {
	result := make([]models.WeekRecord, 0, len(featuredWeeks))
	for _, week := range featuredWeeks {
		if record, ok := catalog.FindWeek(week); ok {
			result = append(result, record)
		}
	}
	return result
}
