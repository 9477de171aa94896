package services

import (
	"strconv"
	"strings"

	"github.com/terraincognita07/babybloom/internal/models"
)

const (
	WeekIndexPath    = "/pregnancy"
	SymptomIndexPath = "/pregnancy-symptoms"

	weekSlugSuffix = "-weeks-pregnant"
)

func WeekSlug(week int) string {
	return strconv.Itoa(week) + weekSlugSuffix
}

func WeekPath(week int) string {
	return WeekIndexPath + "/" + WeekSlug(week)
}

// ParseWeekSlug accepts "{n}-weeks-pregnant" with a plain decimal week.
func ParseWeekSlug(slug string) (int, bool) {
	raw, found := strings.CutSuffix(slug, weekSlugSuffix)
	if !found {
		return 0, false
	}
	return parseWeekNumber(raw)
}

func SymptomWeekSlug(week int, symptom string) string {
	return strconv.Itoa(week) + "-" + models.SymptomSlug(symptom)
}

func SymptomWeekPath(week int, symptom string) string {
	return SymptomIndexPath + "/" + SymptomWeekSlug(week, symptom)
}

// ParseSymptomWeekSlug splits "{week}-{symptom-slug}" on the first hyphen.
// The symptom part is returned as-is; lookups normalize it.
func ParseSymptomWeekSlug(slug string) (int, string, bool) {
	rawWeek, symptomSlug, found := strings.Cut(slug, "-")
	if !found || symptomSlug == "" {
		return 0, "", false
	}
	week, ok := parseWeekNumber(rawWeek)
	if !ok {
		return 0, "", false
	}
	return week, symptomSlug, true
}

// parseWeekNumber accepts only the canonical form WeekSlug produces, so
// zero-padded aliases such as "007" do not resolve.
func parseWeekNumber(raw string) (int, bool) {
	if raw == "" || len(raw) > 3 || (len(raw) > 1 && raw[0] == '0') {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	week, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return week, true
}
