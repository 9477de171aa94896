package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/babybloom/internal/models"
)

var ErrInvalidContent = errors.New("invalid content")

// Validate checks the reference table invariants: one record per week in
// 1..40 with the matching trimester, unique symptom names, unique
// (week, symptom) mappings that resolve on both sides.
func Validate(tables Tables) error {
	problems := make([]string, 0)
	problems = append(problems, validateWeeks(tables.Weeks)...)
	problems = append(problems, validateSymptoms(tables.Symptoms)...)
	problems = append(problems, validateMappings(tables)...)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, "; "))
}

func validateWeeks(weeks []models.WeekRecord) []string {
	problems := make([]string, 0)
	seen := make(map[int]bool, len(weeks))

	for _, week := range weeks {
		if week.Week < models.FirstWeek || week.Week > models.LastWeek {
			problems = append(problems, fmt.Sprintf("week %d: out of range %d..%d", week.Week, models.FirstWeek, models.LastWeek))
			continue
		}
		if seen[week.Week] {
			problems = append(problems, fmt.Sprintf("week %d: duplicate record", week.Week))
			continue
		}
		seen[week.Week] = true

		if expected := models.TrimesterForWeek(week.Week); week.Trimester != expected {
			problems = append(problems, fmt.Sprintf("week %d: trimester %q, expected %q", week.Week, week.Trimester, expected))
		}
		if strings.TrimSpace(week.BabySize) == "" {
			problems = append(problems, fmt.Sprintf("week %d: baby_size is empty", week.Week))
		}
		if strings.TrimSpace(week.KeyDevelopment) == "" {
			problems = append(problems, fmt.Sprintf("week %d: key_development is empty", week.Week))
		}
	}

	for week := models.FirstWeek; week <= models.LastWeek; week++ {
		if !seen[week] {
			problems = append(problems, fmt.Sprintf("week %d: missing record", week))
		}
	}
	return problems
}

func validateSymptoms(symptoms []models.SymptomRecord) []string {
	problems := make([]string, 0)
	seen := make(map[string]bool, len(symptoms))

	for index, symptom := range symptoms {
		name := models.NormalizeSymptomName(symptom.Symptom)
		if name == "" {
			problems = append(problems, fmt.Sprintf("symptom #%d: name is empty", index+1))
			continue
		}
		if seen[name] {
			problems = append(problems, fmt.Sprintf("symptom %q: duplicate record", name))
			continue
		}
		seen[name] = true

		if strings.TrimSpace(symptom.MedicalName) == "" {
			problems = append(problems, fmt.Sprintf("symptom %q: medical_name is empty", name))
		}
	}
	return problems
}

func validateMappings(tables Tables) []string {
	weeks := make(map[int]bool, len(tables.Weeks))
	for _, week := range tables.Weeks {
		weeks[week.Week] = true
	}
	symptoms := make(map[string]bool, len(tables.Symptoms))
	for _, symptom := range tables.Symptoms {
		symptoms[models.NormalizeSymptomName(symptom.Symptom)] = true
	}

	problems := make([]string, 0)
	seen := make(map[string]bool, len(tables.Mappings))
	for _, mapping := range tables.Mappings {
		name := models.NormalizeSymptomName(mapping.Symptom)
		label := fmt.Sprintf("mapping %d/%q", mapping.Week, name)

		key := fmt.Sprintf("%d|%s", mapping.Week, name)
		if seen[key] {
			problems = append(problems, label+": duplicate (week, symptom) pair")
			continue
		}
		seen[key] = true

		if !weeks[mapping.Week] {
			problems = append(problems, label+": week does not resolve")
		}
		if !symptoms[name] {
			problems = append(problems, label+": symptom does not resolve")
		}
		if _, ok := models.ParseSeverity(string(mapping.Severity)); !ok {
			problems = append(problems, fmt.Sprintf("%s: unknown severity %q", label, mapping.Severity))
		}
	}
	return problems
}
