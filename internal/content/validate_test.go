package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/terraincognita07/babybloom/internal/models"
)

func validTestTables() Tables {
	weeks := make([]models.WeekRecord, 0, models.LastWeek)
	for week := models.FirstWeek; week <= models.LastWeek; week++ {
		weeks = append(weeks, models.WeekRecord{
			Week:           week,
			Trimester:      models.TrimesterForWeek(week),
			BabySize:       "lime",
			KeyDevelopment: "growing",
		})
	}
	return Tables{
		Weeks: weeks,
		Symptoms: []models.SymptomRecord{
			{Symptom: "nausea", MedicalName: "Nausea and vomiting of pregnancy"},
			{Symptom: "back pain", MedicalName: "Lumbopelvic pain"},
		},
		Mappings: []models.SymptomWeekMapping{
			{Week: 7, Symptom: "nausea", Severity: models.SeverityHigh},
			{Week: 20, Symptom: "back pain", Severity: models.SeverityModerate},
		},
	}
}

func TestValidateAcceptsConsistentTables(t *testing.T) {
	if err := Validate(validTestTables()); err != nil {
		t.Fatalf("expected valid tables, got %v", err)
	}
}

func TestValidateRejectsBrokenInvariants(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(tables *Tables)
		fragment string
	}{
		{
			name:     "missing week",
			mutate:   func(tables *Tables) { tables.Weeks = tables.Weeks[:39] },
			fragment: "week 40: missing record",
		},
		{
			name:     "duplicate week",
			mutate:   func(tables *Tables) { tables.Weeks = append(tables.Weeks, tables.Weeks[0]) },
			fragment: "week 1: duplicate record",
		},
		{
			name:     "week out of range",
			mutate:   func(tables *Tables) { tables.Weeks[0].Week = 41 },
			fragment: "week 41: out of range",
		},
		{
			name:     "wrong trimester",
			mutate:   func(tables *Tables) { tables.Weeks[12].Trimester = models.TrimesterFirst },
			fragment: `week 13: trimester "First", expected "Second"`,
		},
		{
			name: "duplicate symptom",
			mutate: func(tables *Tables) {
				tables.Symptoms = append(tables.Symptoms, models.SymptomRecord{Symptom: "Back-Pain", MedicalName: "x"})
			},
			fragment: `symptom "back pain": duplicate record`,
		},
		{
			name: "dangling symptom",
			mutate: func(tables *Tables) {
				tables.Mappings = append(tables.Mappings, models.SymptomWeekMapping{Week: 9, Symptom: "hiccups", Severity: models.SeverityLow})
			},
			fragment: `mapping 9/"hiccups": symptom does not resolve`,
		},
		{
			name: "dangling week",
			mutate: func(tables *Tables) {
				tables.Mappings = append(tables.Mappings, models.SymptomWeekMapping{Week: 45, Symptom: "nausea", Severity: models.SeverityLow})
			},
			fragment: `mapping 45/"nausea": week does not resolve`,
		},
		{
			name: "duplicate mapping",
			mutate: func(tables *Tables) {
				tables.Mappings = append(tables.Mappings, models.SymptomWeekMapping{Week: 7, Symptom: "Nausea", Severity: models.SeverityLow})
			},
			fragment: `mapping 7/"nausea": duplicate (week, symptom) pair`,
		},
		{
			name:     "unknown severity",
			mutate:   func(tables *Tables) { tables.Mappings[0].Severity = "extreme" },
			fragment: `unknown severity "extreme"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tables := validTestTables()
			tc.mutate(&tables)

			err := Validate(tables)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidContent) {
				t.Fatalf("expected ErrInvalidContent, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.fragment) {
				t.Fatalf("expected error to contain %q, got %q", tc.fragment, err.Error())
			}
		})
	}
}
