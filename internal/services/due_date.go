package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/babybloom/internal/models"
)

const GestationDays = 280

var (
	ErrInvalidLMP  = errors.New("invalid last menstrual period")
	ErrLMPInFuture = errors.New("last menstrual period is in the future")
)

type DueDateResult struct {
	LMP          time.Time        `json:"lmp"`
	DueDate      time.Time        `json:"due_date"`
	ElapsedDays  int              `json:"elapsed_days"`
	CurrentWeek  int              `json:"current_week"`
	DaysIntoWeek int              `json:"days_into_week"`
	Trimester    models.Trimester `json:"trimester"`
	DaysUntilDue int              `json:"days_until_due"`
	GuideWeek    int              `json:"guide_week"`
}

// ParseLMP reads a YYYY-MM-DD date as local midnight in location.
func ParseLMP(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, ErrInvalidLMP
	}
	parsed, err := time.ParseInLocation(isoDateLayout, value, location)
	if err != nil {
		return time.Time{}, ErrInvalidLMP
	}
	return parsed, nil
}

// CalculateDueDate applies Naegele's rule: due date is LMP + 280 days and the
// current week is the number of whole weeks elapsed since LMP. The week is not
// capped; GuideWeek is the clamped value for linking to a week page.
func CalculateDueDate(lmp time.Time, now time.Time, location *time.Location) (DueDateResult, error) {
	if lmp.IsZero() {
		return DueDateResult{}, ErrInvalidLMP
	}

	start := DateAtLocation(lmp, location)
	today := DateAtLocation(now, location)

	elapsed := CalendarDaysBetween(start, today)
	if elapsed < 0 {
		return DueDateResult{}, ErrLMPInFuture
	}

	dueDate := start.AddDate(0, 0, GestationDays)
	week := elapsed / 7

	return DueDateResult{
		LMP:          start,
		DueDate:      dueDate,
		ElapsedDays:  elapsed,
		CurrentWeek:  week,
		DaysIntoWeek: elapsed % 7,
		Trimester:    models.TrimesterForWeek(week),
		DaysUntilDue: CalendarDaysBetween(today, dueDate),
		GuideWeek:    clampWeek(week),
	}, nil
}

func clampWeek(week int) int {
	if week < models.FirstWeek {
		return models.FirstWeek
	}
	if week > models.LastWeek {
		return models.LastWeek
	}
	return week
}
