package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/babybloom/internal/models"
)

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation(isoDateLayout, raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestCalculateDueDateAddsGestationDays(t *testing.T) {
	result, err := CalculateDueDate(mustParseDay("2025-01-01"), mustParseDay("2025-01-01"), time.UTC)
	if err != nil {
		t.Fatalf("calculate due date: %v", err)
	}
	if got := result.DueDate.Format(isoDateLayout); got != "2025-10-08" {
		t.Fatalf("expected due date 2025-10-08, got %s", got)
	}
}

func TestCalculateDueDateForTodayIsWeekZero(t *testing.T) {
	now := time.Date(2026, 10, 15, 18, 45, 0, 0, time.UTC)
	result, err := CalculateDueDate(DateAtLocation(now, time.UTC), now, time.UTC)
	if err != nil {
		t.Fatalf("calculate due date: %v", err)
	}
	if result.CurrentWeek != 0 {
		t.Fatalf("expected week 0, got %d", result.CurrentWeek)
	}
	if result.Trimester != models.TrimesterFirst {
		t.Fatalf("expected First trimester, got %s", result.Trimester)
	}
	if result.DaysUntilDue != GestationDays {
		t.Fatalf("expected %d days until due, got %d", GestationDays, result.DaysUntilDue)
	}
	if result.GuideWeek != 1 {
		t.Fatalf("expected guide week clamped to 1, got %d", result.GuideWeek)
	}
}

func TestCalculateDueDateWeeksAndTrimesters(t *testing.T) {
	lmp := mustParseDay("2025-01-01")
	cases := []struct {
		today        string
		week         int
		daysIntoWeek int
		trimester    models.Trimester
	}{
		{today: "2025-01-07", week: 0, daysIntoWeek: 6, trimester: models.TrimesterFirst},
		{today: "2025-01-08", week: 1, daysIntoWeek: 0, trimester: models.TrimesterFirst},
		{today: "2025-03-26", week: 12, daysIntoWeek: 0, trimester: models.TrimesterFirst},
		{today: "2025-04-02", week: 13, daysIntoWeek: 0, trimester: models.TrimesterSecond},
		{today: "2025-07-02", week: 26, daysIntoWeek: 0, trimester: models.TrimesterSecond},
		{today: "2025-07-09", week: 27, daysIntoWeek: 0, trimester: models.TrimesterThird},
		{today: "2025-10-08", week: 40, daysIntoWeek: 0, trimester: models.TrimesterThird},
	}

	for _, tc := range cases {
		result, err := CalculateDueDate(lmp, mustParseDay(tc.today), time.UTC)
		if err != nil {
			t.Fatalf("today %s: unexpected error %v", tc.today, err)
		}
		if result.CurrentWeek != tc.week || result.DaysIntoWeek != tc.daysIntoWeek {
			t.Fatalf("today %s: expected week %d+%d, got %d+%d", tc.today, tc.week, tc.daysIntoWeek, result.CurrentWeek, result.DaysIntoWeek)
		}
		if result.Trimester != tc.trimester {
			t.Fatalf("today %s: expected %s trimester, got %s", tc.today, tc.trimester, result.Trimester)
		}
	}
}

func TestCalculateDueDateRejectsFutureLMP(t *testing.T) {
	_, err := CalculateDueDate(mustParseDay("2025-02-02"), mustParseDay("2025-02-01"), time.UTC)
	if !errors.Is(err, ErrLMPInFuture) {
		t.Fatalf("expected ErrLMPInFuture, got %v", err)
	}
}

func TestCalculateDueDateAcceptsFarPastLMP(t *testing.T) {
	lmp := mustParseDay("2025-01-01")

	result, err := CalculateDueDate(lmp, mustParseDay("2026-10-15"), time.UTC)
	if err != nil {
		t.Fatalf("CalculateDueDate returned error: %v", err)
	}
	if got := result.DueDate.Format("2006-01-02"); got != "2025-10-08" {
		t.Fatalf("expected due date 2025-10-08, got %s", got)
	}
	if result.ElapsedDays != 652 || result.CurrentWeek != 93 || result.DaysIntoWeek != 1 {
		t.Fatalf("expected 652 days (week 93 + 1), got %d days (week %d + %d)", result.ElapsedDays, result.CurrentWeek, result.DaysIntoWeek)
	}
	if result.Trimester != models.TrimesterThird {
		t.Fatalf("expected Third trimester, got %s", result.Trimester)
	}
	if result.GuideWeek != models.LastWeek {
		t.Fatalf("expected guide week clamped to %d, got %d", models.LastWeek, result.GuideWeek)
	}
	if result.DaysUntilDue != -372 {
		t.Fatalf("expected 372 days past due, got %d", result.DaysUntilDue)
	}
}

func TestCalculateDueDateRejectsZeroLMP(t *testing.T) {
	if _, err := CalculateDueDate(time.Time{}, time.Now(), time.UTC); !errors.Is(err, ErrInvalidLMP) {
		t.Fatalf("expected ErrInvalidLMP, got %v", err)
	}
}

func TestCalculateDueDateUsesLocationCalendarDay(t *testing.T) {
	location := time.FixedZone("UTC+10", 10*60*60)
	lmp := time.Date(2025, 1, 1, 0, 0, 0, 0, location)
	now := time.Date(2025, 1, 7, 15, 0, 0, 0, time.UTC)

	result, err := CalculateDueDate(lmp, now, location)
	if err != nil {
		t.Fatalf("calculate due date: %v", err)
	}
	if result.CurrentWeek != 1 || result.ElapsedDays != 7 {
		t.Fatalf("expected local day 2025-01-08 to be week 1, got week %d (%d days)", result.CurrentWeek, result.ElapsedDays)
	}
}

func TestParseLMP(t *testing.T) {
	parsed, err := ParseLMP(" 2025-01-01 ", time.UTC)
	if err != nil {
		t.Fatalf("parse lmp: %v", err)
	}
	if parsed.Format(isoDateLayout) != "2025-01-01" {
		t.Fatalf("unexpected parsed lmp %s", parsed)
	}

	for _, raw := range []string{"", "   ", "2025-13-01", "01/01/2025", "yesterday"} {
		if _, err := ParseLMP(raw, time.UTC); !errors.Is(err, ErrInvalidLMP) {
			t.Fatalf("ParseLMP(%q): expected ErrInvalidLMP, got %v", raw, err)
		}
	}
}
