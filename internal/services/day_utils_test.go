package services

import (
	"testing"
	"time"
)

func TestDateAtLocationTruncatesToLocalMidnight(t *testing.T) {
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	value := time.Date(2025, 3, 10, 2, 30, 0, 0, time.UTC)
	got := DateAtLocation(value, location)
	if got.Format(isoDateLayout) != "2025-03-09" {
		t.Fatalf("expected 2025-03-09 in New York, got %s", got.Format(isoDateLayout))
	}
	if got.Hour() != 0 || got.Location() != location {
		t.Fatalf("expected local midnight, got %s", got)
	}
}

func TestCalendarDaysBetweenIgnoresDSTShift(t *testing.T) {
	location, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	start := time.Date(2025, 3, 29, 0, 0, 0, 0, location)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, location)
	if days := CalendarDaysBetween(start, end); days != 2 {
		t.Fatalf("expected 2 days across DST switch, got %d", days)
	}
	if days := CalendarDaysBetween(end, start); days != -2 {
		t.Fatalf("expected -2 days in reverse, got %d", days)
	}
}
