package services

import "time"

const isoDateLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// CalendarDaysBetween counts whole calendar days from start to end. The
// result is negative when end comes before start; DST shifts do not leak in.
func CalendarDaysBetween(start time.Time, end time.Time) int {
	startYear, startMonth, startDay := start.Date()
	endYear, endMonth, endDay := end.Date()
	startUTC := time.Date(startYear, startMonth, startDay, 0, 0, 0, 0, time.UTC)
	endUTC := time.Date(endYear, endMonth, endDay, 0, 0, 0, 0, time.UTC)
	return int(endUTC.Sub(startUTC) / (24 * time.Hour))
}
