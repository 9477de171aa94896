package models

import "strings"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

func ParseSeverity(raw string) (Severity, bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(raw))) {
	case SeverityLow:
		return SeverityLow, true
	case SeverityModerate:
		return SeverityModerate, true
	case SeverityHigh:
		return SeverityHigh, true
	default:
		return "", false
	}
}

type SymptomWeekMapping struct {
	ID          uint     `gorm:"primaryKey" json:"-"`
	Position    int      `gorm:"not null" json:"-"`
	Week        int      `gorm:"not null;uniqueIndex:uidx_week_symptom" json:"week"`
	Symptom     string   `gorm:"not null;uniqueIndex:uidx_week_symptom" json:"symptom"`
	Severity    Severity `gorm:"not null" json:"severity"`
	IsCommon    bool     `gorm:"not null;default:false" json:"is_common"`
	WeekContext string   `gorm:"not null" json:"week_context"`
}

func (SymptomWeekMapping) TableName() string {
	return "symptom_week_mappings"
}
