package models

import "strings"

const (
	FirstWeek = 1
	LastWeek  = 40
)

type Trimester string

const (
	TrimesterFirst  Trimester = "First"
	TrimesterSecond Trimester = "Second"
	TrimesterThird  Trimester = "Third"
)

// TrimesterForWeek maps a gestational week to its trimester. Week 0 and
// negative values fall into the first trimester; anything past 26 is the third.
func TrimesterForWeek(week int) Trimester {
	switch {
	case week <= 12:
		return TrimesterFirst
	case week <= 26:
		return TrimesterSecond
	default:
		return TrimesterThird
	}
}

func ParseTrimester(raw string) (Trimester, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "first":
		return TrimesterFirst, true
	case "second":
		return TrimesterSecond, true
	case "third":
		return TrimesterThird, true
	default:
		return "", false
	}
}

type WeekRecord struct {
	Week           int       `gorm:"primaryKey;autoIncrement:false" json:"week"`
	Trimester      Trimester `gorm:"not null" json:"trimester"`
	BabySize       string    `gorm:"not null" json:"baby_size"`
	BabySizeCM     string    `gorm:"column:baby_size_cm;not null" json:"baby_size_cm"`
	BabyWeight     string    `gorm:"not null" json:"baby_weight"`
	KeyDevelopment string    `gorm:"not null" json:"key_development"`
	HormoneFocus   string    `gorm:"not null" json:"hormone_focus"`
	CommonChanges  []string  `gorm:"serializer:json" json:"common_changes"`
}

func (WeekRecord) TableName() string {
	return "pregnancy_weeks"
}
