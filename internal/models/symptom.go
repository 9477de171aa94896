package models

import "strings"

type SymptomRecord struct {
	Symptom      string   `gorm:"primaryKey" json:"symptom"`
	MedicalName  string   `gorm:"not null" json:"medical_name"`
	Description  string   `gorm:"not null" json:"description"`
	SafeRemedies []string `gorm:"serializer:json" json:"safe_remedies"`
	WarningSigns []string `gorm:"serializer:json" json:"warning_signs"`
}

func (SymptomRecord) TableName() string {
	return "symptoms"
}

// NormalizeSymptomName folds a symptom name or slug into its lookup key:
// lowercase, hyphens read as spaces, whitespace runs collapsed.
func NormalizeSymptomName(raw string) string {
	replaced := strings.ReplaceAll(strings.ToLower(raw), "-", " ")
	return strings.Join(strings.Fields(replaced), " ")
}

// SymptomSlug is the URL form of a symptom name.
func SymptomSlug(name string) string {
	return strings.ReplaceAll(NormalizeSymptomName(name), " ", "-")
}
