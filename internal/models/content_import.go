package models

import "time"

type ContentImport struct {
	ID         string    `gorm:"primaryKey"`
	Checksum   string    `gorm:"not null;index"`
	Weeks      int       `gorm:"not null"`
	Symptoms   int       `gorm:"not null"`
	Mappings   int       `gorm:"not null"`
	ImportedAt time.Time `gorm:"not null"`
}
