package db

import (
	"fmt"

	"github.com/terraincognita07/babybloom/internal/models"
	"gorm.io/gorm"
)

const contentInsertBatchSize = 100

type ContentImportRepository struct {
	database *gorm.DB
}

func NewContentImportRepository(database *gorm.DB) *ContentImportRepository {
	return &ContentImportRepository{database: database}
}

func (repo *ContentImportRepository) Latest() (models.ContentImport, bool, error) {
	record := models.ContentImport{}
	result := repo.database.Order("imported_at DESC").Limit(1).Find(&record)
	if result.Error != nil {
		return models.ContentImport{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ContentImport{}, false, nil
	}
	return record, true, nil
}

// Replace swaps the three content tables for the given rows and records the
// import, all inside one transaction.
func (repo *ContentImportRepository) Replace(weeks []models.WeekRecord, symptoms []models.SymptomRecord, mappings []models.SymptomWeekMapping, record models.ContentImport) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"symptom_week_mappings", "symptoms", "pregnancy_weeks"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		if len(weeks) > 0 {
			if err := tx.CreateInBatches(&weeks, contentInsertBatchSize).Error; err != nil {
				return fmt.Errorf("insert weeks: %w", err)
			}
		}
		if len(symptoms) > 0 {
			if err := tx.CreateInBatches(&symptoms, contentInsertBatchSize).Error; err != nil {
				return fmt.Errorf("insert symptoms: %w", err)
			}
		}
		if len(mappings) > 0 {
			rows := make([]models.SymptomWeekMapping, len(mappings))
			copy(rows, mappings)
			for index := range rows {
				rows[index].ID = 0
			}
			if err := tx.CreateInBatches(&rows, contentInsertBatchSize).Error; err != nil {
				return fmt.Errorf("insert mappings: %w", err)
			}
		}

		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("record content import: %w", err)
		}
		return nil
	})
}
