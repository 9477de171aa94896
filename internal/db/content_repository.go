package db

import (
	"github.com/terraincognita07/babybloom/internal/models"
	"gorm.io/gorm"
)

type WeekRepository struct {
	database *gorm.DB
}

func NewWeekRepository(database *gorm.DB) *WeekRepository {
	return &WeekRepository{database: database}
}

func (repo *WeekRepository) List() ([]models.WeekRecord, error) {
	weeks := make([]models.WeekRecord, 0)
	if err := repo.database.Order("week ASC").Find(&weeks).Error; err != nil {
		return nil, err
	}
	return weeks, nil
}

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) List() ([]models.SymptomRecord, error) {
	symptoms := make([]models.SymptomRecord, 0)
	if err := repo.database.Order("symptom ASC").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

type SymptomWeekMappingRepository struct {
	database *gorm.DB
}

func NewSymptomWeekMappingRepository(database *gorm.DB) *SymptomWeekMappingRepository {
	return &SymptomWeekMappingRepository{database: database}
}

func (repo *SymptomWeekMappingRepository) List() ([]models.SymptomWeekMapping, error) {
	mappings := make([]models.SymptomWeekMapping, 0)
	if err := repo.database.Order("position ASC, id ASC").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}
