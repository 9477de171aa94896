package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/babybloom/internal/content"
	"github.com/terraincognita07/babybloom/internal/models"
)

var ErrContentNotImported = errors.New("content has not been imported")

type WeekRepository interface {
	List() ([]models.WeekRecord, error)
}

type SymptomRepository interface {
	List() ([]models.SymptomRecord, error)
}

type SymptomWeekMappingRepository interface {
	List() ([]models.SymptomWeekMapping, error)
}

type ContentImportRepository interface {
	Latest() (models.ContentImport, bool, error)
	Replace(weeks []models.WeekRecord, symptoms []models.SymptomRecord, mappings []models.SymptomWeekMapping, record models.ContentImport) error
}

type ContentService struct {
	weeks    WeekRepository
	symptoms SymptomRepository
	mappings SymptomWeekMappingRepository
	imports  ContentImportRepository
	now      func() time.Time
}

type ImportResult struct {
	Record  models.ContentImport
	Skipped bool
}

func NewContentService(weeks WeekRepository, symptoms SymptomRepository, mappings SymptomWeekMappingRepository, imports ContentImportRepository) *ContentService {
	return &ContentService{
		weeks:    weeks,
		symptoms: symptoms,
		mappings: mappings,
		imports:  imports,
		now:      time.Now,
	}
}

// Import stores validated tables unless the latest import already has the
// same checksum.
func (service *ContentService) Import(tables content.Tables) (ImportResult, error) {
	if tables.Checksum == "" {
		return ImportResult{}, errors.New("content checksum is empty")
	}

	latest, found, err := service.imports.Latest()
	if err != nil {
		return ImportResult{}, fmt.Errorf("load latest import: %w", err)
	}
	if found && latest.Checksum == tables.Checksum {
		return ImportResult{Record: latest, Skipped: true}, nil
	}

	record := models.ContentImport{
		ID:         uuid.NewString(),
		Checksum:   tables.Checksum,
		Weeks:      len(tables.Weeks),
		Symptoms:   len(tables.Symptoms),
		Mappings:   len(tables.Mappings),
		ImportedAt: service.now().UTC(),
	}
	if err := service.imports.Replace(tables.Weeks, tables.Symptoms, tables.Mappings, record); err != nil {
		return ImportResult{}, fmt.Errorf("replace content: %w", err)
	}
	return ImportResult{Record: record}, nil
}

// LoadCatalog reads the active content back from storage and checks it
// again before building the catalog.
func (service *ContentService) LoadCatalog() (*Catalog, models.ContentImport, error) {
	latest, found, err := service.imports.Latest()
	if err != nil {
		return nil, models.ContentImport{}, fmt.Errorf("load latest import: %w", err)
	}
	if !found {
		return nil, models.ContentImport{}, ErrContentNotImported
	}

	weeks, err := service.weeks.List()
	if err != nil {
		return nil, models.ContentImport{}, fmt.Errorf("list weeks: %w", err)
	}
	symptoms, err := service.symptoms.List()
	if err != nil {
		return nil, models.ContentImport{}, fmt.Errorf("list symptoms: %w", err)
	}
	mappings, err := service.mappings.List()
	if err != nil {
		return nil, models.ContentImport{}, fmt.Errorf("list mappings: %w", err)
	}

	tables := content.Tables{Weeks: weeks, Symptoms: symptoms, Mappings: mappings}
	if err := content.Validate(tables); err != nil {
		return nil, models.ContentImport{}, err
	}
	return NewCatalog(weeks, symptoms, mappings), latest, nil
}
