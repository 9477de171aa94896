package db

import "gorm.io/gorm"

type Repositories struct {
	Weeks          *WeekRepository
	Symptoms       *SymptomRepository
	Mappings       *SymptomWeekMappingRepository
	ContentImports *ContentImportRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Weeks:          NewWeekRepository(database),
		Symptoms:       NewSymptomRepository(database),
		Mappings:       NewSymptomWeekMappingRepository(database),
		ContentImports: NewContentImportRepository(database),
	}
}
