package services

import (
	"github.com/YSWikcramatantri/Official-Website/internal/models"

	"gorm.io/gorm"
)

// SettingsService reads and writes the singleton feature-flag row. Missing
// row means everything is open, matching first-deploy behavior.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) Get() (*models.SystemSettings, error) {
	settings := models.SystemSettings{
		ID:                     models.SettingsID,
		SoloRegistrationOpen:   true,
		SchoolRegistrationOpen: true,
		QuizActive:             true,
	}
	if err := s.db.Where("id = ?", models.SettingsID).FirstOrCreate(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

type SettingsInput struct {
	SoloRegistrationOpen   bool
	SchoolRegistrationOpen bool
	QuizActive             bool
}

func (s *SettingsService) Update(input SettingsInput) (*models.SystemSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	settings.SoloRegistrationOpen = input.SoloRegistrationOpen
	settings.SchoolRegistrationOpen = input.SchoolRegistrationOpen
	settings.QuizActive = input.QuizActive
	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) SoloOpen() (bool, error) {
	settings, err := s.Get()
	if err != nil {
		return false, err
	}
	return settings.SoloRegistrationOpen, nil
}

func (s *SettingsService) SchoolOpen() (bool, error) {
	settings, err := s.Get()
	if err != nil {
		return false, err
	}
	return settings.SchoolRegistrationOpen, nil
}

func (s *SettingsService) QuizActive() (bool, error) {
	settings, err := s.Get()
	if err != nil {
		return false, err
	}
	return settings.QuizActive, nil
}
