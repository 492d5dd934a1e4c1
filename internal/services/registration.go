package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/YSWikcramatantri/Official-Website/internal/models"

	"gorm.io/gorm"
)

type RegistrationService struct {
	db       *gorm.DB
	settings *SettingsService
	codes    *CodeGenerator
}

func NewRegistrationService(db *gorm.DB, settings *SettingsService, codes *CodeGenerator) *RegistrationService {
	return &RegistrationService{db: db, settings: settings, codes: codes}
}

type SoloRegistrationInput struct {
	Name        string
	Email       string
	Phone       string
	Institution string
}

type SchoolMemberInput struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	IsLeader bool
}

type SchoolRegistrationInput struct {
	SchoolName string
	Team       string
	Members    []SchoolMemberInput
}

// RegisterSolo creates one solo participant behind the solo gate. Only the
// name is required; contact fields are kept when provided.
func (s *RegistrationService) RegisterSolo(input SoloRegistrationInput) (*models.Participant, error) {
	open, err := s.settings.SoloOpen()
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, models.ErrRegistrationClosed
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, models.NewValidationError("name is required")
	}

	participant := models.Participant{
		Name:         name,
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Institution:  strings.TrimSpace(input.Institution),
		Mode:         models.ModeSolo,
		RegisteredAt: time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.insertWithPasscode(tx, &participant)
	})
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// RegisterSchool creates one school and exactly five members, each covering a
// distinct subject with a single leader, in one transaction. Any failure
// rolls back every row written so far.
func (s *RegistrationService) RegisterSchool(input SchoolRegistrationInput) (*models.School, []models.Participant, error) {
	open, err := s.settings.SchoolOpen()
	if err != nil {
		return nil, nil, err
	}
	if !open {
		return nil, nil, models.ErrRegistrationClosed
	}

	if err := validateSchoolInput(input); err != nil {
		return nil, nil, err
	}

	school := models.School{
		Name: strings.TrimSpace(input.SchoolName),
		Team: strings.ToUpper(strings.TrimSpace(input.Team)),
	}
	members := make([]models.Participant, 0, models.TeamSize)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&school).Error; err != nil {
			return err
		}
		for _, m := range input.Members {
			participant := models.Participant{
				Name:         strings.TrimSpace(m.Name),
				Email:        strings.TrimSpace(m.Email),
				Phone:        strings.TrimSpace(m.Phone),
				Mode:         models.ModeSchool,
				SchoolID:     &school.ID,
				Subject:      m.Subject,
				IsLeader:     m.IsLeader,
				RegisteredAt: time.Now(),
			}
			if err := s.insertWithPasscode(tx, &participant); err != nil {
				return err
			}
			members = append(members, participant)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &school, members, nil
}

func validateSchoolInput(input SchoolRegistrationInput) error {
	var details []string

	if strings.TrimSpace(input.SchoolName) == "" {
		details = append(details, "school name is required")
	}
	if team := strings.ToUpper(strings.TrimSpace(input.Team)); team != "" && team != "A" && team != "B" {
		details = append(details, "team must be A or B")
	}
	if len(input.Members) != models.TeamSize {
		details = append(details, fmt.Sprintf("exactly %d members are required, got %d", models.TeamSize, len(input.Members)))
		return models.NewValidationError("invalid school registration", details...)
	}

	leaders := 0
	seen := make(map[string]int, models.TeamSize)
	for i, m := range input.Members {
		label := fmt.Sprintf("member %d", i+1)
		if strings.TrimSpace(m.Name) == "" {
			details = append(details, label+": name is required")
		}
		if !models.IsValidSubject(m.Subject) {
			details = append(details, fmt.Sprintf("%s: invalid subject %q", label, m.Subject))
		} else if prev, dup := seen[m.Subject]; dup {
			details = append(details, fmt.Sprintf("%s: subject %q already taken by member %d", label, m.Subject, prev+1))
		} else {
			seen[m.Subject] = i
		}
		if m.IsLeader {
			leaders++
		}
	}
	if leaders != 1 {
		details = append(details, fmt.Sprintf("exactly one leader is required, got %d", leaders))
	}

	if len(details) > 0 {
		return models.NewValidationError("invalid school registration", details...)
	}
	return nil
}

// insertWithPasscode assigns a fresh unique passcode and inserts the row.
// The passcode column carries a unique index, so a concurrent registration
// that wins the same code surfaces as a duplicate-key error here and simply
// costs one more attempt.
func (s *RegistrationService) insertWithPasscode(tx *gorm.DB, p *models.Participant) error {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.codes.GenerateUnique(models.PasscodeLength, func(c string) (bool, error) {
			var count int64
			if err := tx.Model(&models.Participant{}).Where("passcode = ?", c).Count(&count).Error; err != nil {
				return false, err
			}
			return count > 0, nil
		})
		if err != nil {
			return err
		}
		p.ID = 0
		p.Passcode = code
		err = tx.Create(p).Error
		if err == nil {
			return nil
		}
		if !isDuplicateKey(err) {
			return err
		}
	}
	return models.ErrCodeSpaceExhausted
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
