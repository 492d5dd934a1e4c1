package services

import (
	"errors"
	"strings"

	"github.com/YSWikcramatantri/Official-Website/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminService backs the management API: listing, question CRUD, and the
// deletes that fix up dependent state.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) ListParticipants() ([]models.Participant, error) {
	var participants []models.Participant
	if err := s.db.Order("registered_at DESC").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

type ParticipantUpdateInput struct {
	Name        string
	Email       string
	Phone       string
	Institution string
}

// UpdateParticipant edits contact fields. Mode, passcode, school link and
// the completion flag are not editable through this path.
func (s *AdminService) UpdateParticipant(id uint, input ParticipantUpdateInput) (*models.Participant, error) {
	var participant models.Participant
	if err := s.db.First(&participant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, models.NewValidationError("name is required")
	}
	participant.Name = name
	participant.Email = strings.TrimSpace(input.Email)
	participant.Phone = strings.TrimSpace(input.Phone)
	participant.Institution = strings.TrimSpace(input.Institution)
	if err := s.db.Save(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// DeleteParticipant removes a participant together with any submissions
// they produced, in one transaction.
func (s *AdminService) DeleteParticipant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var participant models.Participant
		if err := tx.First(&participant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		if err := tx.Where("participant_id = ?", id).Delete(&models.QuizSubmission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&participant).Error
	})
}

func (s *AdminService) ListSchools() ([]models.School, error) {
	var schools []models.School
	if err := s.db.Preload("Members").Order("created_at DESC").Find(&schools).Error; err != nil {
		return nil, err
	}
	return schools, nil
}

type SchoolUpdateInput struct {
	Name string
	Team string
}

func (s *AdminService) UpdateSchool(id uint, input SchoolUpdateInput) (*models.School, error) {
	var school models.School
	if err := s.db.First(&school, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, models.NewValidationError("school name is required")
	}
	team := strings.ToUpper(strings.TrimSpace(input.Team))
	if team != "" && team != "A" && team != "B" {
		return nil, models.NewValidationError("team must be A or B")
	}
	school.Name = name
	school.Team = team
	if err := s.db.Save(&school).Error; err != nil {
		return nil, err
	}
	return &school, nil
}

// DeleteSchool removes the school, its members, and their submissions.
func (s *AdminService) DeleteSchool(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var school models.School
		if err := tx.First(&school, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		var memberIDs []uint
		if err := tx.Model(&models.Participant{}).Where("school_id = ?", id).Pluck("id", &memberIDs).Error; err != nil {
			return err
		}
		if len(memberIDs) > 0 {
			if err := tx.Where("participant_id IN ?", memberIDs).Delete(&models.QuizSubmission{}).Error; err != nil {
				return err
			}
			if err := tx.Where("school_id = ?", id).Delete(&models.Participant{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&school).Error
	})
}

func (s *AdminService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("order_index ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

type QuestionInput struct {
	Text          string
	Options       map[string]string
	CorrectAnswer string
	TimeLimit     int
	Marks         int
	OrderIndex    int
	Mode          string
	Subject       string
}

func validateQuestionInput(input QuestionInput) error {
	var details []string

	if strings.TrimSpace(input.Text) == "" {
		details = append(details, "text is required")
	}
	for _, key := range models.OptionKeys {
		if strings.TrimSpace(input.Options[key]) == "" {
			details = append(details, "option "+key+" is required")
		}
	}
	if len(input.Options) != len(models.OptionKeys) {
		details = append(details, "options must be exactly A through D")
	}
	valid := false
	for _, key := range models.OptionKeys {
		if input.CorrectAnswer == key {
			valid = true
		}
	}
	if !valid {
		details = append(details, "correct answer must be one of A, B, C, D")
	}
	if input.TimeLimit <= 0 {
		details = append(details, "time limit must be positive")
	}
	if input.Marks <= 0 {
		details = append(details, "marks must be positive")
	}

	switch input.Mode {
	case models.QuestionModeSolo, models.QuestionModeBoth:
		if input.Subject != "" {
			details = append(details, input.Mode+" questions must not carry a subject")
		}
	case models.QuestionModeSchool:
		if input.Subject != "" && !models.IsValidSubject(input.Subject) {
			details = append(details, "invalid subject "+input.Subject)
		}
	default:
		details = append(details, "mode must be solo, school or both")
	}

	if len(details) > 0 {
		return models.NewValidationError("invalid question", details...)
	}
	return nil
}

func (s *AdminService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	if err := validateQuestionInput(input); err != nil {
		return nil, err
	}
	options := make(datatypes.JSONMap, len(input.Options))
	for k, v := range input.Options {
		options[k] = v
	}
	question := models.Question{
		Text:          strings.TrimSpace(input.Text),
		Options:       options,
		CorrectAnswer: input.CorrectAnswer,
		TimeLimit:     input.TimeLimit,
		Marks:         input.Marks,
		OrderIndex:    input.OrderIndex,
		Mode:          input.Mode,
		Subject:       input.Subject,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *AdminService) UpdateQuestion(id uint, input QuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if err := validateQuestionInput(input); err != nil {
		return nil, err
	}
	options := make(datatypes.JSONMap, len(input.Options))
	for k, v := range input.Options {
		options[k] = v
	}
	question.Text = strings.TrimSpace(input.Text)
	question.Options = options
	question.CorrectAnswer = input.CorrectAnswer
	question.TimeLimit = input.TimeLimit
	question.Marks = input.Marks
	question.OrderIndex = input.OrderIndex
	question.Mode = input.Mode
	question.Subject = input.Subject
	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *AdminService) DeleteQuestion(id uint) error {
	res := s.db.Delete(&models.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *AdminService) ListSubmissions() ([]models.QuizSubmission, error) {
	var submissions []models.QuizSubmission
	if err := s.db.Order("completed_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// DeleteSubmission removes a submission and restores the participant's
// completion flag, so the participant can sit the quiz again.
func (s *AdminService) DeleteSubmission(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var submission models.QuizSubmission
		if err := tx.First(&submission, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&submission).Error; err != nil {
			return err
		}
		return tx.Model(&models.Participant{}).
			Where("id = ?", submission.ParticipantID).
			Update("has_completed_quiz", false).Error
	})
}

type Stats struct {
	SoloParticipants   int64   `json:"solo_participants"`
	SchoolParticipants int64   `json:"school_participants"`
	Schools            int64   `json:"schools"`
	Questions          int64   `json:"questions"`
	Submissions        int64   `json:"submissions"`
	AverageScore       float64 `json:"average_score"`
}

func (s *AdminService) GetStats() (*Stats, error) {
	var stats Stats
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.SoloParticipants, s.db.Model(&models.Participant{}).Where("mode = ?", models.ModeSolo)},
		{&stats.SchoolParticipants, s.db.Model(&models.Participant{}).Where("mode = ?", models.ModeSchool)},
		{&stats.Schools, s.db.Model(&models.School{})},
		{&stats.Questions, s.db.Model(&models.Question{})},
		{&stats.Submissions, s.db.Model(&models.QuizSubmission{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	if stats.Submissions > 0 {
		var avg *float64
		if err := s.db.Model(&models.QuizSubmission{}).Select("AVG(score)").Scan(&avg).Error; err != nil {
			return nil, err
		}
		if avg != nil {
			stats.AverageScore = *avg
		}
	}
	return &stats, nil
}
