package services

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/YSWikcramatantri/Official-Website/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizService struct {
	db       *gorm.DB
	settings *SettingsService
}

func NewQuizService(db *gorm.DB, settings *SettingsService) *QuizService {
	return &QuizService{db: db, settings: settings}
}

// FilterEligible selects the questions a participant may see and be scored
// on, ordered by OrderIndex. Serving and scoring both go through this exact
// function so the same set underlies both.
func FilterEligible(p *models.Participant, questions []models.Question) []models.Question {
	eligible := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		switch p.Mode {
		case models.ModeSolo:
			if q.Mode == models.QuestionModeSolo && q.Subject == "" {
				eligible = append(eligible, q)
			}
		case models.ModeSchool:
			if q.Mode != models.QuestionModeSchool && q.Mode != models.QuestionModeBoth {
				continue
			}
			if q.Subject == "" || q.Subject == p.Subject {
				eligible = append(eligible, q)
			}
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].OrderIndex < eligible[j].OrderIndex
	})
	return eligible
}

// Score sums marks over the eligible set and over the correctly answered
// subset. Answers are keyed by the question id in decimal; unanswered
// questions count toward the total only. No partial credit.
func Score(eligible []models.Question, answers map[string]string) (score, totalMarks int) {
	for _, q := range eligible {
		totalMarks += q.Marks
		if answers[strconv.FormatUint(uint64(q.ID), 10)] == q.CorrectAnswer {
			score += q.Marks
		}
	}
	return score, totalMarks
}

// VerifyPasscode resolves a passcode to its participant. Unknown codes are
// a 404 concern; a completed participant or an inactive quiz is rejected.
func (s *QuizService) VerifyPasscode(passcode string) (*models.Participant, error) {
	code := strings.ToUpper(strings.TrimSpace(passcode))
	if code == "" {
		return nil, models.NewValidationError("passcode is required")
	}

	var participant models.Participant
	if err := s.db.Where("passcode = ?", code).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if participant.HasCompletedQuiz {
		return nil, models.ErrAlreadyCompleted
	}

	active, err := s.settings.QuizActive()
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, models.ErrQuizInactive
	}
	return &participant, nil
}

// QuestionsForPasscode returns the participant's eligible question set.
func (s *QuizService) QuestionsForPasscode(passcode string) (*models.Participant, []models.Question, error) {
	participant, err := s.VerifyPasscode(passcode)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.eligibleQuestions(participant)
	if err != nil {
		return nil, nil, err
	}
	return participant, questions, nil
}

func (s *QuizService) eligibleQuestions(p *models.Participant) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("order_index ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return FilterEligible(p, questions), nil
}

type SubmissionInput struct {
	ParticipantID uint
	Answers       map[string]string
	TimeTaken     int
}

// Submit scores the participant's answers against their eligible set and
// records the result. The submission row and the completion flag are
// written as one transaction; the conditional update means a concurrent
// double submit loses with ErrAlreadyCompleted instead of a second row.
func (s *QuizService) Submit(input SubmissionInput) (*models.QuizSubmission, error) {
	if input.TimeTaken < 0 {
		return nil, models.NewValidationError("time taken must not be negative")
	}

	var participant models.Participant
	if err := s.db.First(&participant, input.ParticipantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if participant.HasCompletedQuiz {
		return nil, models.ErrAlreadyCompleted
	}

	active, err := s.settings.QuizActive()
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, models.ErrQuizInactive
	}

	eligible, err := s.eligibleQuestions(&participant)
	if err != nil {
		return nil, err
	}
	score, totalMarks := Score(eligible, input.Answers)

	answers := make(datatypes.JSONMap, len(input.Answers))
	for id, letter := range input.Answers {
		answers[id] = letter
	}

	submission := models.QuizSubmission{
		ParticipantID: participant.ID,
		Answers:       answers,
		Score:         score,
		TotalMarks:    totalMarks,
		TimeTaken:     input.TimeTaken,
		CompletedAt:   time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Participant{}).
			Where("id = ? AND has_completed_quiz = ?", participant.ID, false).
			Update("has_completed_quiz", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrAlreadyCompleted
		}
		return tx.Create(&submission).Error
	})
	if err != nil {
		return nil, err
	}
	return &submission, nil
}
