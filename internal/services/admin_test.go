package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/YSWikcramatantri/Official-Website/internal/models"
	"github.com/YSWikcramatantri/Official-Website/internal/services"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newAdminService(t *testing.T) (*services.AdminService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewAdminService(db), db
}

func validQuestionInput() services.QuestionInput {
	return services.QuestionInput{
		Text:          "How many planets orbit the Sun?",
		Options:       map[string]string{"A": "7", "B": "8", "C": "9", "D": "10"},
		CorrectAnswer: "B",
		TimeLimit:     30,
		Marks:         2,
		OrderIndex:    1,
		Mode:          models.QuestionModeSolo,
	}
}

func TestQuestionCRUD(t *testing.T) {
	admin, _ := newAdminService(t)

	q, err := admin.CreateQuestion(validQuestionInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	input := validQuestionInput()
	input.Text = "How many planets are in the solar system?"
	input.Mode = models.QuestionModeSchool
	input.Subject = "Astrophysics"
	updated, err := admin.UpdateQuestion(q.ID, input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Subject != "Astrophysics" {
		t.Fatalf("update not applied: %+v", updated)
	}

	questions, err := admin.ListQuestions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	if err := admin.DeleteQuestion(q.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := admin.DeleteQuestion(q.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestQuestionValidation(t *testing.T) {
	admin, _ := newAdminService(t)

	cases := []struct {
		name   string
		mutate func(*services.QuestionInput)
	}{
		{"solo with subject", func(in *services.QuestionInput) { in.Subject = "Cosmology" }},
		{"both with subject", func(in *services.QuestionInput) {
			in.Mode = models.QuestionModeBoth
			in.Subject = "Cosmology"
		}},
		{"school with bad subject", func(in *services.QuestionInput) {
			in.Mode = models.QuestionModeSchool
			in.Subject = "Botany"
		}},
		{"bad correct answer", func(in *services.QuestionInput) { in.CorrectAnswer = "E" }},
		{"missing option", func(in *services.QuestionInput) { delete(in.Options, "C") }},
		{"zero time limit", func(in *services.QuestionInput) { in.TimeLimit = 0 }},
		{"zero marks", func(in *services.QuestionInput) { in.Marks = 0 }},
		{"bad mode", func(in *services.QuestionInput) { in.Mode = "pairs" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validQuestionInput()
			tc.mutate(&input)
			_, err := admin.CreateQuestion(input)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func seedCompleted(t *testing.T, db *gorm.DB) (*models.Participant, *models.QuizSubmission) {
	t.Helper()
	p := models.Participant{
		Name:             "Ava",
		Mode:             models.ModeSolo,
		Passcode:         "K7P2QX",
		HasCompletedQuiz: true,
		RegisteredAt:     time.Now(),
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	sub := models.QuizSubmission{
		ParticipantID: p.ID,
		Answers:       datatypes.JSONMap{"1": "B"},
		Score:         2,
		TotalMarks:    10,
		TimeTaken:     300,
		CompletedAt:   time.Now(),
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	return &p, &sub
}

func TestDeleteSubmissionResetsCompletionFlag(t *testing.T) {
	admin, db := newAdminService(t)
	p, sub := seedCompleted(t, db)

	if err := admin.DeleteSubmission(sub.ID); err != nil {
		t.Fatalf("delete submission: %v", err)
	}

	var reloaded models.Participant
	if err := db.First(&reloaded, p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.HasCompletedQuiz {
		t.Fatal("completion flag should be reset after submission delete")
	}
}

func TestDeleteParticipantCascadesSubmissions(t *testing.T) {
	admin, db := newAdminService(t)
	p, _ := seedCompleted(t, db)

	if err := admin.DeleteParticipant(p.ID); err != nil {
		t.Fatalf("delete participant: %v", err)
	}

	var participants, submissions int64
	db.Model(&models.Participant{}).Count(&participants)
	db.Model(&models.QuizSubmission{}).Count(&submissions)
	if participants != 0 || submissions != 0 {
		t.Fatalf("expected cascade, got %d participants and %d submissions", participants, submissions)
	}
}

func TestDeleteSchoolRemovesMembersAndSubmissions(t *testing.T) {
	admin, db := newAdminService(t)

	school := models.School{Name: "Lincoln High"}
	if err := db.Create(&school).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}
	for i, subject := range models.Subjects {
		p := models.Participant{
			Name:         "Member " + subject,
			Mode:         models.ModeSchool,
			Passcode:     "CODE0" + string(rune('A'+i)),
			SchoolID:     &school.ID,
			Subject:      subject,
			IsLeader:     i == 0,
			RegisteredAt: time.Now(),
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed member: %v", err)
		}
		sub := models.QuizSubmission{ParticipantID: p.ID, Answers: datatypes.JSONMap{}, CompletedAt: time.Now()}
		if err := db.Create(&sub).Error; err != nil {
			t.Fatalf("seed submission: %v", err)
		}
	}

	if err := admin.DeleteSchool(school.ID); err != nil {
		t.Fatalf("delete school: %v", err)
	}

	var schools, participants, submissions int64
	db.Model(&models.School{}).Count(&schools)
	db.Model(&models.Participant{}).Count(&participants)
	db.Model(&models.QuizSubmission{}).Count(&submissions)
	if schools != 0 || participants != 0 || submissions != 0 {
		t.Fatalf("expected full cleanup, got %d/%d/%d", schools, participants, submissions)
	}
}

func TestStats(t *testing.T) {
	admin, db := newAdminService(t)
	seedCompleted(t, db)

	if _, err := admin.CreateQuestion(validQuestionInput()); err != nil {
		t.Fatalf("create question: %v", err)
	}

	stats, err := admin.GetStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.SoloParticipants != 1 || stats.Questions != 1 || stats.Submissions != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.AverageScore != 2 {
		t.Fatalf("expected average score 2, got %v", stats.AverageScore)
	}
}
