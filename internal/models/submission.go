package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuizSubmission records one scored attempt. Answers maps the question id
// (as a decimal string, JSON object keys are strings) to the chosen letter.
type QuizSubmission struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	ParticipantID uint              `gorm:"not null;index" json:"participant_id"`
	Answers       datatypes.JSONMap `gorm:"not null" json:"answers"`
	Score         int               `gorm:"not null;default:0" json:"score"`
	TotalMarks    int               `gorm:"not null;default:0" json:"total_marks"`
	TimeTaken     int               `gorm:"not null;default:0" json:"time_taken"`
	CompletedAt   time.Time         `json:"completed_at"`
}
