package models

import "time"

const (
	ModeSolo   = "solo"
	ModeSchool = "school"

	PasscodeLength = 6
)

// Subjects a school team must cover, one member each.
var Subjects = []string{
	"Astrophysics",
	"Cosmology",
	"Rocketry",
	"Observational Astronomy",
	"Space History",
}

func IsValidSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

type Participant struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Email            string    `gorm:"size:255" json:"email,omitempty"`
	Phone            string    `gorm:"size:20" json:"phone,omitempty"`
	Institution      string    `gorm:"size:255" json:"institution,omitempty"`
	Mode             string    `gorm:"size:10;not null" json:"mode"`
	Passcode         string    `gorm:"size:6;uniqueIndex;not null" json:"passcode"`
	SchoolID         *uint     `gorm:"index" json:"school_id,omitempty"`
	Subject          string    `gorm:"size:50" json:"subject,omitempty"`
	IsLeader         bool      `gorm:"not null;default:false" json:"is_leader"`
	HasCompletedQuiz bool      `gorm:"not null;default:false" json:"has_completed_quiz"`
	RegisteredAt     time.Time `json:"registered_at"`
}
