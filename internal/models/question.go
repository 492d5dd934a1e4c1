package models

import "gorm.io/datatypes"

const (
	QuestionModeSolo   = "solo"
	QuestionModeSchool = "school"
	QuestionModeBoth   = "both"
)

// OptionKeys are the allowed answer letters, in display order.
var OptionKeys = []string{"A", "B", "C", "D"}

type Question struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	Text          string            `gorm:"type:text;not null" json:"text"`
	Options       datatypes.JSONMap `gorm:"not null" json:"options"`
	CorrectAnswer string            `gorm:"size:1;not null" json:"correct_answer"`
	TimeLimit     int               `gorm:"not null;default:30" json:"time_limit"`
	Marks         int               `gorm:"not null;default:1" json:"marks"`
	OrderIndex    int               `gorm:"not null;default:0;index" json:"order_index"`
	Mode          string            `gorm:"size:10;not null;default:'solo'" json:"mode"`
	Subject       string            `gorm:"size:50" json:"subject,omitempty"`
}

// OptionText returns the text stored under an answer letter, if any.
func (q *Question) OptionText(key string) (string, bool) {
	v, ok := q.Options[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
