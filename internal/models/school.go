package models

import "time"

// TeamSize is the exact number of members a school must register.
const TeamSize = 5

type School struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"size:255;not null" json:"name"`
	Team      string        `gorm:"size:1" json:"team,omitempty"`
	Members   []Participant `gorm:"foreignKey:SchoolID" json:"members,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
