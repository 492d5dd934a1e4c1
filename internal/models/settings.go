package models

import "time"

// SettingsID keys the singleton row.
const SettingsID = 1

// SystemSettings holds the three feature flags gating public operations.
// Created default-open on first access, updated only by the admin.
type SystemSettings struct {
	ID                     uint      `gorm:"primaryKey" json:"-"`
	SoloRegistrationOpen   bool      `gorm:"not null;default:true" json:"solo_registration_open"`
	SchoolRegistrationOpen bool      `gorm:"not null;default:true" json:"school_registration_open"`
	QuizActive             bool      `gorm:"not null;default:true" json:"quiz_active"`
	UpdatedAt              time.Time `json:"-"`
}
