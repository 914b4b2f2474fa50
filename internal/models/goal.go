package models

import "time"

// Goal is a savings target the user tracks progress against.
// Amounts are in minor currency units (paise).
type Goal struct {
	Base
	UserID        string     `gorm:"not null;index" json:"user_id"`
	Name          string     `gorm:"not null" json:"name"`
	TargetAmount  int64      `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64      `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}
