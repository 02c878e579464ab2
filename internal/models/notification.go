package models

import (
	"gorm.io/gorm"
)

// Notification is an in-app message for a user. Rows are written by system
// events (form decisions, connection activity) and only mutated by the owner
// marking them read.
type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Message string `gorm:"not null" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`
}
