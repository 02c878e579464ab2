package models

import (
	"gorm.io/gorm"
)

const (
	ConnectionPending  = "pending"
	ConnectionApproved = "approved"
	ConnectionRejected = "rejected"
)

// Connection is a directed introduction request, subject to admin approval.
type Connection struct {
	gorm.Model
	SenderID   uint   `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint   `gorm:"not null;index" json:"receiver_id"`
	Status     string `gorm:"default:'pending'" json:"status"`
}

// PendingConnectionRow is a pending connection joined with both party names,
// for the admin queue.
type PendingConnectionRow struct {
	ID           uint   `json:"id"`
	SenderID     uint   `json:"sender_id"`
	ReceiverID   uint   `json:"receiver_id"`
	SenderName   string `json:"sender_name"`
	ReceiverName string `json:"receiver_name"`
}

// MatchSummary is the counterpart projection returned when browsing approved
// profiles or listing approved connections.
type MatchSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	City string `json:"city"`
}
