package models

import (
	"gorm.io/gorm"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account review states on the user row. Form rows carry their own ReviewStatus.
const (
	AccountPending  = "pending"
	AccountApproved = "approved"
	AccountRejected = "rejected"
)

type User struct {
	gorm.Model
	Name             string `gorm:"not null" json:"name"`
	FullNameEn       string `json:"full_name_en"`
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	Password         string `gorm:"not null" json:"password,omitempty"`
	Gender           string `json:"gender"`
	DOB              string `json:"dob"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	ProfilePhoto     string `json:"profile_photo"`
	Role             Role   `gorm:"default:'user'" json:"role"`
	HasSubmittedForm bool   `gorm:"default:false" json:"has_submitted_form"`
	IsApproved       bool   `gorm:"default:false" json:"is_approved"`
	FormCompleted    bool   `gorm:"default:false" json:"form_completed"`
	Status           string `gorm:"default:'pending'" json:"status"`
}

// CreateUserInput is the registration payload.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
	Role     Role   `json:"role"`
}

// Sanitized returns the projection of a user safe to put in a response body.
// The password hash never leaves the service layer.
type SanitizedUser struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	FullNameEn       string `json:"full_name_en"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	HasSubmittedForm bool   `json:"has_submitted_form"`
	IsApproved       bool   `json:"is_approved"`
	FormCompleted    bool   `json:"form_completed"`
	Status           string `json:"status"`
}

func (u *User) Sanitized() SanitizedUser {
	name := u.FullNameEn
	if name == "" {
		name = u.Name
	}
	return SanitizedUser{
		ID:               u.ID,
		Name:             u.Name,
		FullNameEn:       name,
		Email:            u.Email,
		Role:             u.Role,
		HasSubmittedForm: u.HasSubmittedForm,
		IsApproved:       u.IsApproved,
		FormCompleted:    u.FormCompleted,
		Status:           u.Status,
	}
}
