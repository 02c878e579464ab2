package models

import (
	"gorm.io/gorm"
)

// Review states for forms and connections. Forms keep the capitalized values the
// admin UI filters on; connections use the lowercase set.
const (
	FormStatusPending  = "Pending"
	FormStatusApproved = "Approved"
	FormStatusRejected = "Rejected"
)

// Form is a user's matrimonial profile submission, one row per user.
type Form struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	FullNameEn    string `gorm:"not null" json:"full_name_en"`
	Gender        string `gorm:"not null" json:"gender"`
	DOB           string `gorm:"not null" json:"dob"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	AddressEn     string `json:"address_en"`
	City          string `json:"city"`
	MaritalStatus string `json:"marital_status"`
	FatherNameEn  string `json:"father_name_en"`
	MotherNameEn  string `json:"mother_name_en"`
	Siblings      string `json:"siblings"`

	ReligionEn   string `json:"religion_en"`
	CasteEn      string `json:"caste_en"`
	GothramEn    string `json:"gothram_en"`
	StarEn       string `json:"star_en"`
	RaasiEn      string `json:"raasi_en"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	ComplexionEn string `json:"complexion_en"`
	EducationEn  string `json:"education_en"`
	OccupationEn string `json:"occupation_en"`
	IncomeEn     string `json:"income_en"`

	PreferredAgeRange   string `json:"preferred_age_range"`
	PreferredReligion   string `json:"preferred_religion"`
	PreferredOccupation string `json:"preferred_occupation"`
	PreferredLocation   string `json:"preferred_location"`

	ProfilePhoto string `json:"profile_photo"`
	Status       string `gorm:"default:'Pending'" json:"status"`
}

// FormInput is the submission payload. The photo travels as a separate
// multipart part and is attached by the handler.
type FormInput struct {
	FullNameEn    string `json:"full_name_en" form:"full_name_en"`
	Gender        string `json:"gender" form:"gender"`
	DOB           string `json:"dob" form:"dob"`
	Email         string `json:"email" form:"email"`
	Phone         string `json:"phone" form:"phone"`
	AddressEn     string `json:"address_en" form:"address_en"`
	City          string `json:"city" form:"city"`
	MaritalStatus string `json:"marital_status" form:"marital_status"`
	FatherNameEn  string `json:"father_name_en" form:"father_name_en"`
	MotherNameEn  string `json:"mother_name_en" form:"mother_name_en"`
	Siblings      string `json:"siblings" form:"siblings"`

	ReligionEn   string `json:"religion_en" form:"religion_en"`
	CasteEn      string `json:"caste_en" form:"caste_en"`
	GothramEn    string `json:"gothram_en" form:"gothram_en"`
	StarEn       string `json:"star_en" form:"star_en"`
	RaasiEn      string `json:"raasi_en" form:"raasi_en"`
	Height       string `json:"height" form:"height"`
	Weight       string `json:"weight" form:"weight"`
	ComplexionEn string `json:"complexion_en" form:"complexion_en"`
	EducationEn  string `json:"education_en" form:"education_en"`
	OccupationEn string `json:"occupation_en" form:"occupation_en"`
	IncomeEn     string `json:"income_en" form:"income_en"`

	PreferredAgeRange   string `json:"preferred_age_range" form:"preferred_age_range"`
	PreferredReligion   string `json:"preferred_religion" form:"preferred_religion"`
	PreferredOccupation string `json:"preferred_occupation" form:"preferred_occupation"`
	PreferredLocation   string `json:"preferred_location" form:"preferred_location"`
}

// FormStatusView is the quick status projection the frontend polls.
type FormStatusView struct {
	FormCompleted    bool   `json:"form_completed"`
	HasSubmittedForm bool   `json:"has_submitted_form"`
	IsApproved       bool   `json:"is_approved"`
	Status           string `json:"status"`
}

// PendingFormRow is a pending form joined with its owner, for the admin queue.
type PendingFormRow struct {
	FormID    uint   `json:"form_id"`
	UserID    uint   `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Gender    string `json:"gender"`
	Status    string `json:"status"`
}
