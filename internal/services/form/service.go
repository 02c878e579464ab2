// Package form manages matrimonial profile forms: one form per user, created
// or overwritten by submission, reviewed by the admin workflow.
package form

import (
	"errors"

	apperrors "kalyanamaalai/internal/errors"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/validation"

	"gorm.io/gorm"
)

type Service interface {
	// Submit validates and upserts the user's form, resetting it to Pending,
	// and flips the user row's submission flags in the same transaction.
	// photoFilename may be empty; a previously stored photo is kept.
	Submit(userID uint, input *models.FormInput, photoFilename string) (*models.Form, error)
	ListByUser(userID uint) ([]models.Form, error)
	GetByID(id uint) (*models.Form, error)
	Status(userID uint) (*models.FormStatusView, error)
}

type service struct {
	db       *gorm.DB
	formRepo repositories.FormRepository
	userRepo repositories.UserRepository
}

func NewService(db *gorm.DB, formRepo repositories.FormRepository, userRepo repositories.UserRepository) Service {
	return &service{
		db:       db,
		formRepo: formRepo,
		userRepo: userRepo,
	}
}

func (s *service) Submit(userID uint, input *models.FormInput, photoFilename string) (*models.Form, error) {
	v := validation.New()
	v.Form(input)
	if !v.Valid() {
		return nil, &apperrors.DomainError{Code: "VALIDATION_ERROR", Message: v.First()}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	form := &models.Form{
		UserID:        userID,
		FullNameEn:    input.FullNameEn,
		Gender:        input.Gender,
		DOB:           input.DOB,
		Email:         input.Email,
		Phone:         input.Phone,
		AddressEn:     input.AddressEn,
		City:          input.City,
		MaritalStatus: input.MaritalStatus,
		FatherNameEn:  input.FatherNameEn,
		MotherNameEn:  input.MotherNameEn,
		Siblings:      input.Siblings,

		ReligionEn:   input.ReligionEn,
		CasteEn:      input.CasteEn,
		GothramEn:    input.GothramEn,
		StarEn:       input.StarEn,
		RaasiEn:      input.RaasiEn,
		Height:       input.Height,
		Weight:       input.Weight,
		ComplexionEn: input.ComplexionEn,
		EducationEn:  input.EducationEn,
		OccupationEn: input.OccupationEn,
		IncomeEn:     input.IncomeEn,

		PreferredAgeRange:   input.PreferredAgeRange,
		PreferredReligion:   input.PreferredReligion,
		PreferredOccupation: input.PreferredOccupation,
		PreferredLocation:   input.PreferredLocation,

		ProfilePhoto: photoFilename,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.formRepo.Upsert(tx, form); err != nil {
			return err
		}
		// Mirror the headline fields onto the user row and put the account
		// back into review.
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"full_name_en":       input.FullNameEn,
			"gender":             input.Gender,
			"dob":                input.DOB,
			"has_submitted_form": true,
			"is_approved":        false,
			"form_completed":     true,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	// Drop the cached copy; the next read sees the committed flags.
	s.userRepo.Invalidate(user)

	return form, nil
}

func (s *service) ListByUser(userID uint) ([]models.Form, error) {
	return s.formRepo.ListByUserID(userID)
}

func (s *service) GetByID(id uint) (*models.Form, error) {
	form, err := s.formRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

func (s *service) Status(userID uint) (*models.FormStatusView, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	view := &models.FormStatusView{
		FormCompleted:    user.FormCompleted,
		HasSubmittedForm: user.HasSubmittedForm,
		IsApproved:       user.IsApproved,
	}
	if form, err := s.formRepo.GetByUserID(userID); err == nil {
		view.Status = form.Status
	}
	return view, nil
}
