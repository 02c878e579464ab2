package repositories

import (
	"errors"

	"kalyanamaalai/internal/models"

	"gorm.io/gorm"
)

// FormRepository is the persistence surface for matrimonial forms.
type FormRepository interface {
	GetByID(id uint) (*models.Form, error)
	GetByUserID(userID uint) (*models.Form, error)
	ListByUserID(userID uint) ([]models.Form, error)
	ListPending() ([]models.PendingFormRow, error)
	// Upsert inserts the form or, when the user already has one, overwrites its
	// fields; status is reset to Pending either way. Runs on the given handle so
	// callers can place it inside a transaction.
	Upsert(tx *gorm.DB, form *models.Form) error
	UpdateStatus(tx *gorm.DB, id uint, status string) error
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) GetByID(id uint) (*models.Form, error) {
	var form models.Form
	if err := r.db.First(&form, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &form, nil
}

func (r *formRepository) GetByUserID(userID uint) (*models.Form, error) {
	var form models.Form
	if err := r.db.Where("user_id = ?", userID).First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &form, nil
}

func (r *formRepository) ListByUserID(userID uint) ([]models.Form, error) {
	var forms []models.Form
	if err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&forms).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return forms, nil
}

func (r *formRepository) ListPending() ([]models.PendingFormRow, error) {
	var rows []models.PendingFormRow
	err := r.db.Model(&models.Form{}).
		Select("forms.id AS form_id, forms.user_id, users.name AS user_name, users.email AS user_email, forms.gender, forms.status").
		Joins("JOIN users ON users.id = forms.user_id").
		Where("forms.status = ?", models.FormStatusPending).
		Order("forms.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return rows, nil
}

func (r *formRepository) Upsert(tx *gorm.DB, form *models.Form) error {
	var existing models.Form
	err := tx.Where("user_id = ?", form.UserID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		form.Status = models.FormStatusPending
		return tx.Create(form).Error
	case err != nil:
		return err
	}

	form.ID = existing.ID
	form.CreatedAt = existing.CreatedAt
	if form.ProfilePhoto == "" {
		form.ProfilePhoto = existing.ProfilePhoto
	}
	form.Status = models.FormStatusPending
	return tx.Save(form).Error
}

func (r *formRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&models.Form{}).Where("id = ?", id).Update("status", status).Error
}
