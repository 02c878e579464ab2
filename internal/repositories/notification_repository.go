package repositories

import (
	"kalyanamaalai/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository is the persistence surface for notifications.
type NotificationRepository interface {
	Create(tx *gorm.DB, n *models.Notification) error
	ListByUser(userID uint) ([]models.Notification, error)
	MarkAllRead(userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(tx *gorm.DB, n *models.Notification) error {
	if tx == nil {
		tx = r.db
	}
	if err := tx.Create(n).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *notificationRepository) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return notifications, nil
}

// MarkAllRead is unconditional and idempotent.
func (r *notificationRepository) MarkAllRead(userID uint) error {
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Update("is_read", true).Error
	if err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
