package repositories

import (
	"errors"

	"kalyanamaalai/internal/models"

	"gorm.io/gorm"
)

// ConnectionRepository is the persistence surface for connection requests.
type ConnectionRepository interface {
	Create(conn *models.Connection) error
	GetByID(id uint) (*models.Connection, error)
	// ExistsBetween reports whether a pending or approved connection already
	// links the two users in either direction.
	ExistsBetween(a, b uint) (bool, error)
	ListPending() ([]models.PendingConnectionRow, error)
	// ListApprovedByUser returns the approved connections the user is party to,
	// as sender or receiver.
	ListApprovedByUser(userID uint) ([]models.Connection, error)
	UpdateStatus(tx *gorm.DB, id uint, status string) error
}

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(conn *models.Connection) error {
	if err := r.db.Create(conn).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *connectionRepository) GetByID(id uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.First(&conn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &conn, nil
}

func (r *connectionRepository) ExistsBetween(a, b uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Connection{}).
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND status IN ?",
			a, b, b, a, []string{models.ConnectionPending, models.ConnectionApproved}).
		Count(&count).Error
	if err != nil {
		return false, ErrDatabaseOperation
	}
	return count > 0, nil
}

func (r *connectionRepository) ListPending() ([]models.PendingConnectionRow, error) {
	var rows []models.PendingConnectionRow
	err := r.db.Model(&models.Connection{}).
		Select("connections.id, connections.sender_id, connections.receiver_id, senders.name AS sender_name, receivers.name AS receiver_name").
		Joins("JOIN users AS senders ON senders.id = connections.sender_id").
		Joins("JOIN users AS receivers ON receivers.id = connections.receiver_id").
		Where("connections.status = ?", models.ConnectionPending).
		Scan(&rows).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return rows, nil
}

func (r *connectionRepository) ListApprovedByUser(userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, models.ConnectionApproved).
		Find(&conns).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return conns, nil
}

func (r *connectionRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&models.Connection{}).Where("id = ?", id).Update("status", status).Error
}
