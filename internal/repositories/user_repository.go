package repositories

import "kalyanamaalai/internal/models"

// UserRepository is the persistence surface for user rows.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	// Invalidate drops the user's cache entries after a column-level update
	// performed outside the repository; the next read repopulates from the
	// database.
	Invalidate(user *models.User)
	List() ([]models.User, error)
	// Delete removes the user and, in the same transaction, the user's form,
	// notifications and connections on either side.
	Delete(id uint) error
}
