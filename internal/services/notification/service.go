// Package notification records in-app notifications and forwards them to the
// owner's mailbox. Persistence and email delivery are independent: the row
// always lands (or the call fails), the email is best-effort.
package notification

import (
	"log"

	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/services/mailer"

	"gorm.io/gorm"
)

type Service interface {
	// Add inserts a notification row and attempts email delivery. When tx is
	// non-nil the insert joins the caller's transaction; the email is sent
	// regardless and its failure is never surfaced.
	Add(tx *gorm.DB, userID uint, message string) error
	ListByUser(userID uint) ([]models.Notification, error)
	MarkAllRead(userID uint) error
}

type service struct {
	repo     repositories.NotificationRepository
	userRepo repositories.UserRepository
	mail     mailer.Mailer
}

func NewService(repo repositories.NotificationRepository, userRepo repositories.UserRepository, mail mailer.Mailer) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		mail:     mail,
	}
}

func (s *service) Add(tx *gorm.DB, userID uint, message string) error {
	n := &models.Notification{UserID: userID, Message: message}
	if err := s.repo.Create(tx, n); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("notification %d stored, email skipped: user %d lookup failed: %v", n.ID, userID, err)
		return nil
	}
	if err := s.mail.Send(user.Email, "New Notification", message, ""); err != nil {
		log.Printf("failed to email notification to user %d: %v", userID, err)
	}
	return nil
}

func (s *service) ListByUser(userID uint) ([]models.Notification, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) MarkAllRead(userID uint) error {
	return s.repo.MarkAllRead(userID)
}
