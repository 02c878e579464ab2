// Package admin implements the review workflow: pending queues, terminal
// approve/reject transitions and user management.
//
// A decision commits the status change, the dependent user-row flags and the
// in-app notification in one transaction; email delivery happens after commit
// and is best-effort only.
package admin

import (
	"errors"
	"log"

	apperrors "kalyanamaalai/internal/errors"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/services/mailer"

	"gorm.io/gorm"
)

type Service interface {
	PendingForms() ([]models.PendingFormRow, error)
	ApproveForm(formID uint) error
	RejectForm(formID uint) error

	PendingConnections() ([]models.PendingConnectionRow, error)
	ApproveConnection(connectionID uint) error
	RejectConnection(connectionID uint) error

	Users() ([]models.SanitizedUser, error)
	// UserDetails merges the user row with their form, when one exists.
	UserDetails(userID uint) (*UserDetail, error)
	DeleteUser(userID uint) error
}

// UserDetail is the admin's merged view of a user and their form.
type UserDetail struct {
	User models.User  `json:"user"`
	Form *models.Form `json:"form,omitempty"`
}

type service struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	formRepo repositories.FormRepository
	connRepo repositories.ConnectionRepository
	mail     mailer.Mailer
}

func NewService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	formRepo repositories.FormRepository,
	connRepo repositories.ConnectionRepository,
	mail mailer.Mailer,
) Service {
	return &service{
		db:       db,
		userRepo: userRepo,
		formRepo: formRepo,
		connRepo: connRepo,
		mail:     mail,
	}
}

func (s *service) PendingForms() ([]models.PendingFormRow, error) {
	return s.formRepo.ListPending()
}

func (s *service) ApproveForm(formID uint) error {
	return s.decideForm(formID, models.FormStatusApproved)
}

func (s *service) RejectForm(formID uint) error {
	return s.decideForm(formID, models.FormStatusRejected)
}

func (s *service) decideForm(formID uint, status string) error {
	form, err := s.formRepo.GetByID(formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrFormNotFound
		}
		return err
	}
	if form.Status != models.FormStatusPending {
		return apperrors.ErrFormAlreadyDecided
	}

	user, err := s.userRepo.GetByID(form.UserID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	approved := status == models.FormStatusApproved
	message := "Your profile has been approved by admin!"
	if !approved {
		message = "Your profile has been rejected by admin."
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.formRepo.UpdateStatus(tx, formID, status); err != nil {
			return err
		}
		userUpdates := map[string]interface{}{"is_approved": approved}
		if approved {
			userUpdates["status"] = models.AccountApproved
		} else {
			userUpdates["status"] = models.AccountRejected
		}
		if err := tx.Model(&models.User{}).Where("id = ?", form.UserID).Updates(userUpdates).Error; err != nil {
			return err
		}
		return tx.Create(&models.Notification{UserID: form.UserID, Message: message}).Error
	})
	if err != nil {
		return err
	}

	// Drop the cached copy; the next read sees the committed flags.
	s.userRepo.Invalidate(user)
	s.sendDecisionEmail(user, approved)
	return nil
}

func (s *service) sendDecisionEmail(user *models.User, approved bool) {
	subject := "Your Profile Has Been Approved"
	text := "Hi " + user.Name + ", your profile has been approved by the admin."
	html := "<p>Hi <b>" + user.Name + "</b>,</p><p>Your profile has been <b>approved</b> by the admin.</p><p>You can now log in and start using the platform.</p>"
	if !approved {
		subject = "Your Profile Has Been Rejected"
		text = "Hi " + user.Name + ", your profile has been rejected by the admin."
		html = "<p>Hi <b>" + user.Name + "</b>,</p><p>Your profile has been <b>rejected</b> by the admin.</p><p>Please review your information and try again if applicable.</p>"
	}
	if err := s.mail.Send(user.Email, subject, text, html); err != nil {
		log.Printf("decision email to user %d failed: %v", user.ID, err)
	}
}

func (s *service) PendingConnections() ([]models.PendingConnectionRow, error) {
	return s.connRepo.ListPending()
}

func (s *service) ApproveConnection(connectionID uint) error {
	conn, err := s.pendingConnection(connectionID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.connRepo.UpdateStatus(tx, connectionID, models.ConnectionApproved); err != nil {
			return err
		}
		// Both parties learn about the approval.
		for _, userID := range []uint{conn.SenderID, conn.ReceiverID} {
			n := &models.Notification{UserID: userID, Message: "Your connection request has been approved by admin."}
			if err := tx.Create(n).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.emailParties(conn.SenderID, conn.ReceiverID)
	return nil
}

func (s *service) RejectConnection(connectionID uint) error {
	conn, err := s.pendingConnection(connectionID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.connRepo.UpdateStatus(tx, connectionID, models.ConnectionRejected); err != nil {
			return err
		}
		n := &models.Notification{UserID: conn.SenderID, Message: "Your connection request has been rejected by admin."}
		return tx.Create(n).Error
	})
}

func (s *service) pendingConnection(id uint) (*models.Connection, error) {
	conn, err := s.connRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrConnectionNotFound
		}
		return nil, err
	}
	if conn.Status != models.ConnectionPending {
		return nil, apperrors.ErrConnectionDecided
	}
	return conn, nil
}

func (s *service) emailParties(userIDs ...uint) {
	for _, id := range userIDs {
		user, err := s.userRepo.GetByID(id)
		if err != nil {
			log.Printf("connection email skipped, user %d lookup failed: %v", id, err)
			continue
		}
		if err := s.mail.Send(user.Email,
			"Connection Approved",
			"Hi "+user.Name+", your connection request has been approved by the admin.",
			""); err != nil {
			log.Printf("connection email to user %d failed: %v", id, err)
		}
	}
}

func (s *service) Users() ([]models.SanitizedUser, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.SanitizedUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Sanitized())
	}
	return out, nil
}

func (s *service) UserDetails(userID uint) (*UserDetail, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	detail := &UserDetail{User: *user}
	detail.User.Password = ""
	if form, err := s.formRepo.GetByUserID(userID); err == nil {
		detail.Form = form
	}
	return detail, nil
}

func (s *service) DeleteUser(userID uint) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}
