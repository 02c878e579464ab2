// Package connection implements introduction requests between users and the
// approved-profile browsing views.
package connection

import (
	"errors"
	"fmt"
	"log"
	"time"

	apperrors "kalyanamaalai/internal/errors"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/services/notification"
	"kalyanamaalai/internal/utils"
)

type Service interface {
	// SendRequest creates a pending connection and notifies the receiver.
	// Self-requests and duplicate pending/approved pairs are rejected.
	SendRequest(senderID, receiverID uint) (*models.Connection, error)
	// ApprovedProfiles lists summaries of users with an Approved form,
	// excluding the caller.
	ApprovedProfiles(userID uint) ([]models.MatchSummary, error)
	// ApprovedMatches lists the counterpart of every approved connection the
	// user is party to, each exactly once.
	ApprovedMatches(userID uint) ([]models.MatchSummary, error)
}

type service struct {
	connRepo repositories.ConnectionRepository
	userRepo repositories.UserRepository
	formRepo repositories.FormRepository
	notifier notification.Service
}

func NewService(
	connRepo repositories.ConnectionRepository,
	userRepo repositories.UserRepository,
	formRepo repositories.FormRepository,
	notifier notification.Service,
) Service {
	return &service{
		connRepo: connRepo,
		userRepo: userRepo,
		formRepo: formRepo,
		notifier: notifier,
	}
}

func (s *service) SendRequest(senderID, receiverID uint) (*models.Connection, error) {
	if senderID == receiverID {
		return nil, apperrors.ErrSelfConnection
	}

	sender, err := s.userRepo.GetByID(senderID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.userRepo.GetByID(receiverID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	exists, err := s.connRepo.ExistsBetween(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConnectionExists
	}

	conn := &models.Connection{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.ConnectionPending,
	}
	if err := s.connRepo.Create(conn); err != nil {
		return nil, err
	}

	// Best-effort; the request row is already durable.
	if err := s.notifier.Add(nil, receiverID,
		fmt.Sprintf("%s sent you a connection request. Waiting for admin approval.", sender.Name)); err != nil {
		log.Printf("connection request notification to user %d failed: %v", receiverID, err)
	}

	return conn, nil
}

func (s *service) ApprovedProfiles(userID uint) ([]models.MatchSummary, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]models.MatchSummary, 0, len(users))
	for i := range users {
		u := &users[i]
		if u.ID == userID || u.Role != models.RoleUser {
			continue
		}
		form, err := s.formRepo.GetByUserID(u.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if form.Status != models.FormStatusApproved {
			continue
		}
		summaries = append(summaries, s.summarize(u, form, now))
	}
	return summaries, nil
}

func (s *service) ApprovedMatches(userID uint) ([]models.MatchSummary, error) {
	conns, err := s.connRepo.ListApprovedByUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]models.MatchSummary, 0, len(conns))
	for _, conn := range conns {
		counterpartID := conn.SenderID
		if counterpartID == userID {
			counterpartID = conn.ReceiverID
		}

		counterpart, err := s.userRepo.GetByID(counterpartID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, err
		}

		var form *models.Form
		if f, err := s.formRepo.GetByUserID(counterpartID); err == nil {
			form = f
		}
		summaries = append(summaries, s.summarize(counterpart, form, now))
	}
	return summaries, nil
}

func (s *service) summarize(u *models.User, form *models.Form, now time.Time) models.MatchSummary {
	name := u.FullNameEn
	if name == "" {
		name = u.Name
	}
	summary := models.MatchSummary{ID: u.ID, Name: name, City: u.City}
	if form != nil {
		summary.Age = utils.AgeFromDOB(form.DOB, now)
		if form.City != "" {
			summary.City = form.City
		}
	}
	return summary
}
