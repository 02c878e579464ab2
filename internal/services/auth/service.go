// Package auth implements registration, login and token issuance.
package auth

import (
	"errors"
	"log"

	apperrors "kalyanamaalai/internal/errors"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/services/mailer"
	"kalyanamaalai/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(input *models.CreateUserInput) (*models.User, error)
	// Login authenticates and issues a token. expectedRole pins the endpoint
	// to one role; an account of the other role gets ErrRoleMismatch.
	Login(email, password string, expectedRole models.Role) (*models.User, string, error)
	GetUserByID(id uint) (*models.User, error)
}

type service struct {
	userRepo repositories.UserRepository
	mail     mailer.Mailer
}

func NewService(userRepo repositories.UserRepository, mail mailer.Mailer) Service {
	return &service{
		userRepo: userRepo,
		mail:     mail,
	}
}

func (s *service) Register(input *models.CreateUserInput) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Gender:   input.Gender,
		City:     input.City,
		Phone:    input.Phone,
		Role:     role,
		Status:   models.AccountPending,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Welcome mail never blocks registration.
	if err := s.mail.Send(user.Email,
		"Welcome to Kalyanamaalai",
		"Hi "+user.Name+", welcome to Kalyanamaalai! Your account has been created successfully.",
		"<p>Hi <b>"+user.Name+"</b>,</p><p>Welcome to <b>Kalyanamaalai</b>! Your account has been created successfully.</p>",
	); err != nil {
		log.Printf("welcome email to %s failed: %v", user.Email, err)
	}

	return user, nil
}

func (s *service) Login(email, password string, expectedRole models.Role) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Unknown email and bad password are indistinguishable to the caller.
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if expectedRole != "" && user.Role != expectedRole {
		return nil, "", apperrors.ErrRoleMismatch
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		log.Printf("token generation failed for user %d: %v", user.ID, err)
		return nil, "", errors.New("error generating token")
	}

	return user, token, nil
}

func (s *service) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
