// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"errors"

	"devconnect/internal/gravatar"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func NewUserService(userRepo repository.UserRepository, tokens *token.Service) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// Register creates an account and returns a signed token for it. The email
// must be unused; duplicate registrations fail before any write.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	_, err := s.userRepo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return "", models.NewValidationError("user already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return "", models.NewInternalError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Avatar:   gravatar.URL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", models.NewInternalError(err)
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return signed, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same response so callers cannot probe which
// emails are registered.
func (s *UserService) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", models.NewValidationError("Invalid Credentials")
	case err != nil:
		return "", models.NewInternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", models.NewValidationError("Invalid Credentials")
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return signed, nil
}

// CurrentUser loads the authenticated caller's account record.
func (s *UserService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewNotFoundError("User not found")
	case err != nil:
		return nil, models.NewInternalError(err)
	}
	return user, nil
}
