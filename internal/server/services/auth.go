package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/afristyle/afristyle/internal/common"
	"github.com/afristyle/afristyle/internal/server/config"
	"github.com/afristyle/afristyle/internal/server/models"
	"github.com/afristyle/afristyle/internal/server/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// AuthService handles registration, login and token validation.
type AuthService struct {
	users  repository.UserRepository
	config *config.Config
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, config: cfg}
}

// Register creates an account and returns the user plus a signed token, so a
// fresh registration is immediately signed in.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	if email == "" {
		return nil, "", ErrEmailRequired
	}
	if password == "" {
		return nil, "", ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := GenerateToken(user.ID, []byte(s.config.JWTSecret), s.config.JWTExpiry)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and returns the user plus a signed token.
// A missing account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, []byte(s.config.JWTSecret), s.config.JWTExpiry)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUser loads the account behind a validated token's user id.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
