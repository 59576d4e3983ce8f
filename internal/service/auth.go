package service

import (
	"context"
	"errors"
	"time"

	"github.com/basejump/basejump-go/internal/apperr"
	"github.com/basejump/basejump-go/internal/crypto"
	"github.com/basejump/basejump-go/internal/model"
	"github.com/basejump/basejump-go/internal/repository"
)

// msgBadCredentials is deliberately identical for unknown emails, inactive
// accounts and wrong passwords, so login responses cannot be used to probe
// which emails are registered.
const msgBadCredentials = "incorrect email or password"

// AuthService handles authentication business logic.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Authenticate verifies an email/password pair and returns the matching
// active user.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.Authentication(msgBadCredentials)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperr.Authentication(msgBadCredentials)
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, apperr.Authentication(msgBadCredentials)
	}

	return user, nil
}

// Login authenticates a user and mints a bearer token for them.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	user, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return model.TokenResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
